package checkoutstripe

type Plan struct {
	Name        string
	Description string
	Price       string
	Period      string
	Features    []string
	PriceID     string
}

func (p Plan) IsFree() bool {
	return p.PriceID == ""
}

type pricingPage struct {
	Plans []Plan
}

func plans(premiumPriceID string) []Plan {
	return []Plan{
		{
			Name:        "Free Plan",
			Description: "Perfect for getting started",
			Price:       "$0",
			Period:      "/month",
			Features: []string{
				"Basic market analysis",
				"Limited resources access",
				"Community support",
			},
		},
		{
			Name:        "Banking Vault",
			Description: "12 weeks rolling subscription",
			Price:       "£899",
			Period:      "/12 weeks",
			Features: []string{
				"Advanced market analysis",
				"Full resource library access",
				"Private community access",
				"1-on-1 mentoring sessions",
				"Trading signals",
			},
			PriceID: premiumPriceID,
		},
	}
}
