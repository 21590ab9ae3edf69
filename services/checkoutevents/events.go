package checkoutevents

const (
	TopicName           = "checkout"
	checkoutStartedName = TopicName + ".started"
)

type CheckoutStarted struct {
	CheckoutUID  string
	ProviderName string
	PriceID      string
	Mode         string
}

func (e CheckoutStarted) GetEventTypeName() string {
	return checkoutStartedName
}

func (e CheckoutStarted) GetAggregateName() string {
	return e.CheckoutUID
}
