package ndaevents

const (
	TopicName            = "nda"
	signerAuthorizedName = TopicName + ".authorized"
	envelopeSentName     = TopicName + ".envelopeSent"
)

type SignerAuthorized struct {
	SignerEmail string
	AccountID   string
}

func (e SignerAuthorized) GetEventTypeName() string {
	return signerAuthorizedName
}

func (e SignerAuthorized) GetAggregateName() string {
	return e.SignerEmail
}

type EnvelopeSent struct {
	EnvelopeID  string
	TemplateID  string
	SignerEmail string
	SignerName  string
}

func (e EnvelopeSent) GetEventTypeName() string {
	return envelopeSentName
}

func (e EnvelopeSent) GetAggregateName() string {
	return e.EnvelopeID
}
