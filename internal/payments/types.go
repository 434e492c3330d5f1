package payments

// Currency is the only currency donations are taken in.
const Currency = "usd"

type AuthorizationRequest struct {
	AmountCents     int64
	Currency        string
	PaymentMethodID string
	ReceiptEmail    string // optional
}

type Kind int

const (
	KindFailed Kind = iota
	KindAuthorized
	KindRequiresAction
	KindDeclined
)

func (k Kind) String() string {
	switch k {
	case KindAuthorized:
		return "authorized"
	case KindRequiresAction:
		return "requires_action"
	case KindDeclined:
		return "declined"
	default:
		return "failed"
	}
}

// Authorization is the processor's answer for one payment intent.
type Authorization struct {
	Kind         Kind
	ID           string
	ClientSecret string
	AmountCents  int64 // as reported by the processor

	// Declined only.
	Code        string
	DeclineCode string
	Message     string // user-facing, safe to return verbatim

	// Failed only.
	Cause error
}

// Status labels understood by the donation front end.
const (
	StatusTrue           = "true"
	StatusFalse          = "false"
	StatusLive           = "live"
	StatusRequiresAction = "requires_action"
)

// Response is the JSON body returned to the browser.
type Response struct {
	Status          string `json:"status,omitempty"`
	Message         string `json:"message,omitempty"`
	Error           string `json:"error,omitempty"`
	PaymentIntentID string `json:"payment_intent_id,omitempty"`
	ClientSecret    string `json:"client_secret,omitempty"`
}

// Outcome pairs a Response with the HTTP status it must be sent with.
type Outcome struct {
	HTTPStatus int
	Body       Response
}

type CreatePaymentInput struct {
	Amount          string
	PaymentMethodID string `validate:"required"`
	Email           string
}

type ConfirmPaymentInput struct {
	PaymentIntentID string `validate:"required"`
}
