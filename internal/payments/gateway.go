package payments

import "context"

// Processor defines the operations the donation flow needs from a payment
// provider. Implementations report declines and action-required states as an
// Authorization kind, not as errors.
type Processor interface {
	CreateAndConfirm(ctx context.Context, req AuthorizationRequest) (Authorization, error)
	Confirm(ctx context.Context, paymentIntentID string) (Authorization, error)
}
