package payments

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"donate/internal/amount"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var (
	ErrNotConfigured = errors.New("payment processor is not configured")
	ErrMissingField  = errors.New("required field is missing")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ManagerConfig is fixed at startup.
type ManagerConfig struct {
	// Configured is false when no processor secret key was provided.
	Configured bool
}

// PaymentManager turns donation requests into processor calls and processor
// answers into Outcomes. It holds no per-request state.
type PaymentManager struct {
	cfg       ManagerConfig
	processor Processor
	logger    *zap.SugaredLogger
}

func NewPaymentManager(cfg ManagerConfig, processor Processor, logger *zap.SugaredLogger) *PaymentManager {
	return &PaymentManager{
		cfg:       cfg,
		processor: processor,
		logger:    logger,
	}
}

// CreatePayment checks, in order: processor configuration, payment method,
// amount. Only then is the processor called.
func (m *PaymentManager) CreatePayment(ctx context.Context, in CreatePaymentInput) Outcome {
	in.PaymentMethodID = strings.TrimSpace(in.PaymentMethodID)
	in.Email = strings.TrimSpace(in.Email)

	if err := m.checkConfigured(); err != nil {
		m.logger.Errorw("create payment rejected", "error", err)
		return Outcome{
			HTTPStatus: http.StatusInternalServerError,
			Body:       Response{Error: "Stripe secret key not set."},
		}
	}

	if err := validate.Struct(in); err != nil {
		m.logger.Infow("create payment rejected", "error", fmt.Errorf("payment_method_id: %w", ErrMissingField))
		return failed(http.StatusBadRequest, StatusFalse, "Payment method is required.")
	}

	cents, err := amount.ParseToCents(in.Amount)
	if err != nil {
		m.logger.Infow("create payment rejected", "amount", in.Amount, "error", err)
		return failed(http.StatusBadRequest, StatusFalse, err.Error())
	}

	auth, err := m.processor.CreateAndConfirm(ctx, AuthorizationRequest{
		AmountCents:     cents,
		Currency:        Currency,
		PaymentMethodID: in.PaymentMethodID,
		ReceiptEmail:    in.Email,
	})
	if err != nil {
		auth = Authorization{Kind: KindFailed, Cause: err}
	}

	return m.outcome(auth, cents, "Unable to create payment intent.")
}

// ConfirmPayment confirms an existing payment intent, typically after the
// browser completed a requires_action step.
func (m *PaymentManager) ConfirmPayment(ctx context.Context, in ConfirmPaymentInput) Outcome {
	in.PaymentIntentID = strings.TrimSpace(in.PaymentIntentID)

	if err := validate.Struct(in); err != nil {
		m.logger.Infow("confirm payment rejected", "error", fmt.Errorf("payment_intent_id: %w", ErrMissingField))
		return failed(http.StatusBadRequest, StatusFalse, "Payment intent id is required.")
	}

	if err := m.checkConfigured(); err != nil {
		m.logger.Errorw("confirm payment rejected", "error", err)
		return Outcome{
			HTTPStatus: http.StatusInternalServerError,
			Body:       Response{Error: "Stripe secret key not set."},
		}
	}

	auth, err := m.processor.Confirm(ctx, in.PaymentIntentID)
	if err != nil {
		auth = Authorization{Kind: KindFailed, Cause: err}
	}

	return m.outcome(auth, auth.AmountCents, "Unable to confirm payment intent.")
}

func (m *PaymentManager) checkConfigured() error {
	if !m.cfg.Configured || m.processor == nil {
		return ErrNotConfigured
	}
	return nil
}

// outcome shapes auth into the response the browser expects. displayCents is
// the amount echoed back on success.
func (m *PaymentManager) outcome(auth Authorization, displayCents int64, failureMessage string) Outcome {
	switch auth.Kind {
	case KindRequiresAction:
		m.logger.Infow("payment requires action", "payment_intent_id", auth.ID)
		return Outcome{
			HTTPStatus: http.StatusOK,
			Body: Response{
				Status:          StatusRequiresAction,
				PaymentIntentID: auth.ID,
				ClientSecret:    auth.ClientSecret,
			},
		}

	case KindAuthorized:
		display := amount.FormatFromCents(displayCents)
		m.logger.Infow("donation succeeded", "payment_intent_id", auth.ID, "amount", display)
		return Outcome{
			HTTPStatus: http.StatusOK,
			Body: Response{
				Status:          StatusTrue,
				Message:         "your donation was successful " + display,
				PaymentIntentID: auth.ID,
				ClientSecret:    auth.ClientSecret,
			},
		}

	case KindDeclined:
		status := ClassifyDecline(auth.Code)
		m.logger.Infow("card declined",
			"payment_intent_id", auth.ID,
			"code", auth.Code,
			"decline_code", auth.DeclineCode,
			"status", status,
		)
		return failed(http.StatusPaymentRequired, status, auth.Message)

	default:
		m.logger.Errorw("payment processor failure", "payment_intent_id", auth.ID, "error", auth.Cause)
		return failed(http.StatusInternalServerError, StatusFalse, failureMessage)
	}
}

func failed(httpStatus int, label, message string) Outcome {
	return Outcome{
		HTTPStatus: httpStatus,
		Body:       Response{Status: label, Message: message},
	}
}
