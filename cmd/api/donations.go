package main

import (
	"embed"
	"expvar"
	"html/template"
	"net/http"

	"donate/internal/payments"
)

//go:embed "templates"
var templatesFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

// donationOutcomes counts responses by status label, published under /v1/debug/vars.
var donationOutcomes = expvar.NewMap("donation_outcomes")

type createPaymentIntentPayload struct {
	Amount          flexString `json:"amount" example:"25.00"`
	PaymentMethodID string     `json:"payment_method_id" example:"pm_card_visa"`
	Email           string     `json:"email,omitempty" example:"donor@example.com"`
}

type confirmPaymentIntentPayload struct {
	PaymentIntentID string `json:"payment_intent_id" example:"pi_3Nf..."`
}

// indexHandler renders the donation page. Only the publishable key reaches
// the browser.
func (app *application) indexHandler(w http.ResponseWriter, r *http.Request) {
	data := struct {
		PublishableKey string
	}{
		PublishableKey: app.config.stripe.publishableKey,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createPaymentIntentHandler godoc
//
//	@Summary		Create and confirm a donation payment
//	@Description	Parses the amount, creates a Stripe PaymentIntent for it in USD and confirms it immediately.
//	@Tags			donations
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		createPaymentIntentPayload	true	"Donation"
//	@Success		200		{object}	payments.Response			"status true or requires_action"
//	@Failure		400		{object}	payments.Response			"Invalid amount or missing payment method"
//	@Failure		402		{object}	payments.Response			"Card declined, status live or false"
//	@Failure		500		{object}	payments.Response			"Not configured or processor failure"
//	@Router			/create-payment-intent [post]
func (app *application) createPaymentIntentHandler(w http.ResponseWriter, r *http.Request) {
	var payload createPaymentIntentPayload
	if err := readJSON(w, r, &payload); err != nil {
		// An unreadable body is handled like an empty one; a mistyped field
		// only loses that field.
		app.logger.Warnw("unreadable create payment body", "error", err)
		if !isFieldTypeError(err) {
			payload = createPaymentIntentPayload{}
		}
	}

	outcome := app.payments.CreatePayment(r.Context(), payments.CreatePaymentInput{
		Amount:          string(payload.Amount),
		PaymentMethodID: payload.PaymentMethodID,
		Email:           payload.Email,
	})

	app.writeOutcome(w, r, outcome)
}

// confirmPaymentIntentHandler godoc
//
//	@Summary		Confirm a payment intent
//	@Description	Confirms a PaymentIntent after the browser finished a requires_action step.
//	@Tags			donations
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		confirmPaymentIntentPayload	true	"Payment intent"
//	@Success		200		{object}	payments.Response			"status true or requires_action"
//	@Failure		400		{object}	payments.Response			"Missing payment intent id"
//	@Failure		402		{object}	payments.Response			"Card declined, status live or false"
//	@Failure		500		{object}	payments.Response			"Not configured or processor failure"
//	@Router			/confirm-payment-intent [post]
func (app *application) confirmPaymentIntentHandler(w http.ResponseWriter, r *http.Request) {
	var payload confirmPaymentIntentPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.logger.Warnw("unreadable confirm payment body", "error", err)
		if !isFieldTypeError(err) {
			payload = confirmPaymentIntentPayload{}
		}
	}

	outcome := app.payments.ConfirmPayment(r.Context(), payments.ConfirmPaymentInput{
		PaymentIntentID: payload.PaymentIntentID,
	})

	app.writeOutcome(w, r, outcome)
}

func (app *application) writeOutcome(w http.ResponseWriter, r *http.Request, outcome payments.Outcome) {
	label := outcome.Body.Status
	if label == "" {
		label = "error"
	}
	donationOutcomes.Add(label, 1)

	if err := writeJSON(w, outcome.HTTPStatus, outcome.Body); err != nil {
		app.logger.Errorw("write payment response", "path", r.URL.Path, "error", err)
	}
}
