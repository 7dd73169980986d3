package booking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"calmora/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentHandler is the external payment collaborator: one attempt per
// call, success or failure, no retry contract.
type PaymentHandler interface {
	ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error)
}

// StripePaymentHandler charges sessions through Stripe PaymentIntents.
type StripePaymentHandler struct {
	logger *zap.Logger
}

// NewStripePaymentHandler creates the production payment handler. The
// Stripe API key is expected to be set globally (stripe.Key) at startup.
func NewStripePaymentHandler(logger *zap.Logger) *StripePaymentHandler {
	return &StripePaymentHandler{logger: logger}
}

// ProcessPayment validates the request and creates a confirmed
// PaymentIntent for the session fee.
func (h *StripePaymentHandler) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if err := validatePaymentRequest(req); err != nil {
		return nil, fmt.Errorf("invalid payment request: %w", err)
	}

	now := time.Now()
	inv := &models.Invoice{
		InvoiceID: uuid.New().String(),
		UserID:    req.UserID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Status:    "pending",
		CreatedAt: now,
		UpdatedAt: now,
	}

	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(int64(math.Round(req.Amount * 100))),
		Currency:    stripe.String(strings.ToLower(req.Currency)),
		Description: stripe.String(req.Description),
		Confirm:     stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	params.Context = ctx
	params.SetIdempotencyKey(req.ReferenceCode)
	params.AddMetadata("referenceCode", req.ReferenceCode)
	params.AddMetadata("phoneNumber", req.PhoneNumber)
	params.AddMetadata("appointmentDate", req.AppointmentDate)
	params.AddMetadata("appointmentTime", req.AppointmentTime)
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		inv.Status = "failed"
		inv.Error = err.Error()
		h.logger.Error("Stripe payment failed",
			zap.String("invoice", inv.InvoiceID), zap.Error(err))
		return nil, fmt.Errorf("stripe payment failed: %w", err)
	}

	inv.PaymentID = pi.ID
	inv.UpdatedAt = time.Now()
	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		inv.Status = "failed"
		inv.Error = fmt.Sprintf("payment intent status: %s", pi.Status)
		return nil, fmt.Errorf("payment not completed: status %s", pi.Status)
	}

	inv.Status = "paid"
	h.logger.Info("Payment successful",
		zap.String("invoice", inv.InvoiceID), zap.String("paymentID", pi.ID))
	return inv, nil
}

func validatePaymentRequest(req models.PaymentRequest) error {
	if req.Amount <= 0 {
		return errors.New("invalid payment amount")
	}
	if req.PhoneNumber == "" {
		return errors.New("missing phone number")
	}
	if req.ReferenceCode == "" {
		return errors.New("missing reference code")
	}
	return nil
}
