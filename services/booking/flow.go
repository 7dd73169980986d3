package booking

import (
	"context"
	"fmt"
	"time"

	"calmora/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FlowState identifies where a booking attempt is in its lifecycle.
type FlowState int

const (
	// StateIdle is the initial state, before availability is computed.
	StateIdle FlowState = iota
	// StateCollecting means the flow is gathering therapist, slot, and contact.
	StateCollecting
	// StateSubmitting means the payment collaborator has been invoked.
	StateSubmitting
	// StatePaid is the terminal success state.
	StatePaid
)

// Flow drives a single booking attempt for tomorrow's session: it presents
// only unclaimed slots, collects the patient's choices, charges the payment
// collaborator once, and claims the slot only after a successful charge. A
// failed payment returns the flow to Collecting with nothing claimed.
type Flow struct {
	ledger   SlotLedger
	payments PaymentHandler
	logger   *zap.Logger
	now      func() time.Time

	state     FlowState
	date      string
	available []string
	currency  string

	therapist models.TherapistPublicView
	userID    string
	slot      string
	phone     string
}

// NewFlow creates a booking flow in the Idle state.
func NewFlow(ledger SlotLedger, payments PaymentHandler, currency string, logger *zap.Logger) *Flow {
	return &Flow{
		ledger:   ledger,
		payments: payments,
		currency: currency,
		logger:   logger,
		now:      time.Now,
		state:    StateIdle,
	}
}

// Begin computes the available set once (catalog minus today's claims, in
// catalog order), fixes the session date to tomorrow, and moves the flow
// to Collecting. The set is not refreshed for the life of the flow.
func (f *Flow) Begin() ([]string, error) {
	if f.state != StateIdle {
		return nil, ErrFlowState
	}

	claimed, err := f.ledger.ReadClaimedSlots()
	if err != nil {
		return nil, fmt.Errorf("failed to read claimed slots: %w", err)
	}

	available := make([]string, 0, len(GenerateDailySlots()))
	for _, slot := range GenerateDailySlots() {
		if !containsSlot(claimed, slot) {
			available = append(available, slot)
		}
	}

	f.available = available
	f.date = f.now().AddDate(0, 0, 1).Format(slotDateLayout)
	f.state = StateCollecting
	return available, nil
}

// State returns the flow's current state.
func (f *Flow) State() FlowState { return f.state }

// Date returns the session date the flow is booking for.
func (f *Flow) Date() string { return f.date }

// Available returns the slot set computed at Begin time.
func (f *Flow) Available() []string { return f.available }

// SelectTherapist records the chosen therapist.
func (f *Flow) SelectTherapist(t models.TherapistPublicView) {
	f.therapist = t
}

// SelectSlot records the chosen slot; it must be a member of the set
// computed at Begin time.
func (f *Flow) SelectSlot(slot string) error {
	if f.state != StateCollecting {
		return ErrFlowState
	}
	if !containsSlot(f.available, slot) {
		return ErrSlotUnavailable
	}
	f.slot = slot
	return nil
}

// SetContact records the claimant's identity and contact phone number.
func (f *Flow) SetContact(userID, phone string) {
	f.userID = userID
	f.phone = phone
}

// Submit validates the collected inputs, performs the single payment
// attempt, and on success claims the slot and returns the confirmation
// hand-off context. On any failure the flow returns to Collecting and the
// ledger is left untouched.
func (f *Flow) Submit(ctx context.Context) (*models.BookingConfirmation, error) {
	if f.state != StateCollecting {
		return nil, ErrFlowState
	}
	if f.phone == "" {
		return nil, ErrMissingContact
	}
	if f.slot == "" {
		return nil, ErrNoSlotSelected
	}

	f.state = StateSubmitting

	referenceCode := uuid.New().String()
	req := models.PaymentRequest{
		UserID:          f.userID,
		PhoneNumber:     f.phone,
		Amount:          f.therapist.SessionFee,
		Currency:        f.currency,
		ReferenceCode:   referenceCode,
		Description:     fmt.Sprintf("Therapy session with %s on %s at %s", f.therapist.Name, f.date, f.slot),
		AppointmentDate: f.date,
		AppointmentTime: f.slot,
		Metadata: map[string]string{
			"therapistId": f.therapist.ID,
		},
	}

	invoice, err := f.payments.ProcessPayment(ctx, req)
	if err != nil {
		f.state = StateCollecting
		return nil, fmt.Errorf("payment failed: %w", err)
	}

	// Payment went through; the claim is best-effort bookkeeping and must
	// not fail the booking.
	if err := f.ledger.ClaimSlot(f.slot); err != nil {
		f.logger.Error("failed to claim slot after payment",
			zap.String("slot", f.slot), zap.Error(err))
	}

	f.state = StatePaid
	return &models.BookingConfirmation{
		Therapist: f.therapist,
		Date:      f.date,
		Slot:      f.slot,
		Invoice:   *invoice,
	}, nil
}
