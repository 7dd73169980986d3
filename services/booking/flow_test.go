// File: calmora/services/booking/flow_test.go
package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"calmora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var errCardDeclined = errors.New("card declined")

// stubPayments records every request and answers with a canned result.
type stubPayments struct {
	err      error
	requests []models.PaymentRequest
}

func (p *stubPayments) ProcessPayment(_ context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	p.requests = append(p.requests, req)
	if p.err != nil {
		return nil, p.err
	}
	return &models.Invoice{
		InvoiceID: "inv-1",
		UserID:    req.UserID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Status:    "paid",
	}, nil
}

func testTherapist() models.TherapistPublicView {
	return models.TherapistPublicView{
		ID:         "th-1",
		Name:       "Dr. Achieng",
		Specialty:  "anxiety",
		SessionFee: 80,
	}
}

func newTestFlow(ledger SlotLedger, payments PaymentHandler) *Flow {
	return NewFlow(ledger, payments, "USD", zap.NewNop())
}

func TestFlowBeginComputesAvailability(t *testing.T) {
	ledger := NewMemoryLedger()
	require.NoError(t, ledger.ClaimSlot("9:00"))
	require.NoError(t, ledger.ClaimSlot("14:00"))

	flow := newTestFlow(ledger, &stubPayments{})
	available, err := flow.Begin()
	require.NoError(t, err)

	assert.Equal(t, []string{"8:00", "10:00", "11:00", "15:00", "16:00"}, available)
	assert.Equal(t, StateCollecting, flow.State())
	assert.Equal(t, time.Now().AddDate(0, 0, 1).Format("2006-01-02"), flow.Date())
}

func TestFlowBeginTwiceIsRejected(t *testing.T) {
	flow := newTestFlow(NewMemoryLedger(), &stubPayments{})

	_, err := flow.Begin()
	require.NoError(t, err)

	_, err = flow.Begin()
	assert.ErrorIs(t, err, ErrFlowState)
}

func TestFlowAvailabilityIsNotRefreshed(t *testing.T) {
	ledger := NewMemoryLedger()
	flow := newTestFlow(ledger, &stubPayments{})

	available, err := flow.Begin()
	require.NoError(t, err)
	require.Contains(t, available, "10:00")

	// A claim landing after Begin does not shrink this flow's view.
	require.NoError(t, ledger.ClaimSlot("10:00"))
	assert.Contains(t, flow.Available(), "10:00")
	assert.NoError(t, flow.SelectSlot("10:00"))
}

func TestFlowSelectSlotRejectsClaimed(t *testing.T) {
	ledger := NewMemoryLedger()
	require.NoError(t, ledger.ClaimSlot("9:00"))

	flow := newTestFlow(ledger, &stubPayments{})
	_, err := flow.Begin()
	require.NoError(t, err)

	assert.ErrorIs(t, flow.SelectSlot("9:00"), ErrSlotUnavailable)
	assert.ErrorIs(t, flow.SelectSlot("12:00"), ErrSlotUnavailable)
}

func TestFlowSubmitRequiresContact(t *testing.T) {
	ledger := NewMemoryLedger()
	payments := &stubPayments{}
	flow := newTestFlow(ledger, payments)

	_, err := flow.Begin()
	require.NoError(t, err)
	flow.SelectTherapist(testTherapist())
	require.NoError(t, flow.SelectSlot("10:00"))

	_, err = flow.Submit(context.Background())
	assert.ErrorIs(t, err, ErrMissingContact)

	// Nothing charged, nothing claimed, flow still collecting.
	assert.Empty(t, payments.requests)
	claimed, _ := ledger.ReadClaimedSlots()
	assert.Empty(t, claimed)
	assert.Equal(t, StateCollecting, flow.State())
}

func TestFlowSubmitRequiresSlot(t *testing.T) {
	payments := &stubPayments{}
	flow := newTestFlow(NewMemoryLedger(), payments)

	_, err := flow.Begin()
	require.NoError(t, err)
	flow.SelectTherapist(testTherapist())
	flow.SetContact("user-1", "+15550100")

	_, err = flow.Submit(context.Background())
	assert.ErrorIs(t, err, ErrNoSlotSelected)
	assert.Empty(t, payments.requests)
}

func TestFlowSubmitPaymentFailureLeavesSlotUnclaimed(t *testing.T) {
	ledger := NewMemoryLedger()
	payments := &stubPayments{err: errCardDeclined}
	flow := newTestFlow(ledger, payments)

	_, err := flow.Begin()
	require.NoError(t, err)
	flow.SelectTherapist(testTherapist())
	require.NoError(t, flow.SelectSlot("10:00"))
	flow.SetContact("user-1", "+15550100")

	_, err = flow.Submit(context.Background())
	assert.ErrorIs(t, err, errCardDeclined)
	assert.Len(t, payments.requests, 1)

	claimed, _ := ledger.ReadClaimedSlots()
	assert.Empty(t, claimed)
	assert.Equal(t, StateCollecting, flow.State())

	// The flow can retry once the payment problem clears.
	payments.err = nil
	confirmation, err := flow.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "10:00", confirmation.Slot)
	assert.Equal(t, StatePaid, flow.State())
}

func TestFlowSubmitSuccessClaimsSlot(t *testing.T) {
	ledger := NewMemoryLedger()
	payments := &stubPayments{}
	flow := newTestFlow(ledger, payments)

	_, err := flow.Begin()
	require.NoError(t, err)
	flow.SelectTherapist(testTherapist())
	require.NoError(t, flow.SelectSlot("14:00"))
	flow.SetContact("user-1", "+15550100")

	confirmation, err := flow.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StatePaid, flow.State())
	assert.Equal(t, "14:00", confirmation.Slot)
	assert.Equal(t, flow.Date(), confirmation.Date)
	assert.Equal(t, "th-1", confirmation.Therapist.ID)
	assert.Equal(t, "paid", confirmation.Invoice.Status)

	claimed, err := ledger.ReadClaimedSlots()
	require.NoError(t, err)
	assert.Equal(t, []string{"14:00"}, claimed)

	// The charge carries the session context.
	require.Len(t, payments.requests, 1)
	req := payments.requests[0]
	assert.Equal(t, float64(80), req.Amount)
	assert.Equal(t, "USD", req.Currency)
	assert.Equal(t, "14:00", req.AppointmentTime)
	assert.Equal(t, flow.Date(), req.AppointmentDate)
	assert.NotEmpty(t, req.ReferenceCode)
}

func TestFlowSubmitSurvivesLedgerClaimFailure(t *testing.T) {
	payments := &stubPayments{}
	flow := newTestFlow(&failingLedger{}, payments)

	_, err := flow.Begin()
	require.NoError(t, err)
	flow.SelectTherapist(testTherapist())
	require.NoError(t, flow.SelectSlot("10:00"))
	flow.SetContact("user-1", "+15550100")

	confirmation, err := flow.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StatePaid, flow.State())
	assert.Equal(t, "10:00", confirmation.Slot)
}

// failingLedger reads cleanly but refuses claims, simulating Redis going
// away between Begin and Submit.
type failingLedger struct{}

func (f *failingLedger) ReadClaimedSlots() ([]string, error) { return []string{}, nil }
func (f *failingLedger) ClaimSlot(string) error              { return errors.New("redis unavailable") }
