// File: calmora/services/booking/ledger_test.go
package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLedgerStartsEmpty(t *testing.T) {
	ledger := NewMemoryLedger()

	claimed, err := ledger.ReadClaimedSlots()
	require.NoError(t, err)
	assert.Empty(t, claimed)
}

func TestMemoryLedgerClaimAndRead(t *testing.T) {
	ledger := NewMemoryLedger()

	require.NoError(t, ledger.ClaimSlot("9:00"))
	require.NoError(t, ledger.ClaimSlot("14:00"))

	claimed, err := ledger.ReadClaimedSlots()
	require.NoError(t, err)
	assert.Equal(t, []string{"9:00", "14:00"}, claimed)
}

func TestMemoryLedgerClaimIsIdempotent(t *testing.T) {
	ledger := NewMemoryLedger()

	require.NoError(t, ledger.ClaimSlot("9:00"))
	require.NoError(t, ledger.ClaimSlot("9:00"))
	require.NoError(t, ledger.ClaimSlot("9:00"))

	claimed, err := ledger.ReadClaimedSlots()
	require.NoError(t, err)
	assert.Equal(t, []string{"9:00"}, claimed)
}

func TestMemoryLedgerResetsOnDayRollover(t *testing.T) {
	current := time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC)
	ledger := NewMemoryLedger()
	ledger.now = func() time.Time { return current }

	require.NoError(t, ledger.ClaimSlot("9:00"))
	require.NoError(t, ledger.ClaimSlot("10:00"))

	// Same day: claims survive.
	claimed, err := ledger.ReadClaimedSlots()
	require.NoError(t, err)
	assert.Len(t, claimed, 2)

	// Next day: the ledger starts over.
	current = current.AddDate(0, 0, 1)
	claimed, err = ledger.ReadClaimedSlots()
	require.NoError(t, err)
	assert.Empty(t, claimed)

	// And claims recorded after the rollover belong to the new day.
	require.NoError(t, ledger.ClaimSlot("11:00"))
	claimed, err = ledger.ReadClaimedSlots()
	require.NoError(t, err)
	assert.Equal(t, []string{"11:00"}, claimed)
}

func TestMemoryLedgerClaimAfterRolloverDiscardsOldDay(t *testing.T) {
	current := time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)
	ledger := NewMemoryLedger()
	ledger.now = func() time.Time { return current }

	require.NoError(t, ledger.ClaimSlot("9:00"))

	current = current.AddDate(0, 0, 1)
	require.NoError(t, ledger.ClaimSlot("14:00"))

	claimed, err := ledger.ReadClaimedSlots()
	require.NoError(t, err)
	assert.Equal(t, []string{"14:00"}, claimed)
}
