// File: calmora/services/booking/ledger_redis_test.go
package booking

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRedisLedger(t *testing.T) (*RedisLedger, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisLedger(client, zap.NewNop()), mr
}

func storedEntry(t *testing.T, mr *miniredis.Miniredis) LedgerEntry {
	t.Helper()
	raw, err := mr.Get(ledgerKey)
	require.NoError(t, err)
	var entry LedgerEntry
	require.NoError(t, json.Unmarshal([]byte(raw), &entry))
	return entry
}

func TestRedisLedgerFirstReadWritesFreshEntry(t *testing.T) {
	ledger, mr := newTestRedisLedger(t)

	claimed, err := ledger.ReadClaimedSlots()
	require.NoError(t, err)
	assert.Empty(t, claimed)

	entry := storedEntry(t, mr)
	assert.Equal(t, time.Now().Format(slotDateLayout), entry.Date)
	assert.Empty(t, entry.Slots)
}

func TestRedisLedgerClaimAndRead(t *testing.T) {
	ledger, _ := newTestRedisLedger(t)

	require.NoError(t, ledger.ClaimSlot("9:00"))
	require.NoError(t, ledger.ClaimSlot("14:00"))
	require.NoError(t, ledger.ClaimSlot("9:00"))

	claimed, err := ledger.ReadClaimedSlots()
	require.NoError(t, err)
	assert.Equal(t, []string{"9:00", "14:00"}, claimed)
}

func TestRedisLedgerStaleEntryIsReplaced(t *testing.T) {
	ledger, mr := newTestRedisLedger(t)

	yesterday := time.Now().AddDate(0, 0, -1).Format(slotDateLayout)
	stale, err := json.Marshal(LedgerEntry{Date: yesterday, Slots: []string{"9:00", "10:00"}})
	require.NoError(t, err)
	require.NoError(t, mr.Set(ledgerKey, string(stale)))

	claimed, err := ledger.ReadClaimedSlots()
	require.NoError(t, err)
	assert.Empty(t, claimed)

	entry := storedEntry(t, mr)
	assert.Equal(t, time.Now().Format(slotDateLayout), entry.Date)
	assert.Empty(t, entry.Slots)
}

func TestRedisLedgerClaimOnStaleEntryStartsFresh(t *testing.T) {
	ledger, mr := newTestRedisLedger(t)

	yesterday := time.Now().AddDate(0, 0, -1).Format(slotDateLayout)
	stale, err := json.Marshal(LedgerEntry{Date: yesterday, Slots: []string{"9:00"}})
	require.NoError(t, err)
	require.NoError(t, mr.Set(ledgerKey, string(stale)))

	require.NoError(t, ledger.ClaimSlot("14:00"))

	entry := storedEntry(t, mr)
	assert.Equal(t, time.Now().Format(slotDateLayout), entry.Date)
	assert.Equal(t, []string{"14:00"}, entry.Slots)
}

func TestRedisLedgerMalformedEntryFailsOpen(t *testing.T) {
	ledger, mr := newTestRedisLedger(t)

	require.NoError(t, mr.Set(ledgerKey, "{not valid json"))

	claimed, err := ledger.ReadClaimedSlots()
	require.NoError(t, err)
	assert.Empty(t, claimed)

	entry := storedEntry(t, mr)
	assert.Equal(t, time.Now().Format(slotDateLayout), entry.Date)
}

func TestRedisLedgerEntryCarriesTTL(t *testing.T) {
	ledger, mr := newTestRedisLedger(t)

	require.NoError(t, ledger.ClaimSlot("9:00"))
	assert.Greater(t, mr.TTL(ledgerKey), time.Duration(0))
}
