package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ledgerKey is the single Redis key holding today's ledger entry.
const ledgerKey = "booking:slot-ledger"

// ledgerTTL keeps a superseded entry from lingering forever; the date
// check makes a stale entry invisible well before expiry.
const ledgerTTL = 48 * time.Hour

// RedisLedger persists the daily slot ledger as one JSON entry in Redis.
type RedisLedger struct {
	client *redis.Client
	logger *zap.Logger
	key    string
	now    func() time.Time
}

// NewRedisLedger creates a Redis-backed slot ledger.
func NewRedisLedger(client *redis.Client, logger *zap.Logger) *RedisLedger {
	return &RedisLedger{
		client: client,
		logger: logger,
		key:    ledgerKey,
		now:    time.Now,
	}
}

func (l *RedisLedger) today() string {
	return l.now().Format(slotDateLayout)
}

// readEntry loads the persisted entry. An absent or malformed value is
// reported as ok=false rather than an error: the ledger fails open to the
// empty state.
func (l *RedisLedger) readEntry(ctx context.Context) (LedgerEntry, bool, error) {
	raw, err := l.client.Get(ctx, l.key).Result()
	if err == redis.Nil {
		return LedgerEntry{}, false, nil
	}
	if err != nil {
		return LedgerEntry{}, false, fmt.Errorf("failed to read slot ledger: %w", err)
	}

	var entry LedgerEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		l.logger.Warn("slot ledger entry is malformed, resetting", zap.Error(err))
		return LedgerEntry{}, false, nil
	}
	return entry, true, nil
}

func (l *RedisLedger) writeEntry(ctx context.Context, entry LedgerEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal slot ledger entry: %w", err)
	}
	if err := l.client.Set(ctx, l.key, data, ledgerTTL).Err(); err != nil {
		return fmt.Errorf("failed to persist slot ledger: %w", err)
	}
	return nil
}

// ReadClaimedSlots returns today's claimed slots. If the stored entry is
// absent, stale, or malformed it is replaced with an empty entry dated
// today and the empty set is returned.
func (l *RedisLedger) ReadClaimedSlots() ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	today := l.today()
	entry, ok, err := l.readEntry(ctx)
	if err != nil {
		return nil, err
	}
	if !ok || entry.Date != today {
		fresh := LedgerEntry{Date: today, Slots: []string{}}
		if err := l.writeEntry(ctx, fresh); err != nil {
			return nil, err
		}
		return []string{}, nil
	}
	return entry.Slots, nil
}

// ClaimSlot marks a slot as taken for today. Claiming an already-claimed
// slot is a no-op.
func (l *RedisLedger) ClaimSlot(slot string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	today := l.today()
	entry, ok, err := l.readEntry(ctx)
	if err != nil {
		return err
	}
	if !ok || entry.Date != today {
		entry = LedgerEntry{Date: today, Slots: []string{}}
	}
	if !containsSlot(entry.Slots, slot) {
		entry.Slots = append(entry.Slots, slot)
	}
	return l.writeEntry(ctx, entry)
}
