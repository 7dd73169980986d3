package booking

import (
	"sync"
	"time"
)

// SlotLedger tracks which catalog slots have already been claimed for the
// current calendar day. Implementations self-reset at day boundaries: a
// read on a new day discards the previous day's claims and persists a
// fresh empty entry as a side effect. The ledger is a convenience cache of
// "what has this portal already handed out today", not a reservation
// authority.
type SlotLedger interface {
	// ReadClaimedSlots returns today's claimed slots. A missing, stale, or
	// malformed entry is treated as empty and replaced with a fresh entry
	// dated today.
	ReadClaimedSlots() ([]string, error)
	// ClaimSlot marks a slot as taken for today. Claiming an
	// already-claimed slot is a no-op.
	ClaimSlot(slot string) error
}

// LedgerEntry is the persisted form of the ledger: exactly one entry is
// live at a time, superseded when the date rolls over.
type LedgerEntry struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// containsSlot reports whether slot is already present in slots.
func containsSlot(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}

// MemoryLedger keeps the ledger in process memory. It backs tests and
// serves as a degraded-mode fallback when Redis is unavailable.
type MemoryLedger struct {
	mu    sync.Mutex
	entry LedgerEntry
	now   func() time.Time
}

// NewMemoryLedger creates an empty in-memory ledger.
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{now: time.Now}
}

func (l *MemoryLedger) today() string {
	return l.now().Format(slotDateLayout)
}

// rollover replaces the entry if its date is not today. Caller holds l.mu.
func (l *MemoryLedger) rollover() {
	if today := l.today(); l.entry.Date != today {
		l.entry = LedgerEntry{Date: today, Slots: []string{}}
	}
}

// ReadClaimedSlots returns today's claimed slots, resetting the entry if
// the day has rolled over.
func (l *MemoryLedger) ReadClaimedSlots() ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.rollover()
	out := make([]string, len(l.entry.Slots))
	copy(out, l.entry.Slots)
	return out, nil
}

// ClaimSlot marks a slot as taken for today.
func (l *MemoryLedger) ClaimSlot(slot string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.rollover()
	if !containsSlot(l.entry.Slots, slot) {
		l.entry.Slots = append(l.entry.Slots, slot)
	}
	return nil
}
