package reminder

import (
	"context"
	"time"
)

// LedgerEntry records that a reminder for one (reservation code, tier) pair
// has been dispatched, and how each channel fared.
type LedgerEntry struct {
	ID              int64
	ReservationCode string
	Tier            Tier
	EmailSent       bool
	ChatSent        bool
	SentAt          time.Time
}

// Ledger is the persisted sent-reminder record consulted before dispatch and
// updated after a successful send. It is what guarantees at-most-once
// delivery per tier per appointment across repeated polls of the same
// window.
type Ledger interface {
	AlreadySent(ctx context.Context, reservationCode string, tier Tier) (bool, error)
	MarkSent(ctx context.Context, entry *LedgerEntry) error
}
