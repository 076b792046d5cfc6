// internal/infra/database/postgres_ledger_repository.go
package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"appointment_reminder_bot/internal/domain/reminder"
)

// Custom errors specific to the sent-reminder ledger
var ErrLedgerEntryNotFound = fmt.Errorf("sent reminder entry not found")
var ErrDuplicateLedgerEntry = fmt.Errorf("duplicate sent reminder entry (reservation_code, tier)")

// PostgresLedgerRepository persists which (reservation code, tier) pairs have
// already been notified. It backs the at-most-once guarantee of the
// dispatcher.
type PostgresLedgerRepository struct {
	db *sql.DB
}

func NewPostgresLedgerRepository(db *sql.DB) *PostgresLedgerRepository {
	return &PostgresLedgerRepository{db: db}
}

func (r *PostgresLedgerRepository) AlreadySent(ctx context.Context, reservationCode string, tier reminder.Tier) (bool, error) {
	query := `SELECT EXISTS (
                 SELECT 1 FROM sent_reminders
                 WHERE reservation_code = $1 AND tier = $2
               )`
	var exists bool
	err := r.db.QueryRowContext(ctx, query, reservationCode, tier).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking sent reminder for %s/%s: %w", reservationCode, tier, err)
	}
	return exists, nil
}

func (r *PostgresLedgerRepository) MarkSent(ctx context.Context, entry *reminder.LedgerEntry) error {
	query := `INSERT INTO sent_reminders (reservation_code, tier, email_sent, chat_sent)
               VALUES ($1, $2, $3, $4)
               RETURNING id, sent_at`
	err := r.db.QueryRowContext(ctx, query, entry.ReservationCode, entry.Tier, entry.EmailSent, entry.ChatSent).
		Scan(&entry.ID, &entry.SentAt)
	if err != nil {
		if strings.Contains(err.Error(), "sent_reminders_code_tier_unique") {
			return ErrDuplicateLedgerEntry
		}
		return fmt.Errorf("error recording sent reminder for %s/%s: %w", entry.ReservationCode, entry.Tier, err)
	}
	return nil
}

// GetEntry returns the ledger row for one (reservation code, tier) pair.
// Mostly useful for ops inspection and tests against a real database.
func (r *PostgresLedgerRepository) GetEntry(ctx context.Context, reservationCode string, tier reminder.Tier) (*reminder.LedgerEntry, error) {
	query := `SELECT id, reservation_code, tier, email_sent, chat_sent, sent_at
               FROM sent_reminders
               WHERE reservation_code = $1 AND tier = $2`
	entry := reminder.LedgerEntry{}
	err := r.db.QueryRowContext(ctx, query, reservationCode, tier).Scan(
		&entry.ID, &entry.ReservationCode, &entry.Tier,
		&entry.EmailSent, &entry.ChatSent, &entry.SentAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrLedgerEntryNotFound
		}
		return nil, fmt.Errorf("error getting sent reminder entry: %w", err)
	}
	return &entry, nil
}
