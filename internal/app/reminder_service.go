// internal/app/reminder_service.go
package app

import (
	"context"
	"sync"
	"time"

	"appointment_reminder_bot/internal/domain/appointment"
	"appointment_reminder_bot/internal/domain/reminder"
	idb "appointment_reminder_bot/internal/infra/database"

	"github.com/sirupsen/logrus"
)

// DispatchOutcome is the per-channel result for one appointment. A failed
// channel is reported here, never raised: one channel failing must not block
// the other, and no send failure may abort the poll.
type DispatchOutcome struct {
	ReservationCode string
	ClientName      string
	EmailSent       bool
	ChatSent        bool
}

// PollReport summarizes one tier poll for the scheduler and ops logging.
type PollReport struct {
	Tier        reminder.Tier
	FetchFailed bool
	Found       int
	AlreadySent int
	Outcomes    []DispatchOutcome
}

// ReminderService exposes the three externally triggered poll operations,
// one per reminder tier.
type ReminderService interface {
	Process24HourReminders(ctx context.Context) PollReport
	Process12HourReminders(ctx context.Context) PollReport
	Process15MinuteReminders(ctx context.Context) PollReport
}

// ReminderServiceImpl composes fetch -> match -> format -> dispatch for one
// tier per call. It holds no state between polls beyond the ledger.
type ReminderServiceImpl struct {
	repo      appointment.Repository
	ledger    reminder.Ledger
	email     reminder.EmailSender
	chat      reminder.Messenger
	formatter reminder.Formatter
	location  *time.Location
	logger    *logrus.Logger
	now       func() time.Time
}

func NewReminderServiceImpl(
	repo appointment.Repository,
	ledger reminder.Ledger,
	email reminder.EmailSender,
	chat reminder.Messenger,
	formatter reminder.Formatter,
	location *time.Location,
	logger *logrus.Logger,
) *ReminderServiceImpl {
	return &ReminderServiceImpl{
		repo:      repo,
		ledger:    ledger,
		email:     email,
		chat:      chat,
		formatter: formatter,
		location:  location,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *ReminderServiceImpl) Process24HourReminders(ctx context.Context) PollReport {
	return s.processTier(ctx, reminder.Tier24Hours)
}

func (s *ReminderServiceImpl) Process12HourReminders(ctx context.Context) PollReport {
	return s.processTier(ctx, reminder.Tier12Hours)
}

func (s *ReminderServiceImpl) Process15MinuteReminders(ctx context.Context) PollReport {
	return s.processTier(ctx, reminder.Tier15Minutes)
}

// processTier runs one full poll cycle for a tier. Reminders are
// best-effort: a fetch failure yields an empty poll, a malformed row is
// skipped, a failed channel is recorded as false. Nothing on this path is
// allowed to take the process down.
func (s *ReminderServiceImpl) processTier(ctx context.Context, tier reminder.Tier) PollReport {
	report := PollReport{Tier: tier}

	records, err := s.repo.FetchAll(ctx)
	if err != nil {
		s.logger.Errorf("Fetching appointments failed for %s poll, treating as empty: %v", tier, err)
		report.FetchFailed = true
		return report
	}

	now := s.now().In(s.location)
	eligible, skipped := reminder.Match(now, s.location, records, tier)
	report.Found = len(eligible)

	for _, sk := range skipped {
		if sk.Reason == reminder.SkipUnparsable {
			s.logger.Warnf("Skipping appointment %s: unparsable date/time %q %q: %v",
				sk.Record.ReservationCode, sk.Record.Date, sk.Record.Time, sk.Err)
			continue
		}
		s.logger.Debugf("Skipping appointment %s for %s poll: %s (status=%q date=%q time=%q)",
			sk.Record.ReservationCode, tier, sk.Reason, sk.Record.RawStatus, sk.Record.Date, sk.Record.Time)
	}
	s.logger.Infof("%s poll: %d of %d appointments inside the reminder window", tier, len(eligible), len(records))

	for _, e := range eligible {
		sent, err := s.ledger.AlreadySent(ctx, e.Record.ReservationCode, tier)
		if err != nil {
			// Without a ledger answer a send risks a duplicate, so skip this
			// appointment for this poll; the next poll inside the window
			// retries.
			s.logger.Errorf("Ledger check failed for %s/%s, skipping dispatch: %v", e.Record.ReservationCode, tier, err)
			continue
		}
		if sent {
			s.logger.Debugf("Reminder %s/%s already sent, skipping", e.Record.ReservationCode, tier)
			report.AlreadySent++
			continue
		}

		outcome := s.dispatch(ctx, tier, e)
		report.Outcomes = append(report.Outcomes, outcome)

		if outcome.EmailSent || outcome.ChatSent {
			entry := &reminder.LedgerEntry{
				ReservationCode: e.Record.ReservationCode,
				Tier:            tier,
				EmailSent:       outcome.EmailSent,
				ChatSent:        outcome.ChatSent,
			}
			if err := s.ledger.MarkSent(ctx, entry); err != nil && err != idb.ErrDuplicateLedgerEntry {
				s.logger.Errorf("Failed to record sent reminder %s/%s: %v", e.Record.ReservationCode, tier, err)
			}
		}
	}

	return report
}

// dispatch sends one reminder over both channels. The sends are independent
// and run concurrently; neither sees or blocks the other's result.
func (s *ReminderServiceImpl) dispatch(ctx context.Context, tier reminder.Tier, e reminder.Eligible) DispatchOutcome {
	outcome := DispatchOutcome{
		ReservationCode: e.Record.ReservationCode,
		ClientName:      e.Record.ClientName,
	}

	chatBody := s.formatter.ChatMessage(tier, e)

	var wg sync.WaitGroup
	var emailErr, chatErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		emailErr = s.email.SendReminder(ctx, tier, e)
	}()
	go func() {
		defer wg.Done()
		chatErr = s.chat.SendText(ctx, e.Record.ClientPhone, chatBody)
	}()
	wg.Wait()

	if emailErr != nil {
		s.logger.Warnf("Email reminder %s to %s failed: %v", tier, e.Record.ClientEmail, emailErr)
	} else {
		outcome.EmailSent = true
		s.logger.Infof("Email reminder %s sent to %s (%s)", tier, e.Record.ClientEmail, e.Record.ReservationCode)
	}

	if chatErr != nil {
		s.logger.Warnf("WhatsApp reminder %s to %s failed: %v", tier, e.Record.ClientPhone, chatErr)
	} else {
		outcome.ChatSent = true
		s.logger.Infof("WhatsApp reminder %s sent to %s (%s)", tier, e.Record.ClientPhone, e.Record.ReservationCode)
	}

	return outcome
}
