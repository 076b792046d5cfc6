package scheduler

import (
	"context"
	"fmt"
	"time"

	"appointment_reminder_bot/internal/app"
	"appointment_reminder_bot/internal/domain/notify"
	"appointment_reminder_bot/internal/domain/reminder"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// ReminderScheduler triggers the three tier polls on their cron cadences.
// The polls only read the appointment store, so the jobs are free to overlap
// each other.
type ReminderScheduler struct {
	cronEngine *cron.Cron
	service    app.ReminderService
	notifier   notify.OpsNotifier
	logger     *logrus.Logger
	spec24h    string
	spec12h    string
	spec15min  string
}

func NewReminderScheduler(
	service app.ReminderService,
	notifier notify.OpsNotifier,
	logger *logrus.Logger,
	location *time.Location,
	spec24h string, // e.g. "0 * * * *" (hourly; the window is 2h wide)
	spec12h string, // e.g. "30 * * * *"
	spec15min string, // e.g. "*/5 * * * *" (the window is 10min wide)
) *ReminderScheduler {
	return &ReminderScheduler{
		cronEngine: cron.New(cron.WithLocation(location)),
		service:    service,
		notifier:   notifier,
		logger:     logger,
		spec24h:    spec24h,
		spec12h:    spec12h,
		spec15min:  spec15min,
	}
}

func (s *ReminderScheduler) Start() {
	s.logger.Info("Starting reminder scheduler...")

	_, err := s.cronEngine.AddFunc(s.spec24h, func() {
		s.runPoll(reminder.Tier24Hours, 2*time.Minute, s.service.Process24HourReminders)
	})
	if err != nil {
		s.logger.Fatalf("Could not add 24h reminder cron job: %v", err)
	}

	_, err = s.cronEngine.AddFunc(s.spec12h, func() {
		s.runPoll(reminder.Tier12Hours, 2*time.Minute, s.service.Process12HourReminders)
	})
	if err != nil {
		s.logger.Fatalf("Could not add 12h reminder cron job: %v", err)
	}

	_, err = s.cronEngine.AddFunc(s.spec15min, func() {
		s.runPoll(reminder.Tier15Minutes, 1*time.Minute, s.service.Process15MinuteReminders)
	})
	if err != nil {
		s.logger.Fatalf("Could not add 15min reminder cron job: %v", err)
	}

	s.cronEngine.Start()
	s.logger.Infof("Reminder scheduler started (24h: %q, 12h: %q, 15min: %q)", s.spec24h, s.spec12h, s.spec15min)
}

func (s *ReminderScheduler) runPoll(tier reminder.Tier, timeout time.Duration, poll func(context.Context) app.PollReport) {
	s.logger.Debugf("Cron job triggered for %s reminder poll", tier)
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	report := poll(ctx)
	s.reportPoll(report)
}

// reportPoll logs the poll outcome and forwards anything noteworthy to the
// ops notifier. Quiet polls (nothing in the window) stay out of the admin
// chat.
func (s *ReminderScheduler) reportPoll(report app.PollReport) {
	if report.FetchFailed {
		s.logger.Warnf("%s poll completed without data (appointment fetch failed)", report.Tier)
		if err := s.notifier.Notify(fmt.Sprintf("⚠️ Recordatorios %s: no se pudo leer la hoja de citas", report.Tier)); err != nil {
			s.logger.Warnf("Ops notification failed: %v", err)
		}
		return
	}

	emailOK, chatOK := 0, 0
	for _, o := range report.Outcomes {
		if o.EmailSent {
			emailOK++
		}
		if o.ChatSent {
			chatOK++
		}
	}
	s.logger.Infof("%s poll done: found=%d dispatched=%d already_sent=%d email_ok=%d chat_ok=%d",
		report.Tier, report.Found, len(report.Outcomes), report.AlreadySent, emailOK, chatOK)

	if len(report.Outcomes) == 0 {
		return
	}
	summary := fmt.Sprintf("Recordatorios %s: %d citas, email %d/%d, WhatsApp %d/%d",
		report.Tier, len(report.Outcomes), emailOK, len(report.Outcomes), chatOK, len(report.Outcomes))
	if err := s.notifier.Notify(summary); err != nil {
		s.logger.Warnf("Ops notification failed: %v", err)
	}
}

func (s *ReminderScheduler) Stop() {
	s.logger.Info("Stopping reminder scheduler...")
	ctx := s.cronEngine.Stop() // Waits for running jobs to finish.
	<-ctx.Done()
	s.logger.Info("Reminder scheduler gracefully stopped.")
}
