package scheduler

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"appointment_reminder_bot/internal/app"
	"appointment_reminder_bot/internal/domain/reminder"

	"github.com/sirupsen/logrus"
)

type fakeService struct {
	report app.PollReport
}

func (f *fakeService) Process24HourReminders(context.Context) app.PollReport { return f.report }
func (f *fakeService) Process12HourReminders(context.Context) app.PollReport { return f.report }
func (f *fakeService) Process15MinuteReminders(context.Context) app.PollReport { return f.report }

type fakeNotifier struct {
	messages []string
}

func (f *fakeNotifier) Notify(text string) error {
	f.messages = append(f.messages, text)
	return nil
}

func newScheduler(svc app.ReminderService, n *fakeNotifier) *ReminderScheduler {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return NewReminderScheduler(svc, n, l, time.UTC, "0 * * * *", "30 * * * *", "*/5 * * * *")
}

func TestReportPoll_NotifiesOnDispatch(t *testing.T) {
	notifier := &fakeNotifier{}
	s := newScheduler(&fakeService{}, notifier)

	s.reportPoll(app.PollReport{
		Tier:  reminder.Tier24Hours,
		Found: 2,
		Outcomes: []app.DispatchOutcome{
			{ReservationCode: "RES-1", EmailSent: true, ChatSent: true},
			{ReservationCode: "RES-2", EmailSent: true, ChatSent: false},
		},
	})

	if len(notifier.messages) != 1 {
		t.Fatalf("expected 1 ops message, got %d", len(notifier.messages))
	}
	msg := notifier.messages[0]
	if !strings.Contains(msg, "24h") || !strings.Contains(msg, "email 2/2") || !strings.Contains(msg, "WhatsApp 1/2") {
		t.Errorf("unexpected summary: %q", msg)
	}
}

func TestReportPoll_QuietPollStaysQuiet(t *testing.T) {
	notifier := &fakeNotifier{}
	s := newScheduler(&fakeService{}, notifier)

	s.reportPoll(app.PollReport{Tier: reminder.Tier12Hours})
	if len(notifier.messages) != 0 {
		t.Errorf("empty poll must not notify ops, got %v", notifier.messages)
	}
}

func TestReportPoll_FetchFailureAlertsOps(t *testing.T) {
	notifier := &fakeNotifier{}
	s := newScheduler(&fakeService{}, notifier)

	s.reportPoll(app.PollReport{Tier: reminder.Tier15Minutes, FetchFailed: true})
	if len(notifier.messages) != 1 {
		t.Fatalf("expected 1 ops alert, got %d", len(notifier.messages))
	}
	if !strings.Contains(notifier.messages[0], "15min") {
		t.Errorf("alert should name the tier: %q", notifier.messages[0])
	}
}
