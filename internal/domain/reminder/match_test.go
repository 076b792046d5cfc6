package reminder

import (
	"strings"
	"testing"
	"time"

	"appointment_reminder_bot/internal/domain/appointment"
)

func record(code, date, timeOfDay string, status appointment.Status) appointment.Record {
	return appointment.Record{
		ReservationCode: code,
		ClientName:      "Ana Torres",
		ClientPhone:     "+573001112233",
		ClientEmail:     "ana@example.com",
		Date:            date,
		Time:            timeOfDay,
		Status:          status,
	}
}

func TestMatch_WindowBoundariesAreInclusive(t *testing.T) {
	loc := time.UTC
	cases := []struct {
		name string
		tier Tier
		now  time.Time
		date string
		time string
		want bool
	}{
		{"24h lower boundary 23.00h", Tier24Hours, time.Date(2024, 6, 1, 9, 0, 0, 0, loc), "2024-06-02", "08:00", true},
		{"24h upper boundary 25.00h", Tier24Hours, time.Date(2024, 6, 1, 9, 0, 0, 0, loc), "2024-06-02", "10:00", true},
		{"24h just below window 22.99h", Tier24Hours, time.Date(2024, 6, 1, 9, 0, 36, 0, loc), "2024-06-02", "08:00", false},
		{"24h just above window 25.01h", Tier24Hours, time.Date(2024, 6, 1, 8, 59, 24, 0, loc), "2024-06-02", "10:00", false},
		{"12h lower boundary 11.00h", Tier12Hours, time.Date(2024, 6, 1, 9, 0, 0, 0, loc), "2024-06-01", "20:00", true},
		{"12h upper boundary 13.00h", Tier12Hours, time.Date(2024, 6, 1, 9, 0, 0, 0, loc), "2024-06-01", "22:00", true},
		{"12h outside window", Tier12Hours, time.Date(2024, 6, 1, 9, 0, 0, 0, loc), "2024-06-01", "23:00", false},
		{"15min lower boundary 10.00min", Tier15Minutes, time.Date(2024, 6, 1, 9, 0, 0, 0, loc), "2024-06-01", "09:10", true},
		{"15min upper boundary 20.00min", Tier15Minutes, time.Date(2024, 6, 1, 9, 0, 0, 0, loc), "2024-06-01", "09:20", true},
		{"15min just below window", Tier15Minutes, time.Date(2024, 6, 1, 9, 0, 30, 0, loc), "2024-06-01", "09:10", false},
		{"15min just above window", Tier15Minutes, time.Date(2024, 6, 1, 8, 59, 30, 0, loc), "2024-06-01", "09:20", false},
		{"appointment in the past", Tier24Hours, time.Date(2024, 6, 3, 9, 0, 0, 0, loc), "2024-06-02", "08:00", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status := appointment.StatusScheduled
			eligible, _ := Match(tc.now, loc, []appointment.Record{record("R1", tc.date, tc.time, status)}, tc.tier)
			got := len(eligible) == 1
			if got != tc.want {
				t.Fatalf("inclusion = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMatch_StatusFiltersPerTier(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, loc)

	cases := []struct {
		name   string
		tier   Tier
		date   string
		time   string
		status appointment.Status
		want   bool
	}{
		{"24h allows scheduled", Tier24Hours, "2024-06-02", "09:00", appointment.StatusScheduled, true},
		{"24h allows rescheduled", Tier24Hours, "2024-06-02", "09:00", appointment.StatusRescheduled, true},
		{"24h excludes confirmed even in range", Tier24Hours, "2024-06-02", "09:00", appointment.StatusConfirmed, false},
		{"24h excludes cancelled", Tier24Hours, "2024-06-02", "09:00", appointment.StatusCancelled, false},
		{"24h excludes unknown", Tier24Hours, "2024-06-02", "09:00", appointment.StatusUnknown, false},
		{"12h allows confirmed", Tier12Hours, "2024-06-01", "21:00", appointment.StatusConfirmed, true},
		{"12h allows unknown", Tier12Hours, "2024-06-01", "21:00", appointment.StatusUnknown, true},
		{"12h excludes cancelled regardless of lead", Tier12Hours, "2024-06-01", "21:00", appointment.StatusCancelled, false},
		{"15min allows confirmed", Tier15Minutes, "2024-06-01", "09:15", appointment.StatusConfirmed, true},
		{"15min excludes cancelled regardless of lead", Tier15Minutes, "2024-06-01", "09:15", appointment.StatusCancelled, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			eligible, _ := Match(now, loc, []appointment.Record{record("R1", tc.date, tc.time, tc.status)}, tc.tier)
			got := len(eligible) == 1
			if got != tc.want {
				t.Fatalf("inclusion = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMatch_IncompleteAndMalformedRows(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, loc)

	records := []appointment.Record{
		record("NO-DATE", "", "09:00", appointment.StatusScheduled),
		record("NO-TIME", "2024-06-02", "", appointment.StatusScheduled),
		record("BAD", "not-a-date", "xx:yy", appointment.StatusScheduled),
		record("OK", "2024-06-02", "09:00", appointment.StatusScheduled),
	}

	for _, tier := range Tiers() {
		eligible, skipped := Match(now, loc, records, tier)
		for _, e := range eligible {
			if e.Record.ReservationCode != "OK" {
				t.Fatalf("tier %s: record %s should have been skipped", tier, e.Record.ReservationCode)
			}
		}
		for _, sk := range skipped {
			switch sk.Record.ReservationCode {
			case "NO-DATE", "NO-TIME":
				if tier == Tier24Hours && sk.Reason != SkipMissingSchedule {
					t.Errorf("tier %s: record %s skipped for %s, want %s", tier, sk.Record.ReservationCode, sk.Reason, SkipMissingSchedule)
				}
			case "BAD":
				if tier == Tier24Hours {
					if sk.Reason != SkipUnparsable {
						t.Errorf("record BAD skipped for %s, want %s", sk.Reason, SkipUnparsable)
					}
					if sk.Err == nil {
						t.Error("record BAD should carry the parse error")
					}
				}
			}
		}
	}

	// The one well-formed record is exactly 24h out, so only the 24h tier
	// should pick it up.
	eligible, _ := Match(now, loc, records, Tier24Hours)
	if len(eligible) != 1 || eligible[0].Record.ReservationCode != "OK" {
		t.Fatalf("24h tier eligible = %+v, want only OK", eligible)
	}
}

func TestMatch_ScheduledAppointment23Point5HoursOut(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, loc)
	rec := record("RES-100", "2024-06-02", "08:30", appointment.StatusScheduled)

	eligible, _ := Match(now, loc, []appointment.Record{rec}, Tier24Hours)
	if len(eligible) != 1 {
		t.Fatalf("expected 1 eligible appointment, got %d", len(eligible))
	}
	if eligible[0].LeadHours != 24 {
		t.Errorf("rounded lead hours = %d, want 24 (23.5h rounds up)", eligible[0].LeadHours)
	}

	cancelled := rec
	cancelled.Status = appointment.StatusCancelled
	eligible, _ = Match(now, loc, []appointment.Record{cancelled}, Tier24Hours)
	if len(eligible) != 0 {
		t.Fatalf("cancelled appointment must not match the 24h tier")
	}
}

func TestMatch_ConfirmedAppointment15MinutesOut(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, loc)
	rec := record("RES-200", "2024-06-01", "09:15", appointment.StatusConfirmed)

	eligible, _ := Match(now, loc, []appointment.Record{rec}, Tier15Minutes)
	if len(eligible) != 1 {
		t.Fatalf("expected 1 eligible appointment, got %d", len(eligible))
	}
	if eligible[0].LeadMinutes != 15 {
		t.Errorf("rounded lead minutes = %d, want 15", eligible[0].LeadMinutes)
	}

	msg := Formatter{BusinessAddress: "Calle 1 #2-3"}.ChatMessage(Tier15Minutes, eligible[0])
	if !strings.Contains(msg, "Tu cita está confirmada") {
		t.Error("confirmed 15min reminder should use the confirmation acknowledgment variant")
	}
	if strings.Contains(msg, "REAGENDAR") {
		t.Error("15min reminder must never offer rescheduling")
	}
}
