package appointment

import (
	"testing"
	"time"
)

func TestParseStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want Status
	}{
		{"AGENDADA", StatusScheduled},
		{"REAGENDADA", StatusRescheduled},
		{"CONFIRMADA", StatusConfirmed},
		{"CANCELADA", StatusCancelled},
		{"COMPLETADA", StatusCompleted},
		{"", StatusUnknown},
		{"agendada", StatusUnknown},
		{"EN PROCESO", StatusUnknown},
	}
	for _, tc := range cases {
		if got := ParseStatus(tc.raw); got != tc.want {
			t.Errorf("ParseStatus(%q) = %s, want %s", tc.raw, got, tc.want)
		}
	}
}

func TestStartTime(t *testing.T) {
	loc, err := time.LoadLocation("America/Bogota")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	rec := Record{Date: "2024-06-02", Time: "08:30"}
	got, err := rec.StartTime(loc)
	if err != nil {
		t.Fatalf("StartTime: %v", err)
	}
	want := time.Date(2024, 6, 2, 8, 30, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("StartTime = %s, want %s", got, want)
	}

	bad := Record{Date: "02/06/2024", Time: "08:30"}
	if _, err := bad.StartTime(loc); err == nil {
		t.Error("expected error for non-ISO date")
	}
}

func TestHasSchedule(t *testing.T) {
	if (Record{Date: "2024-06-02"}).HasSchedule() {
		t.Error("record without time must not have a schedule")
	}
	if (Record{Time: "08:30"}).HasSchedule() {
		t.Error("record without date must not have a schedule")
	}
	if !(Record{Date: "2024-06-02", Time: "08:30"}).HasSchedule() {
		t.Error("record with date and time should have a schedule")
	}
}
