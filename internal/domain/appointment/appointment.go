package appointment

import (
	"fmt"
	"time"
)

// Status is the lifecycle state of an appointment as recorded in the sheet.
// The sheet is free text, so any value outside the known set maps to
// StatusUnknown, which counts as neither cancelled nor confirmed.
type Status string

const (
	StatusScheduled   Status = "AGENDADA"
	StatusRescheduled Status = "REAGENDADA"
	StatusConfirmed   Status = "CONFIRMADA"
	StatusCancelled   Status = "CANCELADA"
	StatusCompleted   Status = "COMPLETADA"
	StatusUnknown     Status = "UNKNOWN"
)

// ParseStatus maps a raw sheet cell to a Status.
func ParseStatus(raw string) Status {
	switch Status(raw) {
	case StatusScheduled, StatusRescheduled, StatusConfirmed, StatusCancelled, StatusCompleted:
		return Status(raw)
	default:
		return StatusUnknown
	}
}

// Record is a read-only snapshot of one appointment row, rebuilt on every
// poll. Date and Time are kept as the raw sheet strings; StartTime combines
// them on demand.
type Record struct {
	ReservationCode  string
	ClientName       string
	ClientPhone      string
	ClientEmail      string
	ProfessionalName string
	ServiceName      string
	Date             string // "2006-01-02"
	Time             string // "15:04"
	Status           Status
	RawStatus        string
}

const startTimeLayout = "2006-01-02 15:04"

// HasSchedule reports whether the record carries both a date and a time.
// Records without either never match any reminder window.
func (r Record) HasSchedule() bool {
	return r.Date != "" && r.Time != ""
}

// StartTime resolves the absolute appointment timestamp in the business
// timezone.
func (r Record) StartTime(loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(startTimeLayout, r.Date+" "+r.Time, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid appointment date/time %q %q: %w", r.Date, r.Time, err)
	}
	return t, nil
}
