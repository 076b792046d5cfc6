package reminder

import (
	"math"
	"time"

	"appointment_reminder_bot/internal/domain/appointment"
)

// Eligible is an appointment that entered a tier's reminder window at the
// moment of evaluation. It lives for one poll cycle only.
type Eligible struct {
	Record appointment.Record
	Lead   time.Duration
	// LeadHours and LeadMinutes carry the lead time rounded to the nearest
	// whole unit, for message and log display only. Inclusion always uses
	// the exact Lead.
	LeadHours   int
	LeadMinutes int
}

// SkipReason classifies why a record was left out of a match pass.
type SkipReason string

const (
	SkipStatusFiltered  SkipReason = "status_filtered"
	SkipMissingSchedule SkipReason = "missing_date_or_time"
	SkipUnparsable      SkipReason = "unparsable_date_time"
	SkipOutsideWindow   SkipReason = "outside_window"
)

// Skipped is a per-record diagnostic from a match pass. The caller decides
// how to log it; Match itself stays pure.
type Skipped struct {
	Record appointment.Record
	Reason SkipReason
	Err    error
}

// Match selects the records eligible for one tier's reminder given the
// current time. A malformed row never aborts the rest of the batch: it is
// reported in the skipped slice and matching continues.
func Match(now time.Time, loc *time.Location, records []appointment.Record, tier Tier) ([]Eligible, []Skipped) {
	window := WindowFor(tier)

	var eligible []Eligible
	var skipped []Skipped
	for _, rec := range records {
		if !StatusAllowed(tier, rec.Status) {
			skipped = append(skipped, Skipped{Record: rec, Reason: SkipStatusFiltered})
			continue
		}
		if !rec.HasSchedule() {
			skipped = append(skipped, Skipped{Record: rec, Reason: SkipMissingSchedule})
			continue
		}
		start, err := rec.StartTime(loc)
		if err != nil {
			skipped = append(skipped, Skipped{Record: rec, Reason: SkipUnparsable, Err: err})
			continue
		}

		lead := start.Sub(now)
		if !window.Contains(lead) {
			skipped = append(skipped, Skipped{Record: rec, Reason: SkipOutsideWindow})
			continue
		}

		eligible = append(eligible, Eligible{
			Record:      rec,
			Lead:        lead,
			LeadHours:   int(math.Round(lead.Hours())),
			LeadMinutes: int(math.Round(lead.Minutes())),
		})
	}
	return eligible, skipped
}
