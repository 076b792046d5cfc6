package reminder

import (
	"time"

	"appointment_reminder_bot/internal/domain/appointment"
)

// Tier identifies one of the three fixed reminder lead times.
type Tier string

const (
	Tier24Hours   Tier = "24h"
	Tier12Hours   Tier = "12h"
	Tier15Minutes Tier = "15min"
)

// Tiers lists all tiers in descending lead-time order.
func Tiers() []Tier {
	return []Tier{Tier24Hours, Tier12Hours, Tier15Minutes}
}

// Window is the closed interval of lead time within which an appointment is
// eligible for a tier's reminder. Both ends are inclusive.
type Window struct {
	Min time.Duration
	Max time.Duration
}

// Contains reports whether lead falls inside the window, boundaries included.
func (w Window) Contains(lead time.Duration) bool {
	return lead >= w.Min && lead <= w.Max
}

// WindowFor returns the matching window of a tier.
//
// The windows are 2h (resp. 10min) wide around the nominal lead time so that
// an hourly (resp. sub-10-minute) polling cadence cannot step over them.
func WindowFor(tier Tier) Window {
	switch tier {
	case Tier24Hours:
		return Window{Min: 23 * time.Hour, Max: 25 * time.Hour}
	case Tier12Hours:
		return Window{Min: 11 * time.Hour, Max: 13 * time.Hour}
	case Tier15Minutes:
		return Window{Min: 10 * time.Minute, Max: 20 * time.Minute}
	default:
		return Window{}
	}
}

// StatusAllowed applies the per-tier state filter. The 24h tier is a
// pre-confirmation nudge and only fires while the appointment is still in a
// scheduled (unconfirmed) state; 12h and 15min fire for everything except
// cancellations. Unrecognized statuses count as non-cancelled.
func StatusAllowed(tier Tier, s appointment.Status) bool {
	switch tier {
	case Tier24Hours:
		return s == appointment.StatusScheduled || s == appointment.StatusRescheduled
	case Tier12Hours, Tier15Minutes:
		return s != appointment.StatusCancelled
	default:
		return false
	}
}
