package calendar

import (
	"time"

	"peakform/training-studio/internal/domain"
)

// sameCalendarDate compares two instants on their UTC calendar fields only.
func sameCalendarDate(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// SessionsOnDay returns the sessions falling on the given calendar day.
//
// Soft-deleted sessions are always skipped. A session matches when the UTC
// (year, month, day) of its date equals the day-cell's date; time-of-day is
// irrelevant. The result preserves the input order and the input slice is
// never modified. The result may be empty.
func SessionsOnDay(sessions []domain.Session, day Day) []domain.Session {
	if len(sessions) == 0 {
		return nil
	}

	date := day.Date()

	var matched []domain.Session
	for _, s := range sessions {
		if s.Deleted {
			continue
		}
		if sameCalendarDate(s.Date, date) {
			matched = append(matched, s)
		}
	}
	return matched
}
