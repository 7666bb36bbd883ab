package calendar

import (
	"sort"

	"peakform/training-studio/internal/domain"
)

// SortKey identifies the session-table column to order by.
type SortKey string

const (
	SortByDate        SortKey = "date" // default
	SortByName        SortKey = "name"
	SortByDescription SortKey = "description"
	SortByVideoURL    SortKey = "videoUrl"
	SortByID          SortKey = "id"
)

// ParseSortKey maps a column name to a SortKey, falling back to date for
// anything unknown or empty.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortByName, SortByDescription, SortByVideoURL, SortByID:
		return SortKey(s)
	default:
		return SortByDate
	}
}

// SortSessions returns a new slice ordered ascending by the given key:
// chronological for date, lexicographic for string columns. The sort is
// stable, so sessions with equal keys keep their relative input order.
// The input slice is not modified.
func SortSessions(key SortKey, sessions []domain.Session) []domain.Session {
	sorted := make([]domain.Session, len(sessions))
	copy(sorted, sessions)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		switch key {
		case SortByName:
			return a.Name < b.Name
		case SortByDescription:
			return a.Description < b.Description
		case SortByVideoURL:
			return a.VideoURL < b.VideoURL
		case SortByID:
			return a.ID.Hex() < b.ID.Hex()
		default:
			return a.Date.Before(b.Date)
		}
	})

	return sorted
}
