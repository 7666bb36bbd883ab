package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peakform/training-studio/internal/domain"
)

func TestSortSessionsByDate(t *testing.T) {
	sessions := []domain.Session{
		session("later", time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC), false),
		session("earlier", time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), false),
	}

	got := SortSessions(SortByDate, sessions)

	require.Len(t, got, 2)
	assert.Equal(t, "earlier", got[0].Name)
	assert.Equal(t, "later", got[1].Name)

	// Input order untouched.
	assert.Equal(t, "later", sessions[0].Name)
}

func TestSortSessionsByName(t *testing.T) {
	sessions := []domain.Session{
		session("zumba", time.Time{}, false),
		session("aerobics", time.Time{}, false),
	}

	got := SortSessions(SortByName, sessions)

	assert.Equal(t, "aerobics", got[0].Name)
	assert.Equal(t, "zumba", got[1].Name)
}

func TestSortSessionsStableForEqualKeys(t *testing.T) {
	date := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	sessions := []domain.Session{
		session("first in", date, false),
		session("second in", date, false),
	}

	got := SortSessions(SortByDate, sessions)

	assert.Equal(t, "first in", got[0].Name)
	assert.Equal(t, "second in", got[1].Name)
}

func TestSortSessionsIdempotent(t *testing.T) {
	sessions := []domain.Session{
		session("c", time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC), false),
		session("a", time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), false),
		session("b", time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC), false),
	}

	once := SortSessions(SortByDate, sessions)
	twice := SortSessions(SortByDate, once)

	assert.Equal(t, once, twice)
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortByName, ParseSortKey("name"))
	assert.Equal(t, SortByDate, ParseSortKey("date"))
	assert.Equal(t, SortByDate, ParseSortKey(""))
	assert.Equal(t, SortByDate, ParseSortKey("nonsense"))
}
