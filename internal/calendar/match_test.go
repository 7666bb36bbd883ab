package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peakform/training-studio/internal/domain"
)

func session(name string, date time.Time, deleted bool) domain.Session {
	return domain.Session{Name: name, Date: date, Deleted: deleted}
}

func TestSessionsOnDayMatchesByCalendarDate(t *testing.T) {
	sessions := []domain.Session{
		session("squats", time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), false),
		session("deadlifts", time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC), false),
	}
	day := Day{Day: 10, Month: 2, Year: 2024}

	got := SessionsOnDay(sessions, day)

	require.Len(t, got, 1)
	assert.Equal(t, "squats", got[0].Name)
}

func TestSessionsOnDayIgnoresTimeOfDay(t *testing.T) {
	sessions := []domain.Session{
		session("morning run", time.Date(2024, time.March, 10, 6, 15, 0, 0, time.UTC), false),
		session("evening swim", time.Date(2024, time.March, 10, 23, 59, 59, 0, time.UTC), false),
	}

	got := SessionsOnDay(sessions, Day{Day: 10, Month: 2, Year: 2024})
	assert.Len(t, got, 2)
}

func TestSessionsOnDaySkipsDeleted(t *testing.T) {
	date := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	sessions := []domain.Session{
		session("kept", date, false),
		session("soft deleted", date, true),
	}

	got := SessionsOnDay(sessions, Day{Day: 10, Month: 2, Year: 2024})

	require.Len(t, got, 1)
	assert.Equal(t, "kept", got[0].Name)
}

func TestSessionsOnDayPreservesInputOrder(t *testing.T) {
	date := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	sessions := []domain.Session{
		session("first", date, false),
		session("second", date, false),
		session("third", date, false),
	}

	got := SessionsOnDay(sessions, Day{Day: 10, Month: 2, Year: 2024})

	require.Len(t, got, 3)
	assert.Equal(t, "first", got[0].Name)
	assert.Equal(t, "second", got[1].Name)
	assert.Equal(t, "third", got[2].Name)
}

func TestSessionsOnDayDoesNotMutateInput(t *testing.T) {
	sessions := []domain.Session{
		session("b", time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), false),
		session("a", time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), false),
	}

	_ = SessionsOnDay(sessions, Day{Day: 10, Month: 2, Year: 2024})

	assert.Equal(t, "b", sessions[0].Name)
	assert.Equal(t, "a", sessions[1].Name)
}

func TestSessionsOnDayEmptyInputs(t *testing.T) {
	assert.Empty(t, SessionsOnDay(nil, Day{Day: 1, Month: 0, Year: 2024}))
	assert.Empty(t, SessionsOnDay([]domain.Session{}, Day{Day: 1, Month: 0, Year: 2024}))
}
