// Package studio holds view models for the training-studio area.
package studio

import (
	"context"

	"peakform/training-studio/internal/calendar"
	"peakform/training-studio/internal/domain"
)

// API is the data-access collaborator the table reads from.
type API interface {
	// GetUserWithSessions returns the client identified by slug together
	// with their (non-deleted) sessions, in one round trip.
	GetUserWithSessions(ctx context.Context, slug string) (*domain.User, []domain.Session, error)
}

// TableData backs the per-client session table: it fetches the client and
// their sessions once, then re-sorts the cached rows whenever the sort
// column changes. Sorting never costs a network round trip; only Load does.
type TableData struct {
	api      API
	slug     string
	sortKey  calendar.SortKey
	user     *domain.User
	sessions []domain.Session
	loaded   bool
}

// NewTableData builds a table for the client identified by slug,
// sorted by date until told otherwise.
func NewTableData(api API, slug string) *TableData {
	return &TableData{api: api, slug: slug, sortKey: calendar.SortByDate}
}

// Load fetches the user and session list and sorts by the current key.
// Call it on mount and again whenever the underlying data may have
// changed (e.g. after a successful session mutation).
func (t *TableData) Load(ctx context.Context) error {
	user, sessions, err := t.api.GetUserWithSessions(ctx, t.slug)
	if err != nil {
		return err
	}

	t.user = user
	t.sessions = calendar.SortSessions(t.sortKey, sessions)
	t.loaded = true
	return nil
}

// SetSortKey changes the sort column and re-sorts the already-fetched
// sessions in place. No fetch happens; before the first Load it only
// records the key.
func (t *TableData) SetSortKey(key calendar.SortKey) {
	t.sortKey = key
	if !t.loaded {
		return
	}
	t.sessions = calendar.SortSessions(key, t.sessions)
}

// Sessions returns the current rows in sorted order. Nil before Load.
func (t *TableData) Sessions() []domain.Session {
	return t.sessions
}

// User returns the client record. Nil before Load.
func (t *TableData) User() *domain.User {
	return t.user
}

// SortKey returns the active sort column.
func (t *TableData) SortKey() calendar.SortKey {
	return t.sortKey
}
