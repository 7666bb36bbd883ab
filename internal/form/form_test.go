package form

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peakform/training-studio/internal/domain"
)

// fakeAPI records dispatches and returns scripted results.
type fakeAPI struct {
	created []Draft
	updated []Draft
	deleted []Draft

	fetchResult *domain.Session
	err         error
}

func (f *fakeAPI) FetchSession(ctx context.Context, id string) (*domain.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.fetchResult, nil
}

func (f *fakeAPI) CreateSession(ctx context.Context, draft Draft) (*domain.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, draft)
	return &domain.Session{Name: draft.Name}, nil
}

func (f *fakeAPI) UpdateSession(ctx context.Context, draft Draft) (*domain.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.updated = append(f.updated, draft)
	return &domain.Session{Name: draft.Name}, nil
}

func (f *fakeAPI) DeleteSession(ctx context.Context, draft Draft) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, draft)
	return nil
}

func TestNewControllerStartsIdle(t *testing.T) {
	c := NewController(&fakeAPI{}, "owner-1", nil)

	st := c.State()
	assert.Equal(t, StatusIdle, st.Status)
	assert.Equal(t, Draft{OwnerID: "owner-1"}, st.Form)
	assert.NoError(t, st.Err)
}

func TestSubmitGuardedWithoutOwner(t *testing.T) {
	api := &fakeAPI{}
	c := NewController(api, "", nil)

	err := c.Submit(context.Background())

	assert.ErrorIs(t, err, ErrOwnerRequired)
	assert.Equal(t, StatusIdle, c.State().Status, "guard must not transition")
	assert.Empty(t, api.created)
}

func TestSubmitCreateResolvesAndResetsDraft(t *testing.T) {
	api := &fakeAPI{}
	refreshed := 0
	c := NewController(api, "owner-1", func(context.Context) { refreshed++ })

	c.SetDate("2024-03-10")
	c.SetName("Leg day")
	c.SetDescription("Squats and lunges")

	require.NoError(t, c.Submit(context.Background()))

	st := c.State()
	assert.Equal(t, StatusResolved, st.Status)
	assert.Equal(t, ModeCreate, st.Mode)
	assert.Equal(t, Draft{OwnerID: "owner-1"}, st.Form, "draft resets, owner preserved")
	assert.Equal(t, 1, refreshed)

	require.Len(t, api.created, 1)
	assert.Equal(t, "Leg day", api.created[0].Name)
	assert.Empty(t, api.updated)
}

func TestSubmitDispatchesUpdateWhenSessionBound(t *testing.T) {
	api := &fakeAPI{
		fetchResult: &domain.Session{
			Date:        time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
			Name:        "Leg day",
			Description: "Squats",
		},
	}
	c := NewController(api, "owner-1", nil)

	require.NoError(t, c.Load(context.Background(), "session-1"))
	assert.Equal(t, "2024-03-10", c.State().Form.Date)

	c.SetName("Leg day, heavier")
	require.NoError(t, c.Submit(context.Background()))

	assert.Equal(t, ModeUpdate, c.State().Mode)
	require.Len(t, api.updated, 1)
	assert.Equal(t, "session-1", api.updated[0].SessionID)
	assert.Empty(t, api.created)
}

func TestFailedUpdateRejectsAndDiscardsDraft(t *testing.T) {
	boom := errors.New("network down")
	api := &fakeAPI{fetchResult: &domain.Session{Name: "Leg day"}}
	c := NewController(api, "owner-1", nil)
	require.NoError(t, c.Load(context.Background(), "session-1"))

	api.err = boom
	err := c.Submit(context.Background())

	assert.ErrorIs(t, err, boom)

	st := c.State()
	assert.Equal(t, StatusRejected, st.Status)
	assert.Same(t, boom, st.Err, "error surfaces unchanged")
	assert.Equal(t, Draft{OwnerID: "owner-1"}, st.Form, "failed edits discard user input")
}

func TestFailureDoesNotRefresh(t *testing.T) {
	api := &fakeAPI{err: errors.New("nope")}
	refreshed := 0
	c := NewController(api, "owner-1", func(context.Context) { refreshed++ })
	c.SetName("x")

	_ = c.Submit(context.Background())

	assert.Zero(t, refreshed)
}

func TestResubmitAfterRejection(t *testing.T) {
	api := &fakeAPI{err: errors.New("flaky")}
	c := NewController(api, "owner-1", nil)
	c.SetName("Leg day")

	require.Error(t, c.Submit(context.Background()))
	assert.Equal(t, StatusRejected, c.State().Status)

	// User re-enters data and tries again once the network is back.
	api.err = nil
	c.SetName("Leg day")
	c.SetDate("2024-03-10")
	require.NoError(t, c.Submit(context.Background()))

	assert.Equal(t, StatusResolved, c.State().Status)
	assert.Len(t, api.created, 1)
}

func TestResubmitAfterResolution(t *testing.T) {
	api := &fakeAPI{}
	c := NewController(api, "owner-1", nil)

	c.SetName("Leg day")
	c.SetDate("2024-03-10")
	require.NoError(t, c.Submit(context.Background()))
	require.Equal(t, StatusResolved, c.State().Status)

	// No reset needed between edits; only a pending dispatch blocks.
	c.SetName("Cardio")
	c.SetDate("2024-03-11")
	require.NoError(t, c.Submit(context.Background()))

	assert.Equal(t, StatusResolved, c.State().Status)
	assert.Len(t, api.created, 2)
}

func TestDeleteDispatchesDraftWithMarker(t *testing.T) {
	api := &fakeAPI{fetchResult: &domain.Session{Name: "Leg day"}}
	refreshed := 0
	c := NewController(api, "owner-1", func(context.Context) { refreshed++ })
	require.NoError(t, c.Load(context.Background(), "session-1"))

	require.NoError(t, c.Delete(context.Background()))

	st := c.State()
	assert.Equal(t, StatusResolved, st.Status)
	assert.Equal(t, ModeDelete, st.Mode)
	assert.Equal(t, 1, refreshed)

	require.Len(t, api.deleted, 1)
	assert.True(t, api.deleted[0].Delete)
	assert.Equal(t, "session-1", api.deleted[0].SessionID)
}

func TestDeleteWithoutBoundSession(t *testing.T) {
	api := &fakeAPI{}
	c := NewController(api, "owner-1", nil)

	err := c.Delete(context.Background())

	assert.ErrorIs(t, err, ErrNoSession)
	assert.Equal(t, StatusIdle, c.State().Status)
	assert.Empty(t, api.deleted)
}

func TestResetFromAnyState(t *testing.T) {
	api := &fakeAPI{err: errors.New("boom")}
	c := NewController(api, "owner-1", nil)
	c.SetName("scratch")
	_ = c.Submit(context.Background())
	require.Equal(t, StatusRejected, c.State().Status)

	c.Reset()

	st := c.State()
	assert.Equal(t, StatusIdle, st.Status)
	assert.Equal(t, Draft{OwnerID: "owner-1"}, st.Form)
	assert.NoError(t, st.Err)
}

func TestBindOwnerEnablesSubmission(t *testing.T) {
	api := &fakeAPI{}
	c := NewController(api, "", nil)
	assert.False(t, c.CanSubmit())

	c.BindOwner("owner-2")

	assert.True(t, c.CanSubmit())
	c.SetName("First session")
	require.NoError(t, c.Submit(context.Background()))
	require.Len(t, api.created, 1)
	assert.Equal(t, "owner-2", api.created[0].OwnerID)
}

func TestParseDraftDate(t *testing.T) {
	got, err := ParseDraftDate(Draft{Date: "2024-03-10"})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDraftDate(Draft{Date: "10/03/2024"})
	assert.Error(t, err)
}
