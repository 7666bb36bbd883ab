// Package form drives the create/update/delete lifecycle of a single
// training session edit.
//
// The controller is an explicit state machine: status moves
// idle -> pending -> resolved|rejected, and a manual reset returns it to
// idle from anywhere. Submit is also accepted from resolved, so a fresh
// edit can follow a successful one without an explicit reset; only a
// pending dispatch blocks resubmission. Persistence is delegated to a
// SessionAPI collaborator; the controller never touches storage itself.
//
// A failed submission discards the in-progress draft and resets it to its
// initial state. That mirrors the studio front end's observed behavior;
// whether user input should survive a rejection is a known usability
// question, deliberately not changed here.
package form

import (
	"context"
	"errors"
	"time"

	"peakform/training-studio/internal/domain"
)

// Status of an in-progress session edit.
type Status string

const (
	StatusIdle     Status = "idle"
	StatusPending  Status = "pending"
	StatusResolved Status = "resolved"
	StatusRejected Status = "rejected"
)

// Mode records which operation the last dispatch performed. It is
// independent of Status: a rejected delete keeps ModeDelete so the view
// can phrase its error message.
type Mode string

const (
	ModeCreate Mode = "createSession"
	ModeUpdate Mode = "updateSession"
	ModeDelete Mode = "deleteSession"
)

// Draft is the not-yet-persisted form representation of a session.
// An empty SessionID means create mode; a bound one means update/delete.
type Draft struct {
	SessionID   string `json:"sessionId"`
	OwnerID     string `json:"ownerId"`
	Date        string `json:"date"` // YYYY-MM-DD
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	VideoURL    string `json:"videoUrl,omitempty"`
	Delete      bool   `json:"delete,omitempty"` // Delete marker, set only by the delete dispatch
}

// State is the controller's full observable state.
type State struct {
	Status Status
	Mode   Mode
	Form   Draft
	Err    error
}

// SessionAPI is the external persistence collaborator the controller
// dispatches to. All calls may fail with an opaque error.
type SessionAPI interface {
	FetchSession(ctx context.Context, id string) (*domain.Session, error)
	CreateSession(ctx context.Context, draft Draft) (*domain.Session, error)
	UpdateSession(ctx context.Context, draft Draft) (*domain.Session, error)
	DeleteSession(ctx context.Context, draft Draft) error
}

// RefreshFunc re-fetches the surrounding view after a successful mutation.
// It runs strictly after the mutation's acknowledgment.
type RefreshFunc func(ctx context.Context)

var (
	// ErrOwnerRequired guards submission while no owning client is bound,
	// so a session can never be created without an owner.
	ErrOwnerRequired = errors.New("form: no owning client bound")
	// ErrPending rejects a dispatch while an earlier one is still in flight.
	ErrPending = errors.New("form: operation already pending")
	// ErrNoSession rejects a delete when the draft carries no session id.
	ErrNoSession = errors.New("form: no session bound to delete")
)

// Controller is the per-edit state machine. It is not safe for concurrent
// use; like the view it models, events arrive one at a time.
type Controller struct {
	api     SessionAPI
	refresh RefreshFunc
	ownerID string
	state   State
}

// NewController builds a controller bound to the given owning client.
// ownerID may be empty initially (no client selected yet); submission
// stays guarded until one is bound. refresh may be nil.
func NewController(api SessionAPI, ownerID string, refresh RefreshFunc) *Controller {
	c := &Controller{api: api, refresh: refresh, ownerID: ownerID}
	c.state = State{Status: StatusIdle, Mode: ModeCreate, Form: c.initialDraft()}
	return c
}

func (c *Controller) initialDraft() Draft {
	return Draft{OwnerID: c.ownerID}
}

// State returns a snapshot of the controller's current state.
func (c *Controller) State() State {
	return c.state
}

// CanSubmit reports whether the submit guard passes (an owner is bound).
func (c *Controller) CanSubmit() bool {
	return c.state.Form.OwnerID != ""
}

// BindOwner (re)binds the owning client onto the draft, e.g. when the
// trainer picks a different client from the dropdown.
func (c *Controller) BindOwner(ownerID string) {
	c.ownerID = ownerID
	c.state.Form.OwnerID = ownerID
}

// Load fetches an existing session and seeds the draft from it, switching
// the controller into update/delete territory. Status is not affected.
func (c *Controller) Load(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	session, err := c.api.FetchSession(ctx, sessionID)
	if err != nil {
		return err
	}

	c.state.Form = Draft{
		SessionID:   sessionID,
		OwnerID:     c.state.Form.OwnerID,
		Date:        session.Date.UTC().Format("2006-01-02"),
		Name:        session.Name,
		Description: session.Description,
		VideoURL:    session.VideoURL,
	}
	return nil
}

// Field setters, one per form input.

func (c *Controller) SetDate(v string)        { c.state.Form.Date = v }
func (c *Controller) SetName(v string)        { c.state.Form.Name = v }
func (c *Controller) SetDescription(v string) { c.state.Form.Description = v }
func (c *Controller) SetVideoURL(v string)    { c.state.Form.VideoURL = v }

// Submit dispatches create or update depending on whether the draft
// carries a session id, awaits the result, and transitions accordingly.
// The returned error is the same one captured in State().Err.
func (c *Controller) Submit(ctx context.Context) error {
	if !c.CanSubmit() {
		return ErrOwnerRequired
	}
	if c.state.Status == StatusPending {
		return ErrPending
	}

	var mode Mode
	if c.state.Form.SessionID != "" {
		mode = ModeUpdate
	} else {
		mode = ModeCreate
	}
	c.toPending(mode)

	draft := c.state.Form

	var err error
	if mode == ModeUpdate {
		_, err = c.api.UpdateSession(ctx, draft)
	} else {
		_, err = c.api.CreateSession(ctx, draft)
	}
	if err != nil {
		c.toRejected(err)
		return err
	}

	c.toResolved()
	if c.refresh != nil {
		c.refresh(ctx)
	}
	return nil
}

// Delete dispatches a soft delete for the bound session, passing the draft
// with its delete marker set.
func (c *Controller) Delete(ctx context.Context) error {
	if c.state.Form.SessionID == "" {
		return ErrNoSession
	}
	if c.state.Status == StatusPending {
		return ErrPending
	}

	c.toPending(ModeDelete)

	draft := c.state.Form
	draft.Delete = true

	if err := c.api.DeleteSession(ctx, draft); err != nil {
		c.toRejected(err)
		return err
	}

	c.toResolved()
	if c.refresh != nil {
		c.refresh(ctx)
	}
	return nil
}

// Reset clears the machine back to idle with an empty draft, from any state.
func (c *Controller) Reset() {
	c.state = State{Status: StatusIdle, Mode: ModeCreate, Form: c.initialDraft()}
}

// --- Transitions ---
// One function per event, so every state change is spelled out in one place.

func (c *Controller) toPending(mode Mode) {
	c.state.Status = StatusPending
	c.state.Mode = mode
	c.state.Err = nil
}

// toResolved resets the draft to its initial state. The bound owner id is
// preserved so the trainer can keep adding sessions for the same client.
func (c *Controller) toResolved() {
	c.state = State{Status: StatusResolved, Mode: c.state.Mode, Form: c.initialDraft()}
}

// toRejected captures the error unchanged and discards the draft.
func (c *Controller) toRejected(err error) {
	c.state = State{Status: StatusRejected, Mode: c.state.Mode, Form: c.initialDraft(), Err: err}
}

// ParseDraftDate parses the draft's YYYY-MM-DD date as a timezone-naive
// calendar date (midnight UTC), the form the rest of the system stores.
func ParseDraftDate(d Draft) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", d.Date, time.UTC)
}
