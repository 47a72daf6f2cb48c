// Package editor holds the state machine behind inline text editing: a
// viewing/editing/saving cycle with a draft buffer that lives apart from
// the displayed content until a save lands.
package editor

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dalesbridge/chronicle/internal/common"
	"github.com/dalesbridge/chronicle/internal/richtext"
)

type State int

const (
	StateViewing State = iota
	StateEditing
	StateSaving
)

func (s State) String() string {
	switch s {
	case StateViewing:
		return "viewing"
	case StateEditing:
		return "editing"
	case StateSaving:
		return "saving"
	}
	return "unknown"
}

// SaveFunc persists the edited HTML fragment. It is called outside the
// editor's lock.
type SaveFunc func(ctx context.Context, html string) error

// Editor edits one field. The gate reports whether edit mode is on; Begin
// refuses while it is off. The buffer is seeded from the rendered content
// once, at Begin, and later changes to the underlying page do not touch an
// open draft.
type Editor struct {
	gate func() bool
	save SaveFunc

	mu      sync.Mutex
	state   State
	buffer  string
	saveErr error
}

func New(gate func() bool, save SaveFunc) *Editor {
	return &Editor{gate: gate, save: save, state: StateViewing}
}

func (e *Editor) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Editor) Buffer() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.buffer
}

// SaveError returns the message of the last failed or rejected save, empty
// when there is none.
func (e *Editor) SaveError() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.saveErr == nil {
		return ""
	}
	return e.saveErr.Error()
}

// Begin opens a draft seeded with the current rendered HTML.
func (e *Editor) Begin(currentHTML string) error {
	if !e.gate() {
		return fmt.Errorf("%w: edit mode is off", common.ErrUnauthorized)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateViewing {
		return fmt.Errorf("%w: already editing", common.ErrValidation)
	}
	e.state = StateEditing
	e.buffer = currentHTML
	e.saveErr = nil
	return nil
}

// SetBuffer replaces the draft text. Ignored outside StateEditing.
func (e *Editor) SetBuffer(html string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == StateEditing {
		e.buffer = html
	}
}

// Save validates and persists the draft. Content that strips down to
// whitespace is rejected locally without calling the save function. On
// failure the draft and the error stay, so the editor can retry or copy
// the text out.
func (e *Editor) Save(ctx context.Context) error {
	e.mu.Lock()
	if e.state != StateEditing {
		err := fmt.Errorf("%w: nothing being edited", common.ErrValidation)
		e.mu.Unlock()
		return err
	}

	if strings.TrimSpace(richtext.PlainText(e.buffer)) == "" {
		e.saveErr = fmt.Errorf("%w: content cannot be empty", common.ErrValidation)
		err := e.saveErr
		e.mu.Unlock()
		return err
	}

	e.state = StateSaving
	buffer := e.buffer
	e.mu.Unlock()

	err := e.save(ctx, buffer)

	e.mu.Lock()
	defer e.mu.Unlock()
	if err != nil {
		e.state = StateEditing
		e.saveErr = err
		return err
	}
	e.state = StateViewing
	e.buffer = ""
	e.saveErr = nil
	return nil
}

// Cancel throws the draft away and returns to viewing. Rejected while a
// save is in flight.
func (e *Editor) Cancel() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == StateSaving {
		return fmt.Errorf("%w: save in progress", common.ErrValidation)
	}
	e.state = StateViewing
	e.buffer = ""
	e.saveErr = nil
	return nil
}

// DismissError clears the retained save error without touching the draft.
func (e *Editor) DismissError() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.saveErr = nil
}
