// Package session tracks the editor's sign-in state and the edit-mode
// toggle, and notifies subscribers when either changes.
package session

import (
	"fmt"
	"sync"

	"github.com/dalesbridge/chronicle/internal/client/api"
	"github.com/dalesbridge/chronicle/internal/common"
)

// Manager holds the current session. Edit mode can only be on while a
// session exists; losing the session switches it off in the same update,
// so observers never see edit mode without authentication.
type Manager struct {
	mu       sync.Mutex
	user     *api.User
	editMode bool

	nextID      int
	subscribers map[int]func()
}

func NewManager() *Manager {
	return &Manager{subscribers: map[int]func(){}}
}

func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user != nil
}

func (m *Manager) CurrentUser() *api.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

func (m *Manager) IsEditMode() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.editMode
}

// SetSession records the signed-in user, or clears the session when user is
// nil. Clearing also disables edit mode before subscribers run.
func (m *Manager) SetSession(user *api.User) {
	m.mu.Lock()
	m.user = user
	if user == nil {
		m.editMode = false
	}
	m.mu.Unlock()
	m.notify()
}

// SetEditMode toggles inline editing. Enabling without a session is
// rejected.
func (m *Manager) SetEditMode(on bool) error {
	m.mu.Lock()
	if on && m.user == nil {
		m.mu.Unlock()
		return fmt.Errorf("%w: sign in to enable edit mode", common.ErrUnauthorized)
	}
	changed := m.editMode != on
	m.editMode = on
	m.mu.Unlock()

	if changed {
		m.notify()
	}
	return nil
}

// Subscribe registers fn to run after every state change. The returned
// function removes the subscription; calling it more than once is harmless.
func (m *Manager) Subscribe(fn func()) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subscribers[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subscribers, id)
		m.mu.Unlock()
	}
}

func (m *Manager) notify() {
	m.mu.Lock()
	fns := make([]func(), 0, len(m.subscribers))
	for _, fn := range m.subscribers {
		fns = append(fns, fn)
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
