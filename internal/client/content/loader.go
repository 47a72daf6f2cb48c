// Package content loads a page from the store and tracks the loading state
// a view needs: loading, loaded, missing, or failed. It also carries the
// optimistic-update path used by inline editing.
package content

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dalesbridge/chronicle/internal/client/api"
	"github.com/dalesbridge/chronicle/internal/common"
)

type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateNotFound
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateNotFound:
		return "not found"
	case StateErrored:
		return "errored"
	}
	return "unknown"
}

// NotFoundMessage is shown in place of page content when the slug has no
// row.
const NotFoundMessage = "Page not found"

// Field describes one editable region of a page: the content key it is
// stored under, the placeholder shown when the key is absent, and the
// heading level for fields rendered as headings (0 for body text).
type Field struct {
	Name         string
	DefaultText  string
	HeadingLevel int
}

// PageStore is the slice of the API client the loader needs.
type PageStore interface {
	GetPage(ctx context.Context, slug string) (*api.Page, error)
	UpdatePageContent(ctx context.Context, id string, content api.Content) error
}

// Loader drives the page lifecycle for one view. Each Load supersedes the
// previous one: results arriving for an older load are discarded, so a
// slow response can never overwrite a newer page.
type Loader struct {
	store  PageStore
	fields []Field

	mu         sync.Mutex
	generation int
	state      State
	page       *api.Page
	err        error
}

func NewLoader(store PageStore, fields []Field) *Loader {
	return &Loader{store: store, fields: fields, state: StateIdle}
}

func (l *Loader) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Page returns the loaded page, or nil unless the state is StateLoaded.
func (l *Loader) Page() *api.Page {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.page
}

// Err returns the failure behind StateErrored, nil otherwise.
func (l *Loader) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

func (l *Loader) Fields() []Field {
	return l.fields
}

// Load fetches the page for slug and settles into Loaded, NotFound, or
// Errored. Starting another Load while one is in flight supersedes it.
func (l *Loader) Load(ctx context.Context, slug string) State {
	l.mu.Lock()
	l.generation++
	gen := l.generation
	l.state = StateLoading
	l.page = nil
	l.err = nil
	l.mu.Unlock()

	page, err := l.store.GetPage(ctx, slug)

	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.generation {
		// a newer Load took over while we waited
		return l.state
	}

	switch {
	case err == nil:
		l.state = StateLoaded
		l.page = page
	case errors.Is(err, common.ErrNotFound):
		l.state = StateNotFound
	default:
		l.state = StateErrored
		l.err = err
	}
	return l.state
}

// Update saves a changed field and optimistically applies it to the loaded
// page, so the view refreshes without a re-fetch. A failed save leaves the
// local page untouched and returns the error.
func (l *Loader) Update(ctx context.Context, field string, value []byte) error {
	l.mu.Lock()
	if l.state != StateLoaded || l.page == nil {
		l.mu.Unlock()
		return fmt.Errorf("%w: no page loaded", common.ErrValidation)
	}
	id := l.page.ID
	gen := l.generation

	next := make(api.Content, len(l.page.Content)+1)
	for k, v := range l.page.Content {
		next[k] = v
	}
	next[field] = value
	l.mu.Unlock()

	if err := l.store.UpdatePageContent(ctx, id, next); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if gen == l.generation && l.state == StateLoaded && l.page != nil && l.page.ID == id {
		l.page.Content = next
	}
	return nil
}
