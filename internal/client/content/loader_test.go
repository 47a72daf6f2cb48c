package content

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dalesbridge/chronicle/internal/client/api"
	"github.com/dalesbridge/chronicle/internal/common"
)

type fakeStore struct {
	pages     map[string]*api.Page
	getErr    error
	updateErr error
	updated   api.Content

	onGet func(slug string)
}

func (f *fakeStore) GetPage(_ context.Context, slug string) (*api.Page, error) {
	if f.onGet != nil {
		f.onGet(slug)
	}
	if f.getErr != nil {
		return nil, f.getErr
	}
	if p, ok := f.pages[slug]; ok {
		return p, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeStore) UpdatePageContent(_ context.Context, id string, content api.Content) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = content
	return nil
}

func homeFields() []Field {
	return []Field{
		{Name: "heroTitle", DefaultText: "Welcome", HeadingLevel: 1},
		{Name: "intro", DefaultText: "About the parish"},
	}
}

func TestLoadSuccess(t *testing.T) {
	store := &fakeStore{pages: map[string]*api.Page{
		"home": {ID: "p1", Slug: "home", Content: api.Content{}},
	}}
	l := NewLoader(store, homeFields())

	require.Equal(t, StateIdle, l.State())
	state := l.Load(context.Background(), "home")

	assert.Equal(t, StateLoaded, state)
	require.NotNil(t, l.Page())
	assert.Equal(t, "p1", l.Page().ID)
	assert.NoError(t, l.Err())
}

func TestLoadNotFound(t *testing.T) {
	l := NewLoader(&fakeStore{}, homeFields())

	state := l.Load(context.Background(), "missing")

	assert.Equal(t, StateNotFound, state)
	assert.Nil(t, l.Page())
	assert.NoError(t, l.Err())
}

func TestLoadTransportError(t *testing.T) {
	wantErr := errors.New("connection refused")
	l := NewLoader(&fakeStore{getErr: wantErr}, homeFields())

	state := l.Load(context.Background(), "home")

	assert.Equal(t, StateErrored, state)
	assert.ErrorIs(t, l.Err(), wantErr)
}

func TestStaleLoadDiscarded(t *testing.T) {
	store := &fakeStore{pages: map[string]*api.Page{
		"first":  {ID: "p1", Slug: "first"},
		"second": {ID: "p2", Slug: "second"},
	}}
	l := NewLoader(store, homeFields())

	// while the first load is mid-flight, a second load supersedes it
	superseded := false
	store.onGet = func(slug string) {
		if slug == "first" && !superseded {
			superseded = true
			l.Load(context.Background(), "second")
		}
	}

	l.Load(context.Background(), "first")

	require.NotNil(t, l.Page())
	assert.Equal(t, "p2", l.Page().ID)
}

func TestUpdateOptimistic(t *testing.T) {
	store := &fakeStore{pages: map[string]*api.Page{
		"home": {ID: "p1", Slug: "home", Content: api.Content{
			"intro": json.RawMessage(`"old"`),
		}},
	}}
	l := NewLoader(store, homeFields())
	l.Load(context.Background(), "home")

	err := l.Update(context.Background(), "intro", []byte(`"new"`))
	require.NoError(t, err)

	assert.JSONEq(t, `"new"`, string(l.Page().Content["intro"]))
	assert.JSONEq(t, `"new"`, string(store.updated["intro"]))
}

func TestUpdateFailureLeavesStateUntouched(t *testing.T) {
	store := &fakeStore{pages: map[string]*api.Page{
		"home": {ID: "p1", Slug: "home", Content: api.Content{
			"intro": json.RawMessage(`"old"`),
		}},
	}}
	l := NewLoader(store, homeFields())
	l.Load(context.Background(), "home")

	store.updateErr = errors.New("boom")
	err := l.Update(context.Background(), "intro", []byte(`"new"`))

	require.Error(t, err)
	assert.Equal(t, StateLoaded, l.State())
	assert.JSONEq(t, `"old"`, string(l.Page().Content["intro"]))
}

func TestUpdateWithoutLoad(t *testing.T) {
	l := NewLoader(&fakeStore{}, homeFields())

	err := l.Update(context.Background(), "intro", []byte(`"new"`))
	assert.ErrorIs(t, err, common.ErrValidation)
}
