package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dalesbridge/chronicle/internal/client/api"
	"github.com/dalesbridge/chronicle/internal/client/config"
	"github.com/dalesbridge/chronicle/internal/client/session"
	"github.com/dalesbridge/chronicle/internal/richtext"
)

func newTestApp(serverURL, input string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	cfg := &config.Config{ServerEndpointAddr: serverURL}
	app := &App{
		config:  cfg,
		client:  api.NewClient(serverURL),
		session: session.NewManager(),
		reader:  bufio.NewReader(strings.NewReader(input)),
		out:     &out,
	}
	return app, &out
}

func TestOpenEditSaveFlow(t *testing.T) {
	introDoc, err := json.Marshal(richtext.Encode("<p>old intro</p>"))
	require.NoError(t, err)

	var savedContent map[string]json.RawMessage
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/pages/home", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"id":   "p1",
			"slug": "home",
			"content": map[string]json.RawMessage{
				"intro": introDoc,
			},
		})
	})
	mux.HandleFunc("PUT /api/pages/p1/content", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Content map[string]json.RawMessage `json:"content"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		savedContent = req.Content
		w.WriteHeader(http.StatusNoContent)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	// the one stdin line is the replacement text prompted by Edit
	app, out := newTestApp(srv.URL, "A new introduction\n")
	app.session.SetSession(&api.User{ID: "u1", Email: "editor@example.com"})
	require.NoError(t, app.session.SetEditMode(true))

	ctx := context.Background()
	app.Open(ctx, "home")
	assert.Contains(t, out.String(), "old intro")

	app.Edit(ctx, "intro")
	require.NotNil(t, app.editor)
	assert.Equal(t, "<p>A new introduction</p>", app.editor.Buffer())

	app.Save(ctx)
	assert.Nil(t, app.editor)

	require.Contains(t, savedContent, "intro")
	var doc richtext.Document
	require.NoError(t, json.Unmarshal(savedContent["intro"], &doc))
	assert.Equal(t, "A new introduction", doc.Content[0].Text())
}

func TestEditRequiresEditMode(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/pages/home", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"id": "p1", "slug": "home"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	app, _ := newTestApp(srv.URL, "")
	app.session.SetSession(&api.User{ID: "u1"})

	app.Open(context.Background(), "home")
	app.Edit(context.Background(), "intro")

	assert.Nil(t, app.editor)
}

func TestOpenMissingPage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/pages/{slug}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "not found"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	app, _ := newTestApp(srv.URL, "")
	app.Open(context.Background(), "nowhere")

	assert.Nil(t, app.loader)
	assert.Empty(t, app.slug)
}
