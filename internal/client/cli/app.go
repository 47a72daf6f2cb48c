// Package cli is the curator's terminal client: sign-in, browsing pages,
// inline editing of page fields, and the admin surface for contributions
// and editor accounts.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dalesbridge/chronicle/internal/client/api"
	"github.com/dalesbridge/chronicle/internal/client/config"
	"github.com/dalesbridge/chronicle/internal/client/content"
	"github.com/dalesbridge/chronicle/internal/client/editor"
	"github.com/dalesbridge/chronicle/internal/client/session"
)

type App struct {
	config  *config.Config
	client  *api.Client
	session *session.Manager

	// the page currently open, if any
	loader *content.Loader
	slug   string

	// the field currently being edited, if any
	editor       *editor.Editor
	editingField string

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) *App {
	return &App{
		config:  c,
		client:  api.NewClient(c.ServerEndpointAddr),
		session: session.NewManager(),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
}

func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	s := ""
	if user := a.session.CurrentUser(); user != nil {
		s = user.Email
	}
	if a.session.IsEditMode() {
		s += " [edit]"
	}
	if a.slug != "" {
		s += " " + a.slug
	}
	return s
}
