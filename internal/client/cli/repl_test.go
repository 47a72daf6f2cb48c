package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	arg   string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
}
func (f *fakeExec) Logout(ctx context.Context) {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
}
func (f *fakeExec) Passwd(ctx context.Context) { f.calls = append(f.calls, "passwd") }
func (f *fakeExec) EditMode(ctx context.Context, on bool) {
	f.calls = append(f.calls, "editmode")
	if on {
		f.arg = "on"
	} else {
		f.arg = "off"
	}
}
func (f *fakeExec) Open(ctx context.Context, slug string) {
	f.calls = append(f.calls, "open")
	f.arg = slug
}
func (f *fakeExec) Show(ctx context.Context)       { f.calls = append(f.calls, "show") }
func (f *fakeExec) ListFields(ctx context.Context) { f.calls = append(f.calls, "fields") }
func (f *fakeExec) Edit(ctx context.Context, field string) {
	f.calls = append(f.calls, "edit")
	f.arg = field
}
func (f *fakeExec) Save(ctx context.Context)               { f.calls = append(f.calls, "save") }
func (f *fakeExec) CancelEdit(ctx context.Context)         { f.calls = append(f.calls, "cancel") }
func (f *fakeExec) Contributions(ctx context.Context)      { f.calls = append(f.calls, "contributions") }
func (f *fakeExec) ReviewContribution(ctx context.Context) { f.calls = append(f.calls, "review") }
func (f *fakeExec) DeleteContribution(ctx context.Context) { f.calls = append(f.calls, "delcontrib") }
func (f *fakeExec) Users(ctx context.Context)              { f.calls = append(f.calls, "users") }
func (f *fakeExec) InviteUser(ctx context.Context)         { f.calls = append(f.calls, "invite") }
func (f *fakeExec) DeleteUser(ctx context.Context)         { f.calls = append(f.calls, "deluser") }

func runScript(t *testing.T, f *fakeExec, script string) []string {
	t.Helper()

	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, 0, len(a))
		for _, v := range a {
			if s, ok := v.(string); ok {
				parts = append(parts, s)
			}
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	defer func() { printlnFn = orig }()

	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), f, func() string { return "" }, scanner)
	return lines
}

func TestREPLDispatch(t *testing.T) {
	f := &fakeExec{}
	runScript(t, f, "login\nopen home\nedit intro\nsave\nlogout\nexit\n")

	assert.Equal(t, []string{"login", "open", "edit", "save", "logout"}, f.calls)
}

func TestREPLCommandArgs(t *testing.T) {
	f := &fakeExec{}
	runScript(t, f, "open history\nexit\n")
	assert.Equal(t, "history", f.arg)

	f = &fakeExec{}
	runScript(t, f, "editmode on\nexit\n")
	assert.Equal(t, "on", f.arg)
}

func TestREPLUsageErrors(t *testing.T) {
	f := &fakeExec{}
	lines := runScript(t, f, "open\neditmode sideways\nexit\n")

	assert.Empty(t, f.calls)
	assert.Contains(t, lines, "Usage: open <slug>")
	assert.Contains(t, lines, "Usage: editmode on|off")
}

func TestREPLUnknownCommand(t *testing.T) {
	f := &fakeExec{}
	lines := runScript(t, f, "frobnicate\nexit\n")

	assert.Contains(t, lines, "Unknown command: frobnicate")
}

func TestREPLExitsOnEOF(t *testing.T) {
	f := &fakeExec{}
	runScript(t, f, "show\n")
	assert.Equal(t, []string{"show"}, f.calls)
}
