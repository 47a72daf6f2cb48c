package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to. The real
// App type satisfies it; tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context)
	Logout(ctx context.Context)
	Passwd(ctx context.Context)
	EditMode(ctx context.Context, on bool)
	Open(ctx context.Context, slug string)
	Show(ctx context.Context)
	ListFields(ctx context.Context)
	Edit(ctx context.Context, field string)
	Save(ctx context.Context)
	CancelEdit(ctx context.Context)
	Contributions(ctx context.Context)
	ReviewContribution(ctx context.Context)
	DeleteContribution(ctx context.Context)
	Users(ctx context.Context)
	InviteUser(ctx context.Context)
	DeleteUser(ctx context.Context)
}

// runREPL reads a line, parses the first token as the command, and
// dispatches to a. Unknown commands are reported back. The loop exits on
// scanner EOF or "exit"/"quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("chron %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: open <slug>, show, fields, edit <field>, save, cancel, editmode on|off, contributions, review, delcontrib, users, invite, deluser, passwd, logout, exit")
			} else {
				printlnFn("Available commands: login, open <slug>, show, exit")
			}

		case "login":
			a.Login(ctx)

		case "logout":
			a.Logout(ctx)

		case "passwd":
			a.Passwd(ctx)

		case "editmode":
			if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
				printlnFn("Usage: editmode on|off")
				continue
			}
			a.EditMode(ctx, args[0] == "on")

		case "open":
			if len(args) != 1 {
				printlnFn("Usage: open <slug>")
				continue
			}
			a.Open(ctx, args[0])

		case "show":
			a.Show(ctx)

		case "fields":
			a.ListFields(ctx)

		case "edit":
			if len(args) != 1 {
				printlnFn("Usage: edit <field>")
				continue
			}
			a.Edit(ctx, args[0])

		case "save":
			a.Save(ctx)

		case "cancel":
			a.CancelEdit(ctx)

		case "contributions":
			a.Contributions(ctx)

		case "review":
			a.ReviewContribution(ctx)

		case "delcontrib":
			a.DeleteContribution(ctx)

		case "users":
			a.Users(ctx)

		case "invite":
			a.InviteUser(ctx)

		case "deluser":
			a.DeleteUser(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
