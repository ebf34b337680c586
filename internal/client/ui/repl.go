package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the command surface the REPL needs. The real App type
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Dashboard(ctx context.Context) error
	AddInterest(ctx context.Context, code string) error
	InterestPosts(ctx context.Context, code string) error
	MyProfile(ctx context.Context) error
	UserProfile(ctx context.Context, idOrName string) error
	Users(ctx context.Context) error
	SearchScreen(ctx context.Context, initial string) error
	QuickFind(ctx context.Context, query string) error
	Logout(ctx context.Context) error
}

// runREPL is the client's read–eval–print loop. It reads one line per
// iteration, takes the first token as the command, and dispatches to methods
// on a. The loop exits on reader EOF or when the user types "exit" or "quit".
//
// Commands when not logged in: help, login, register, exit.
// Commands when logged in: help, dashboard, add [code], posts <code>, me,
// user <id|name>, users, search [text], find <text>, logout, exit.
//
// Command handlers report their own errors to the screen; the loop ignores
// the returned values to stay resilient.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for {
		fmt.Fprintf(out, "recco %s> ", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) && strings.TrimSpace(line) == "" {
				return
			}
			if !errors.Is(err, io.EOF) {
				return
			}
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(out, "Available commands: dashboard, add [code], posts <code>, me, user <id|name>, users, (s)earch [text], find <text>, logout, exit")
			} else {
				fmt.Fprintln(out, "Available commands: login, register, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "add":
			_ = a.AddInterest(ctx, strings.Join(args, " "))

		case "posts":
			if len(args) == 0 {
				fmt.Fprintln(out, "Usage: posts <code>")
				continue
			}
			_ = a.InterestPosts(ctx, args[0])

		case "me":
			_ = a.MyProfile(ctx)

		case "user":
			if len(args) == 0 {
				fmt.Fprintln(out, "Usage: user <id|name>")
				continue
			}
			_ = a.UserProfile(ctx, strings.Join(args, " "))

		case "users":
			_ = a.Users(ctx)

		case "s", "search":
			_ = a.SearchScreen(ctx, strings.Join(args, " "))

		case "find":
			if len(args) == 0 {
				fmt.Fprintln(out, "Usage: find <text>")
				continue
			}
			_ = a.QuickFind(ctx, strings.Join(args, " "))

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
