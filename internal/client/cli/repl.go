package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with
// a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	SignUp(ctx context.Context) error
	LogIn(ctx context.Context) error
	LogOut(ctx context.Context) error
	Events(ctx context.Context) error
	Join(ctx context.Context, eventID string) error
	Attendees(ctx context.Context, eventID string) error
	Route(ctx context.Context, eventID string) error
	Profile(ctx context.Context) error
	WhoAmI(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the pubcrawl CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("pubcrawl> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (e)vents, join <event>, attendees <event>, route <event>, profile, whoami, logout, exit")
			} else {
				printlnFn("Available commands: (e)vents, attendees <event>, route <event>, signup, login, exit")
			}

		case "signup":
			_ = a.SignUp(ctx)

		case "login":
			_ = a.LogIn(ctx)

		case "logout":
			_ = a.LogOut(ctx)

		case "e", "events":
			_ = a.Events(ctx)

		case "join":
			if len(args) == 0 {
				printlnFn("Usage: join <event-id>")
				continue
			}
			_ = a.Join(ctx, args[0])

		case "attendees":
			if len(args) == 0 {
				printlnFn("Usage: attendees <event-id>")
				continue
			}
			_ = a.Attendees(ctx, args[0])

		case "route":
			if len(args) == 0 {
				printlnFn("Usage: route <event-id>")
				continue
			}
			_ = a.Route(ctx, args[0])

		case "profile":
			_ = a.Profile(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
