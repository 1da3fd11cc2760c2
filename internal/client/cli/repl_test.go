package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	loggedIn bool
	calls    []string
}

func (s *stubExec) isLoggedIn() bool { return s.loggedIn }

func (s *stubExec) record(name string, args ...string) error {
	s.calls = append(s.calls, strings.Join(append([]string{name}, args...), " "))
	return nil
}

func (s *stubExec) SignUp(ctx context.Context) error { return s.record("signup") }
func (s *stubExec) LogIn(ctx context.Context) error  { return s.record("login") }
func (s *stubExec) LogOut(ctx context.Context) error { return s.record("logout") }
func (s *stubExec) Events(ctx context.Context) error { return s.record("events") }
func (s *stubExec) Join(ctx context.Context, id string) error {
	return s.record("join", id)
}
func (s *stubExec) Attendees(ctx context.Context, id string) error {
	return s.record("attendees", id)
}
func (s *stubExec) Route(ctx context.Context, id string) error {
	return s.record("route", id)
}
func (s *stubExec) Profile(ctx context.Context) error { return s.record("profile") }
func (s *stubExec) WhoAmI(ctx context.Context) error  { return s.record("whoami") }

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	old := printlnFn
	t.Cleanup(func() { printlnFn = old })

	var lines []string
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(a...))
		return 0, nil
	}
	return &lines
}

func runScript(t *testing.T, s *stubExec, script string) []string {
	t.Helper()
	lines := captureOutput(t)
	runREPL(context.Background(), s, func() string { return "test" }, bufio.NewScanner(strings.NewReader(script)))
	return *lines
}

func TestREPLDispatch(t *testing.T) {
	s := &stubExec{}
	runScript(t, s, "signup\nlogin\nevents\njoin downtown-crawl\nattendees brewery-tour\nroute downtown-crawl\nprofile\nwhoami\nlogout\nexit\n")

	require.Equal(t, []string{
		"signup", "login", "events",
		"join downtown-crawl", "attendees brewery-tour", "route downtown-crawl",
		"profile", "whoami", "logout",
	}, s.calls)
}

func TestREPLEventsShortcut(t *testing.T) {
	s := &stubExec{}
	runScript(t, s, "e\nquit\n")
	require.Equal(t, []string{"events"}, s.calls)
}

func TestREPLJoinWithoutArgPrintsUsage(t *testing.T) {
	s := &stubExec{}
	out := runScript(t, s, "join\nexit\n")

	require.Empty(t, s.calls)
	joined := strings.Join(out, "")
	require.Contains(t, joined, "Usage: join <event-id>")
}

func TestREPLUnknownCommand(t *testing.T) {
	s := &stubExec{}
	out := runScript(t, s, "frobnicate\nexit\n")

	require.Empty(t, s.calls)
	require.Contains(t, strings.Join(out, ""), "Unknown command: frobnicate")
}

func TestREPLHelpDependsOnLogin(t *testing.T) {
	out := runScript(t, &stubExec{loggedIn: false}, "help\nexit\n")
	require.Contains(t, strings.Join(out, ""), "signup")

	out = runScript(t, &stubExec{loggedIn: true}, "help\nexit\n")
	require.Contains(t, strings.Join(out, ""), "logout")
}

func TestREPLExitsOnEOF(t *testing.T) {
	s := &stubExec{}
	runScript(t, s, "events\n") // no exit, scanner hits EOF
	require.Equal(t, []string{"events"}, s.calls)
}

func TestREPLSkipsBlankLines(t *testing.T) {
	s := &stubExec{}
	runScript(t, s, "\n   \nevents\nexit\n")
	require.Equal(t, []string{"events"}, s.calls)
}
