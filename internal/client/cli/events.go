package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/pubcrawl/internal/catalog"
	"github.com/dmitrijs2005/pubcrawl/internal/common"
)

// Events lists the catalog with attendance counts and a joined marker.
func (a *App) Events(ctx context.Context) error {
	for _, event := range a.catalog.Events() {
		marker := " "
		if a.attendance.IsJoined(event.ID) {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s %s — %s (%s · %s · %s)",
			marker, event.ID, event.Title, event.Date, event.Time, event.Location)
		if n := a.attendance.Count(event.ID); n > 0 {
			fmt.Fprintf(a.out, " — %d going", n)
		}
		fmt.Fprintln(a.out)
	}
	return nil
}

// Join adds the current user to an event's attendee list.
func (a *App) Join(ctx context.Context, eventID string) error {
	event, ok := a.catalog.Get(eventID)
	if !ok {
		fmt.Fprintf(a.out, "Unknown event: %s\n", eventID)
		return nil
	}

	if err := a.attendance.Join(ctx, event.ID); err != nil {
		if errors.Is(err, common.ErrNoSession) {
			fmt.Fprintln(a.out, "Log in (or sign up) first, then join again.")
			return nil
		}
		return err
	}

	fmt.Fprintf(a.out, "Joined %s. %d going.\n", event.Title, a.attendance.Count(event.ID))
	return nil
}

// Attendees prints the attendee profiles of an event, in join order.
func (a *App) Attendees(ctx context.Context, eventID string) error {
	event, ok := a.catalog.Get(eventID)
	if !ok {
		fmt.Fprintf(a.out, "Unknown event: %s\n", eventID)
		return nil
	}

	members := a.attendance.Members(event.ID)
	if len(members) == 0 {
		fmt.Fprintf(a.out, "Nobody has joined %s yet.\n", event.Title)
		return nil
	}

	fmt.Fprintf(a.out, "%s — %d going:\n", event.Title, a.attendance.Count(event.ID))
	for _, m := range members {
		fmt.Fprintf(a.out, "  %s <%s>", m.Name, m.Email)
		if m.Age != nil {
			fmt.Fprintf(a.out, ", %d", *m.Age)
		}
		if m.Bio != "" {
			fmt.Fprintf(a.out, " — %s", m.Bio)
		}
		fmt.Fprintln(a.out)
	}
	return nil
}

// Route prints the stop schedule and the walking route summary for an event.
func (a *App) Route(ctx context.Context, eventID string) error {
	event, ok := a.catalog.Get(eventID)
	if !ok {
		fmt.Fprintf(a.out, "Unknown event: %s\n", eventID)
		return nil
	}

	route, err := catalog.BuildRoute(event.Stops)
	if err != nil {
		fmt.Fprintf(a.out, "%s has no route: %v\n", event.Title, err)
		return nil
	}

	fmt.Fprintf(a.out, "%s — %d stops:\n", event.Title, len(event.Stops))
	for i, stop := range event.Stops {
		fmt.Fprintf(a.out, "  %d. %-20s %s, %s — %s\n",
			i+1, stop.Name, stop.Time, stop.Address, stop.Description)
	}
	fmt.Fprintf(a.out, "Walk: %s → %s, about %.1f km.\n",
		route.Origin.Name, route.Destination.Name, route.TotalKm)
	return nil
}
