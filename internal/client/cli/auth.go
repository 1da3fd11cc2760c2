package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/pubcrawl/internal/shared"
)

// SignUp interactively creates an account. On success the user is logged in
// right away, matching the web flow.
func (a *App) SignUp(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Your name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	account, err := a.auth.SignUp(ctx, name, email, string(password))
	shared.WipeByteArray(password)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s! You are signed up and logged in.\n", account.Name)
	return nil
}

// LogIn interactively authenticates an existing account.
func (a *App) LogIn(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	account, err := a.auth.LogIn(ctx, email, string(password))
	shared.WipeByteArray(password)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", account.Name)
	return nil
}

// LogOut clears the session.
func (a *App) LogOut(ctx context.Context) error {
	a.auth.LogOut(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// WhoAmI prints the current user's profile.
func (a *App) WhoAmI(ctx context.Context) error {
	user, ok := a.auth.CurrentUser()
	if !ok {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	fmt.Fprintf(a.out, "%s <%s>\n", user.Name, user.Email)
	if user.Age != nil {
		fmt.Fprintf(a.out, "Age: %d\n", *user.Age)
	}
	if user.Bio != "" {
		fmt.Fprintf(a.out, "Bio: %s\n", user.Bio)
	}
	return nil
}
