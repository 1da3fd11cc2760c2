package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/pubcrawl/internal/services"
	"github.com/dmitrijs2005/pubcrawl/internal/upload"
)

// Profile interactively edits the current user's profile. Pressing Enter on
// the name keeps the current one; the other fields are taken as typed, so an
// empty age clears it. A photo path is read and encoded up front but only
// committed with the rest of the edit.
func (a *App) Profile(ctx context.Context) error {
	user, ok := a.auth.CurrentUser()
	if !ok {
		fmt.Fprintln(a.out, "Log in first to edit your profile.")
		return nil
	}

	fmt.Fprintf(a.out, "Editing profile of %s <%s>\n", user.Name, user.Email)

	name, err := GetSimpleText(a.reader, fmt.Sprintf("Name [%s]", user.Name), a.out)
	if err != nil {
		return err
	}
	if name == "" {
		name = user.Name
	}

	age, err := GetSimpleText(a.reader, "Age (optional, empty clears)", a.out)
	if err != nil {
		return err
	}

	bio, err := GetSimpleText(a.reader, "Bio (optional, max 80 chars)", a.out)
	if err != nil {
		return err
	}

	// The staged photo: empty path keeps the current picture.
	var photo string
	photoPath, err := GetSimpleText(a.reader, "Photo file (optional)", a.out)
	if err != nil {
		return err
	}
	if photoPath != "" {
		photo, err = upload.DataURI(photoPath)
		if err != nil {
			fmt.Fprintf(a.out, "Could not read photo, keeping the current one: %v\n", err)
			photo = ""
		}
	}

	a.profile.Update(ctx, services.ProfileUpdate{
		Name:  name,
		Age:   age,
		Bio:   bio,
		Photo: photo,
	})

	fmt.Fprintln(a.out, "Profile saved.")
	return nil
}
