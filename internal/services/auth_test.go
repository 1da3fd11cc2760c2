package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/pubcrawl/internal/common"
	"github.com/stretchr/testify/require"
)

func TestSignUpThenLogIn(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created := env.signUp(t, "Alex", "alex@test.com", "secret1")
	require.Equal(t, "alex@test.com", created.Email)
	require.NotEmpty(t, created.PasswordDigest)
	require.NotEqual(t, "secret1", created.PasswordDigest)
	require.Contains(t, created.Photo, "data:image/svg+xml")

	// Sign-up logs the account in.
	current, ok := env.auth.CurrentUser()
	require.True(t, ok)
	require.Equal(t, "alex@test.com", current.Email)

	env.auth.LogOut(ctx)
	_, ok = env.auth.CurrentUser()
	require.False(t, ok)

	back, err := env.auth.LogIn(ctx, "alex@test.com", "secret1")
	require.NoError(t, err)
	require.Equal(t, "alex@test.com", back.Email)
}

func TestSignUpValidationOrder(t *testing.T) {
	env := newTestEnv(t)
	env.signUp(t, "Alex", "alex@test.com", "secret1")
	ctx := context.Background()

	tests := []struct {
		name     string
		userName string
		email    string
		password string
		reason   string
	}{
		{"missing name first", "", "not-an-email", "x", "Please enter your name."},
		{"invalid email before short password", "Bob", "no-at-sign", "x", "Please enter a valid email."},
		{"empty email", "Bob", "", "secret1", "Please enter a valid email."},
		{"short password before duplicate", "Bob", "alex@test.com", "12345", "Password must be at least 6 characters."},
		{"duplicate email last", "Bob", "alex@test.com", "secret1", "An account with that email already exists."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.auth.SignUp(ctx, tc.userName, tc.email, tc.password)
			require.True(t, common.IsValidation(err))
			require.EqualError(t, err, tc.reason)
		})
	}
}

func TestSignUpDuplicateLeavesFirstAccountUnchanged(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first := env.signUp(t, "Alex", "alex@test.com", "secret1")

	// Case-normalized duplicate.
	_, err := env.auth.SignUp(ctx, "Impostor", "ALEX@Test.com", "different1")
	require.True(t, common.IsValidation(err))

	stored, ok := env.store.Account("alex@test.com")
	require.True(t, ok)
	require.Equal(t, first, stored)
}

func TestLogInGenericErrorHidesWhichFieldWasWrong(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.signUp(t, "Alex", "alex@test.com", "secret1")
	env.auth.LogOut(ctx)

	_, unknownErr := env.auth.LogIn(ctx, "nobody@test.com", "secret1")
	_, wrongPwErr := env.auth.LogIn(ctx, "alex@test.com", "wrong-password")

	require.ErrorIs(t, unknownErr, common.ErrInvalidCredentials)
	require.ErrorIs(t, wrongPwErr, common.ErrInvalidCredentials)
	require.Equal(t, unknownErr.Error(), wrongPwErr.Error())
}

func TestLogInValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.auth.LogIn(ctx, "not-an-email", "secret1")
	require.True(t, common.IsValidation(err))
	require.EqualError(t, err, "Please enter a valid email.")

	_, err = env.auth.LogIn(ctx, "alex@test.com", "")
	require.True(t, common.IsValidation(err))
	require.EqualError(t, err, "Please enter your password.")
}

func TestLogInNormalizesEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.signUp(t, "Alex", "alex@test.com", "secret1")
	env.auth.LogOut(ctx)

	a, err := env.auth.LogIn(ctx, "  Alex@TEST.com ", "secret1")
	require.NoError(t, err)
	require.Equal(t, "alex@test.com", a.Email)
}

func TestReLoginOverwritesSession(t *testing.T) {
	env := newTestEnv(t)
	env.signUp(t, "Alex", "alex@test.com", "secret1")
	env.signUp(t, "Beth", "beth@test.com", "secret2")

	current, ok := env.auth.CurrentUser()
	require.True(t, ok)
	require.Equal(t, "beth@test.com", current.Email)
}

func TestCurrentUserWithDanglingSession(t *testing.T) {
	env := newTestEnv(t)
	env.store.SetSession("ghost@test.com")

	_, ok := env.auth.CurrentUser()
	require.False(t, ok)
}
