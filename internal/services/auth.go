package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/pubcrawl/internal/avatar"
	"github.com/dmitrijs2005/pubcrawl/internal/common"
	"github.com/dmitrijs2005/pubcrawl/internal/hashx"
	"github.com/dmitrijs2005/pubcrawl/internal/logging"
	"github.com/dmitrijs2005/pubcrawl/internal/models"
	"github.com/dmitrijs2005/pubcrawl/internal/repositories/snapshot"
	"github.com/dmitrijs2005/pubcrawl/internal/store"
)

// MinPasswordLen is the minimum accepted password length on sign-up.
const MinPasswordLen = 6

// AuthService defines account creation, credential verification and session
// handling.
//
// Contract:
//   - SignUp: create an account and log it in; validation failures are
//     *common.ValidationError values with user-facing reasons.
//   - LogIn: verify credentials; unknown email and wrong password both fail
//     with common.ErrInvalidCredentials, same message either way.
//   - LogOut: clear the session; never fails.
//   - CurrentUser: dereference the session through the account store.
type AuthService interface {
	SignUp(ctx context.Context, name, email, password string) (*models.Account, error)
	LogIn(ctx context.Context, email, password string) (*models.Account, error)
	LogOut(ctx context.Context)
	CurrentUser() (*models.Account, bool)
}

type authService struct {
	base
}

// NewAuthService constructs an AuthService over the shared store.
func NewAuthService(st *store.Store, snapshots snapshot.Repository, log logging.Logger) AuthService {
	return &authService{base{store: st, snapshots: snapshots, log: log}}
}

// normalizeEmail lowercases and trims an email. Emails are case-normalized
// keys: "Alex@Test.com" and "alex@test.com" are the same account.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp validates in a fixed order (name, email shape, password length,
// duplicate email), stores the new account with a generated avatar and the
// password digest, and logs the new account in.
func (a *authService) SignUp(ctx context.Context, name, email, password string) (*models.Account, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)

	if name == "" {
		return nil, common.NewValidationError("Please enter your name.")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, common.NewValidationError("Please enter a valid email.")
	}
	if len(password) < MinPasswordLen {
		return nil, common.NewValidationError("Password must be at least 6 characters.")
	}
	if a.store.HasAccount(email) {
		return nil, common.NewValidationError("An account with that email already exists.")
	}

	account := &models.Account{
		Name:           name,
		Email:          email,
		PasswordDigest: hashx.Digest(password),
		Photo:          avatar.Default(name),
		Bio:            "",
		Age:            nil,
	}
	a.store.PutAccount(account)
	a.store.SetSession(email)
	a.persist(ctx)

	a.log.Info(ctx, "account created", "email", email)
	return account, nil
}

// LogIn verifies the credentials and sets the session. The mismatch error is
// deliberately generic so a caller cannot tell which field was wrong.
func (a *authService) LogIn(ctx context.Context, email, password string) (*models.Account, error) {
	email = normalizeEmail(email)

	if email == "" || !strings.Contains(email, "@") {
		return nil, common.NewValidationError("Please enter a valid email.")
	}
	if password == "" {
		return nil, common.NewValidationError("Please enter your password.")
	}

	account, ok := a.store.Account(email)
	if !ok || account.PasswordDigest != hashx.Digest(password) {
		return nil, common.ErrInvalidCredentials
	}

	a.store.SetSession(email)
	a.persist(ctx)

	a.log.Info(ctx, "logged in", "email", email)
	return account, nil
}

// LogOut clears the session.
func (a *authService) LogOut(ctx context.Context) {
	a.store.ClearSession()
	a.persist(ctx)
}

// CurrentUser returns the logged-in account, if any. A session pointing at a
// missing account (inconsistent persisted state) reads as logged out.
func (a *authService) CurrentUser() (*models.Account, bool) {
	email := a.store.Session()
	if email == "" {
		return nil, false
	}
	return a.store.Account(email)
}
