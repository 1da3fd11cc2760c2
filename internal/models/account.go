// Package models defines the account, event and snapshot types shared by the
// pubcrawl services and repositories.
package models

// MaxBioLen is the maximum number of runes kept in an account bio. The UI
// enforces the same bound; the core clips rather than rejects.
const MaxBioLen = 80

// Account is a registered user's identity and profile data. The email is the
// unique key and is immutable once the account exists. PasswordDigest holds
// the demo rolling-hash digest (see hashx), never the plain password.
//
// The JSON tags define the persisted wire format and must not change: the
// snapshot has no version field, so a shape change makes old blobs
// unreadable (they get discarded on load).
type Account struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	PasswordDigest string `json:"passwordHash"`
	Photo          string `json:"photo"`
	Bio            string `json:"bio"`
	Age            *int   `json:"age"`
}

// Clone returns a deep copy of the account.
func (a *Account) Clone() *Account {
	if a == nil {
		return nil
	}
	c := *a
	if a.Age != nil {
		age := *a.Age
		c.Age = &age
	}
	return &c
}
