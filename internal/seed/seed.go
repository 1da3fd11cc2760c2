// Package seed populates a fresh store with the demo accounts and attendance
// lists, so the app is not empty on first run. Seeding happens before the
// snapshot restore; restored state overlays the seeds.
package seed

import (
	"github.com/dmitrijs2005/pubcrawl/internal/models"
	"github.com/dmitrijs2005/pubcrawl/internal/store"
)

func intPtr(n int) *int { return &n }

// demoAccounts mirror the original demo data. Their digest is the literal
// string "demo", which no password hashes to, so they cannot be logged into.
var demoAccounts = []*models.Account{
	{
		Name:           "Sarah",
		Email:          "sarah@demo.com",
		PasswordDigest: "demo",
		Photo:          "https://i.pravatar.cc/100?img=1",
		Bio:            "First pub crawl — excited 🍻",
		Age:            intPtr(28),
	},
	{
		Name:           "Mike",
		Email:          "mike@demo.com",
		PasswordDigest: "demo",
		Photo:          "https://i.pravatar.cc/100?img=2",
		Bio:            "Craft beer fan and pub quiz legend.",
		Age:            intPtr(31),
	},
	{
		Name:           "Laura",
		Email:          "laura@demo.com",
		PasswordDigest: "demo",
		Photo:          "https://i.pravatar.cc/100?img=3",
		Bio:            "Just here for a good night out",
		Age:            intPtr(26),
	},
}

var demoAttendance = map[string][]string{
	"downtown-crawl": {"sarah@demo.com", "mike@demo.com", "laura@demo.com"},
	"brewery-tour":   {"sarah@demo.com", "mike@demo.com"},
}

// Apply writes the demo accounts and attendance into the store.
func Apply(st *store.Store) {
	for _, a := range demoAccounts {
		st.PutAccount(a)
	}
	for _, eventID := range []string{"downtown-crawl", "brewery-tour"} {
		for _, email := range demoAttendance[eventID] {
			st.AppendAttendee(eventID, email)
		}
	}
}
