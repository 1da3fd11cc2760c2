package models

// Snapshot is the full serializable state of the system: all accounts, the
// current session and every attendance list. It is written as one unit after
// each mutation and restored once at startup.
//
// Wire format (fixed, unversioned):
//
//	{
//	  "users":     { "<email>": { ...Account... }, ... },
//	  "session":   "<email>" | "",
//	  "attendees": { "<event id>": ["<email>", ...], ... }
//	}
type Snapshot struct {
	Users     map[string]*Account `json:"users"`
	Session   string              `json:"session"`
	Attendees map[string][]string `json:"attendees"`
}

// NewSnapshot returns an empty snapshot with allocated maps.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Users:     make(map[string]*Account),
		Attendees: make(map[string][]string),
	}
}
