// Package cli implements the interactive pubcrawl client: a small REPL for
// signing up, logging in, browsing events, joining them, inspecting
// attendees and routes, and editing the profile.
//
// All state lives in the process, seeded with demo data and overlaid with
// the last saved snapshot; every mutation is written through to the snapshot
// repository.
package cli
