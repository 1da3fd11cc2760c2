// Package catalog supplies the read-only event catalog: event metadata and
// the ordered list of stops for each event. The attendance ledger only uses
// event ids; the full stop list feeds the route builder and whatever external
// map widget renders it.
//
// A built-in demo catalog is embedded; an external JSON file can replace it
// via configuration.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
)

//go:embed events.json
var embeddedEvents []byte

// Stop is one pub on an event's route.
type Stop struct {
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	Time        string  `json:"time"`
}

// Event is an external reference entity. Only ID is used as a key elsewhere;
// everything else is display metadata.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Stops       []Stop `json:"stops"`
}

// Catalog is an immutable, ordered collection of events.
type Catalog struct {
	events []Event
	index  map[string]int
}

// Load reads the catalog from the JSON file at path, or the embedded demo
// catalog when path is empty. Events without an id are assigned a generated
// one; duplicate ids are an error.
func Load(path string) (*Catalog, error) {
	data := embeddedEvents
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
	}
	return parse(data)
}

func parse(data []byte) (*Catalog, error) {
	var events []Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	c := &Catalog{events: events, index: make(map[string]int, len(events))}
	for i := range c.events {
		if c.events[i].ID == "" {
			c.events[i].ID = uuid.NewString()
		}
		id := c.events[i].ID
		if _, dup := c.index[id]; dup {
			return nil, fmt.Errorf("duplicate event id %q", id)
		}
		c.index[id] = i
	}
	return c, nil
}

// Events returns all events in catalog order.
func (c *Catalog) Events() []Event {
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

// Get returns the event with the given id.
func (c *Catalog) Get(id string) (Event, bool) {
	i, ok := c.index[id]
	if !ok {
		return Event{}, false
	}
	return c.events[i], true
}
