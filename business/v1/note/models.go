package note

import (
	persistence "github.com/ribgsilva/geonote/persistence/v1/note"
)

// Note is a user-authored text entry, optionally tagged with the geographic
// coordinate of the device at creation time. Id, Date and the coordinate are
// immutable after creation; only Content can change.
type Note struct {
	Id        int64    `json:"id" example:"1"`
	Content   string   `json:"content" example:"my note"`
	Date      int64    `json:"date" example:"1651380543000"`
	Latitude  *float64 `json:"latitude" example:"48.858"`
	Longitude *float64 `json:"longitude" example:"2.294"`
}

// Located tells whether the note carries a coordinate pair
func (n Note) Located() bool {
	return n.Latitude != nil && n.Longitude != nil
}

// Export is the downloadable collection blob. It round-trips through Import.
type Export struct {
	Notes []Note `json:"notes"`
	Id    int64  `json:"id" example:"4"`
}

// Event is a note mutation carried over messaging
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// NewNote is the creation payload for api and messaging clients
type NewNote struct {
	Content   string   `json:"content"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func toRecords(notes []Note) []persistence.Record {
	records := make([]persistence.Record, len(notes))
	for i, n := range notes {
		records[i] = persistence.Record(n)
	}
	return records
}

func fromRecords(records []persistence.Record) []Note {
	notes := make([]Note, len(records))
	for i, r := range records {
		notes[i] = Note(r)
	}
	return notes
}
