package note

// Storage keys. The full collection is written through on every mutation.
const (
	notesKey = "notes"
	idKey    = "id"
)

// Record is the persisted note layout. Latitude and longitude are null
// together when the note has no location.
type Record struct {
	Id        int64    `json:"id"`
	Content   string   `json:"content"`
	Date      int64    `json:"date"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}
