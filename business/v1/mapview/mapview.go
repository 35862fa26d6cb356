// Package mapview prepares what the map widget needs: a center to start
// from and one marker descriptor per located note.
package mapview

import (
	"context"
	"sync"

	"github.com/ribgsilva/geonote/business/v1/note"
	"github.com/ribgsilva/geonote/platform/location"
)

// DefaultZoom is the zoom level handed to the widget with the initial center
const DefaultZoom = 13

const previewLength = 20

// Marker describes one located note to the map widget. Its popup shows the
// preview; activating the popup label selects the note in the list.
type Marker struct {
	Id        int64   `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Preview   string  `json:"preview"`
}

// Center is the widget's starting viewpoint
type Center struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Zoom      int     `json:"zoom"`
}

// Markers builds descriptors for every note that carries a coordinate.
// Unlocated notes stay in the list but never reach the map.
func Markers(notes []note.Note) []Marker {
	markers := make([]Marker, 0, len(notes))
	for _, n := range notes {
		if !n.Located() {
			continue
		}
		markers = append(markers, Marker{
			Id:        n.Id,
			Latitude:  *n.Latitude,
			Longitude: *n.Longitude,
			Preview:   Preview(n.Content),
		})
	}
	return markers
}

// Preview truncates content to its first 20 characters, with an ellipsis
// when something was cut
func Preview(content string) string {
	runes := []rune(content)
	if len(runes) <= previewLength {
		return content
	}
	return string(runes[:previewLength]) + "..."
}

// View tracks the map center. The first acquisition failure is the caller's
// to surface: without a starting point there is no map. Recenter failures
// are swallowed and the view simply stays put.
type View struct {
	mu        sync.Mutex
	locations location.Provider
	center    *location.Coordinate
}

func NewView(locations location.Provider) *View {
	return &View{locations: locations}
}

// Center returns the acquired center, querying the device on first use
func (v *View) Center(ctx context.Context) (Center, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.center == nil {
		c, err := v.locations.CurrentCoordinate(ctx)
		if err != nil {
			return Center{}, err
		}
		v.center = &c
	}
	return Center{Latitude: v.center.Latitude, Longitude: v.center.Longitude, Zoom: DefaultZoom}, nil
}

// Recenter re-queries the device. On failure the previous center stands;
// the second return tells whether any center is known at all.
func (v *View) Recenter(ctx context.Context) (Center, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if c, err := v.locations.CurrentCoordinate(ctx); err == nil {
		v.center = &c
	}
	if v.center == nil {
		return Center{}, false
	}
	return Center{Latitude: v.center.Latitude, Longitude: v.center.Longitude, Zoom: DefaultZoom}, true
}
