// Package location wraps the host location agent, which knows how to ask the
// device for its current geographic position.
package location

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Failure reasons reported by the host location capability.
const (
	ReasonPermissionDenied    = "permission-denied"
	ReasonPositionUnavailable = "position-unavailable"
	ReasonTimeout             = "timeout"
	ReasonCapabilityAbsent    = "capability-absent"
)

// ErrUnavailable matches any location failure, whatever the reason.
var ErrUnavailable = errors.New("location unavailable")

// UnavailableError carries the reason a position could not be obtained.
// Callers must treat it as recoverable and proceed without a coordinate.
type UnavailableError struct {
	Reason string
	Err    error
}

func (e *UnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("location unavailable (%s): %s", e.Reason, e.Err)
	}
	return fmt.Sprintf("location unavailable (%s)", e.Reason)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

func (e *UnavailableError) Is(target error) bool { return target == ErrUnavailable }

// Coordinate is a (latitude, longitude) pair
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Provider obtains the device's current position
type Provider interface {
	CurrentCoordinate(ctx context.Context) (Coordinate, error)
}

// Agent queries a host location-agent http endpoint. High accuracy is always
// requested, cached positions are refused, and no client timeout is imposed:
// the call waits for the host to decide.
type Agent struct {
	URL    string
	Client *http.Client
}

// NewAgent builds an Agent for the given endpoint url
func NewAgent(url string) *Agent {
	return &Agent{
		URL:    url,
		Client: &http.Client{},
	}
}

func (a *Agent) CurrentCoordinate(ctx context.Context) (Coordinate, error) {
	if a.URL == "" {
		return Coordinate{}, &UnavailableError{Reason: ReasonCapabilityAbsent}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.URL+"?accuracy=high&maximumAge=0", nil)
	if err != nil {
		return Coordinate{}, &UnavailableError{Reason: ReasonCapabilityAbsent, Err: err}
	}
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := a.Client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return Coordinate{}, &UnavailableError{Reason: ReasonTimeout, Err: err}
		}
		return Coordinate{}, &UnavailableError{Reason: ReasonCapabilityAbsent, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return Coordinate{}, &UnavailableError{Reason: ReasonPermissionDenied}
	case resp.StatusCode != http.StatusOK:
		return Coordinate{}, &UnavailableError{Reason: ReasonPositionUnavailable}
	}

	var body struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Coordinate{}, &UnavailableError{Reason: ReasonPositionUnavailable, Err: err}
	}
	if body.Latitude == nil || body.Longitude == nil {
		return Coordinate{}, &UnavailableError{Reason: ReasonPositionUnavailable}
	}

	return Coordinate{Latitude: *body.Latitude, Longitude: *body.Longitude}, nil
}
