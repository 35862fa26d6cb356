package note

import (
	"context"
	"encoding/json"
	"fmt"
)

// Import parses an exported blob and replaces the whole store with it.
// The blob must carry a notes array and a numeric id; anything else is
// ErrInvalidImport and the store keeps its current state.
func (s *Store) Import(ctx context.Context, data []byte) error {
	var blob struct {
		Notes []Note `json:"notes"`
		Id    *int64 `json:"id"`
	}
	if err := json.Unmarshal(data, &blob); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidImport, err)
	}
	if blob.Notes == nil {
		return fmt.Errorf("%w: notes must be an array", ErrInvalidImport)
	}
	if blob.Id == nil {
		return fmt.Errorf("%w: id must be a number", ErrInvalidImport)
	}

	return s.ReplaceAll(ctx, blob.Notes, *blob.Id)
}
