package note

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/ribgsilva/geonote/persistence/v1/storage"
)

// ErrCorrupt reports that persisted state exists but cannot be parsed
var ErrCorrupt = errors.New("corrupt persisted state")

// Load reads the persisted collection. Keys that were never written read as
// an empty collection and counter 0.
func Load(ctx context.Context, kv storage.KV) ([]Record, int64, error) {
	records := []Record{}

	blob, err := kv.Get(ctx, notesKey)
	switch {
	case err == storage.ErrNotFound:
	case err != nil:
		return nil, 0, fmt.Errorf("failed to read notes: %w", err)
	default:
		if err := json.Unmarshal([]byte(blob), &records); err != nil {
			return nil, 0, fmt.Errorf("%w: notes: %s", ErrCorrupt, err)
		}
	}

	var nextId int64
	raw, err := kv.Get(ctx, idKey)
	switch {
	case err == storage.ErrNotFound:
	case err != nil:
		return nil, 0, fmt.Errorf("failed to read id counter: %w", err)
	default:
		nextId, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: id counter: %s", ErrCorrupt, err)
		}
	}

	return records, nextId, nil
}
