package note

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ribgsilva/geonote/persistence/v1/storage"
)

// Save writes the whole collection and the id counter through to storage
func Save(ctx context.Context, kv storage.KV, records []Record, nextId int64) error {
	if records == nil {
		records = []Record{}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal notes: %w", err)
	}

	if err := kv.Set(ctx, notesKey, string(data)); err != nil {
		return fmt.Errorf("failed to persist notes: %w", err)
	}
	if err := kv.Set(ctx, idKey, strconv.FormatInt(nextId, 10)); err != nil {
		return fmt.Errorf("failed to persist id counter: %w", err)
	}
	return nil
}
