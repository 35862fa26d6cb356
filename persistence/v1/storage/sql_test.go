package storage_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/ribgsilva/geonote/persistence/v1/schema"
	"github.com/ribgsilva/geonote/persistence/v1/storage"

	_ "github.com/proullon/ramsql/driver"
)

func TestSQLBackend(t *testing.T) {
	db, err := sql.Open("ramsql", "StorageTest")
	if err != nil {
		t.Fatalf("should open ramsql: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := schema.Create(context.Background(), db); err != nil {
		t.Fatalf("should create the storage table: %v", err)
	}
	defer func() {
		_ = schema.Drop(context.Background(), db)
	}()

	kv := storage.NewSQL(db, 5*time.Second)

	if _, err := kv.Get(context.Background(), "notes"); err != storage.ErrNotFound {
		t.Fatalf("missing key should read as ErrNotFound: %v", err)
	}

	if err := kv.Set(context.Background(), "notes", `[]`); err != nil {
		t.Fatalf("should set a key: %v", err)
	}
	if got, err := kv.Get(context.Background(), "notes"); err != nil || got != `[]` {
		t.Fatalf("should read the value back: %q %v", got, err)
	}

	// full write-through overwrites the previous blob
	if err := kv.Set(context.Background(), "notes", `[{"id":1}]`); err != nil {
		t.Fatalf("should overwrite a key: %v", err)
	}
	if got, err := kv.Get(context.Background(), "notes"); err != nil || got != `[{"id":1}]` {
		t.Fatalf("should read the new value: %q %v", got, err)
	}

	// the two keys are independent
	if err := kv.Set(context.Background(), "id", "7"); err != nil {
		t.Fatalf("should set the counter key: %v", err)
	}
	if got, err := kv.Get(context.Background(), "id"); err != nil || got != "7" {
		t.Fatalf("should read the counter key: %q %v", got, err)
	}
	if got, err := kv.Get(context.Background(), "notes"); err != nil || got != `[{"id":1}]` {
		t.Fatalf("counter writes should not touch notes: %q %v", got, err)
	}
}
