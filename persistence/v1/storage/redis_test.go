package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/geonote/persistence/v1/storage"
)

func TestRedisBackend(t *testing.T) {
	s := miniredis.RunT(t)

	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer func() {
		_ = rdb.Close()
	}()

	kv := storage.NewRedis(rdb, 10*time.Second)

	if _, err := kv.Get(context.Background(), "notes"); err != storage.ErrNotFound {
		t.Fatalf("missing key should read as ErrNotFound: %v", err)
	}

	if err := kv.Set(context.Background(), "notes", `[]`); err != nil {
		t.Fatalf("should set a key: %v", err)
	}
	if got, err := kv.Get(context.Background(), "notes"); err != nil || got != `[]` {
		t.Fatalf("should read the value back: %q %v", got, err)
	}

	// note blobs are durable, not cached
	if s.TTL("notes") != 0 {
		t.Fatalf("note blobs should never expire: %v", s.TTL("notes"))
	}

	if err := kv.Set(context.Background(), "notes", `[{"id":1}]`); err != nil {
		t.Fatalf("should overwrite a key: %v", err)
	}
	if got, err := kv.Get(context.Background(), "notes"); err != nil || got != `[{"id":1}]` {
		t.Fatalf("should read the new value: %q %v", got, err)
	}
}
