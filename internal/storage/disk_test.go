package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"docuvault/internal/domain"
)

func TestDiskStoreRoundTrip(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	key, err := store.Save(ctx, strings.NewReader("stored bytes"), "abc123.pdf")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if key != "abc123.pdf" {
		t.Errorf("key = %q, want keyHint back", key)
	}

	ok, err := store.Exists(ctx, key)
	if err != nil || !ok {
		t.Fatalf("exists = %v, %v", ok, err)
	}

	size, err := store.Size(ctx, key)
	if err != nil {
		t.Fatalf("size: %v", err)
	}
	if size != int64(len("stored bytes")) {
		t.Errorf("size = %d, want %d", size, len("stored bytes"))
	}

	rc, err := store.Open(ctx, key)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "stored bytes" {
		t.Errorf("content = %q", data)
	}
}

func TestDiskStoreMissingBlob(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	if _, err := store.Open(ctx, "nope.pdf"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("open missing: err = %v, want not found", err)
	}
	if _, err := store.Size(ctx, "nope.pdf"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("size missing: err = %v, want not found", err)
	}
	ok, err := store.Exists(ctx, "nope.pdf")
	if err != nil || ok {
		t.Errorf("exists missing = %v, %v", ok, err)
	}
}

func TestDiskStoreRejectsBadKeys(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	for _, key := range []string{"", "../escape", "a/b.pdf"} {
		if _, err := store.Save(ctx, strings.NewReader("x"), key); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("key %q: err = %v, want validation failure", key, err)
		}
	}
}

func TestDiskStoreRefusesOverwrite(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	if _, err := store.Save(ctx, strings.NewReader("one"), "dup.txt"); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if _, err := store.Save(ctx, strings.NewReader("two"), "dup.txt"); err == nil {
		t.Error("second save under same key should fail")
	}
}
