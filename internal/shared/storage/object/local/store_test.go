package local

import (
	"context"
	"io"
	"strings"
	"testing"
)

func TestSaveAndOpenRoundTrip(t *testing.T) {
	store := New(t.TempDir())

	key, size, err := store.Save(context.Background(), "paper.txt", strings.NewReader("hello world"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if size != int64(len("hello world")) {
		t.Fatalf("unexpected size: %d", size)
	}
	if !strings.HasSuffix(key, "_paper.txt") {
		t.Fatalf("unexpected storage key: %q", key)
	}

	rc, err := store.Open(context.Background(), key)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(data) != "hello world" {
		t.Fatalf("unexpected content: %q", data)
	}
}

func TestSaveSameNameNeverCollides(t *testing.T) {
	store := New(t.TempDir())

	key1, _, err := store.Save(context.Background(), "paper.txt", strings.NewReader("one"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	key2, _, err := store.Save(context.Background(), "paper.txt", strings.NewReader("two"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if key1 == key2 {
		t.Fatalf("expected distinct keys, got %q twice", key1)
	}
}

func TestSaveRejectsTraversalName(t *testing.T) {
	store := New(t.TempDir())
	if _, _, err := store.Save(context.Background(), "../evil.txt", strings.NewReader("x")); err == nil {
		t.Fatal("expected an error for traversal file name")
	}
}

func TestOpenRejectsTraversalKey(t *testing.T) {
	store := New(t.TempDir())
	if _, err := store.Open(context.Background(), "../outside"); err == nil {
		t.Fatal("expected an error for traversal storage key")
	}
}
