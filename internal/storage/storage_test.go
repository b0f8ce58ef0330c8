package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func backends(t *testing.T) map[string]Backend {
	t.Helper()
	dir := t.TempDir()
	sqlite, err := OpenSQLite(filepath.Join(dir, "data", "typegrow.db"))
	if err != nil {
		t.Fatalf("failed to open sqlite backend: %v", err)
	}
	t.Cleanup(func() {
		if cerr := sqlite.Close(); cerr != nil {
			t.Errorf("failed to close sqlite backend: %v", cerr)
		}
	})
	return map[string]Backend{
		"file":   NewFile(filepath.Join(dir, "data", "progress.json")),
		"sqlite": sqlite,
	}
}

func TestBackendRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := b.Load(ctx); !errors.Is(err, ErrNotFound) {
				t.Fatalf("empty slot should report ErrNotFound, got %v", err)
			}
			blob := []byte(`{"currentLevel":2}`)
			if err := b.Save(ctx, blob); err != nil {
				t.Fatalf("save failed: %v", err)
			}
			got, err := b.Load(ctx)
			if err != nil {
				t.Fatalf("load failed: %v", err)
			}
			if string(got) != string(blob) {
				t.Fatalf("round trip mismatch: %q != %q", got, blob)
			}
		})
	}
}

func TestBackendOverwrite(t *testing.T) {
	ctx := context.Background()
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := b.Save(ctx, []byte(`one`)); err != nil {
				t.Fatalf("save failed: %v", err)
			}
			if err := b.Save(ctx, []byte(`two`)); err != nil {
				t.Fatalf("second save failed: %v", err)
			}
			got, err := b.Load(ctx)
			if err != nil {
				t.Fatalf("load failed: %v", err)
			}
			if string(got) != "two" {
				t.Fatalf("expected latest blob, got %q", got)
			}
		})
	}
}

func TestBackendRemove(t *testing.T) {
	ctx := context.Background()
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := b.Remove(ctx); err != nil {
				t.Fatalf("removing empty slot should not fail: %v", err)
			}
			if err := b.Save(ctx, []byte(`data`)); err != nil {
				t.Fatalf("save failed: %v", err)
			}
			if err := b.Remove(ctx); err != nil {
				t.Fatalf("remove failed: %v", err)
			}
			if _, err := b.Load(ctx); !errors.Is(err, ErrNotFound) {
				t.Fatalf("removed slot should report ErrNotFound, got %v", err)
			}
		})
	}
}
