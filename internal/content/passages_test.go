package content

import (
	"fmt"
	"testing"

	"github.com/verte-zerg/typegrow/internal/levels"
)

func TestCatalogIDsAreUniqueAndWellFormed(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range All() {
		if seen[p.ID] {
			t.Fatalf("duplicate passage id %q", p.ID)
		}
		seen[p.ID] = true
		if !levels.Valid(p.Level) {
			t.Fatalf("passage %q has invalid level %d", p.ID, p.Level)
		}
		if p.Content == "" || p.Title == "" {
			t.Fatalf("passage %q missing content or title", p.ID)
		}
		want := fmt.Sprintf("l%d-", p.Level)
		if p.ID[:len(want)] != want {
			t.Fatalf("passage %q id does not match level %d naming", p.ID, p.Level)
		}
	}
}

func TestCatalogMatchesLevelTotals(t *testing.T) {
	for level := levels.Min; level <= levels.Max; level++ {
		cfg, _ := levels.Get(level)
		if got := len(ByLevel(level)); got != cfg.TotalPassages {
			t.Fatalf("level %d has %d passages, config says %d", level, got, cfg.TotalPassages)
		}
	}
}

func TestByIDAndLevelOf(t *testing.T) {
	p, ok := ByID("l3-07")
	if !ok || p.Title != "Bed in Summer" {
		t.Fatalf("ByID(l3-07) = %+v, %v", p, ok)
	}
	level, ok := LevelOf("l3-07")
	if !ok || level != 3 {
		t.Fatalf("LevelOf(l3-07) = %d, %v", level, ok)
	}
	if _, ok := ByID("l9-99"); ok {
		t.Fatalf("unknown id should not resolve")
	}
}

func TestNextSkipsCompleted(t *testing.T) {
	first := ByLevel(1)[0]
	next, ok := Next(1, map[string]bool{first.ID: true})
	if !ok {
		t.Fatalf("expected a next passage")
	}
	if next.ID == first.ID {
		t.Fatalf("Next returned a completed passage")
	}
	done := map[string]bool{}
	for _, p := range ByLevel(1) {
		done[p.ID] = true
	}
	if _, ok := Next(1, done); ok {
		t.Fatalf("Next should report no passage when level is done")
	}
}
