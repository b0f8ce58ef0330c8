package journey

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/typegrow/internal/model"
)

func TestRenderPlainFreshRecord(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderPlain(&buf, freshRecord(), 80); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Fox-1234", "Level 1", "Level 5", "locked", "unlocked", "Badges (0/"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderPlainTruncatesToWidth(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderPlain(&buf, freshRecord(), 20); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		if len([]rune(line)) > 20 {
			t.Fatalf("line exceeds width: %q", line)
		}
	}
}

func TestRenderLeaderboard(t *testing.T) {
	res := &model.LeaderboardResult{
		Entries: []model.LeaderboardEntry{
			{Rank: 1, AnonymousID: "Owl-2000", BestWPM: 30, BestAccuracy: 97},
			{Rank: 2, AnonymousID: "Fox-1234", BestWPM: 25, BestAccuracy: 95, IsCurrentUser: true},
		},
		UserRank:     2,
		TotalEntries: 2,
	}
	var buf bytes.Buffer
	if err := RenderLeaderboard(&buf, res, 3, 2, 80); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "grade 3, level 2") {
		t.Fatalf("missing header: %s", out)
	}
	if !strings.Contains(out, ">   2. Fox-1234") {
		t.Fatalf("missing current-user marker: %s", out)
	}
}

func TestRenderLeaderboardOffBoardUser(t *testing.T) {
	res := &model.LeaderboardResult{
		Entries: []model.LeaderboardEntry{
			{Rank: 1, AnonymousID: "Owl-2000", BestWPM: 30, BestAccuracy: 97},
		},
		UserRank:     25,
		UserEntry:    &model.LeaderboardEntry{Rank: 25, AnonymousID: "Fox-1234", BestWPM: 5, BestAccuracy: 80},
		TotalEntries: 25,
	}
	var buf bytes.Buffer
	if err := RenderLeaderboard(&buf, res, 3, 2, 80); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "...") || !strings.Contains(out, "Fox-1234") {
		t.Fatalf("expected trailing user row: %s", out)
	}
}

func TestRenderLeaderboardEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderLeaderboard(&buf, &model.LeaderboardResult{}, 1, 1, 80); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No scores yet") {
		t.Fatalf("expected empty-board message: %s", buf.String())
	}
}
