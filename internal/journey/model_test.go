package journey

import (
	"strings"
	"testing"

	"github.com/verte-zerg/typegrow/internal/badges"
	"github.com/verte-zerg/typegrow/internal/gating"
	"github.com/verte-zerg/typegrow/internal/levels"
	"github.com/verte-zerg/typegrow/internal/model"
)

func freshRecord() *model.UserProgress {
	return &model.UserProgress{
		CurrentLevel: levels.Min,
		Passages:     map[string]model.PassageProgress{},
		Badges:       []string{},
		AnonymousID:  "Fox-1234",
		Theme:        model.ThemeDark,
	}
}

func TestLevelRowsFreshRecord(t *testing.T) {
	rows := levelRows(freshRecord())
	if len(rows) != levels.Max {
		t.Fatalf("expected %d rows, got %d", levels.Max, len(rows))
	}
	if rows[0].Status != gating.Unlocked {
		t.Fatalf("expected level 1 unlocked, got %v", rows[0].Status)
	}
	for _, r := range rows[1:] {
		if r.Status != gating.Locked {
			t.Fatalf("expected level %d locked, got %v", r.Level, r.Status)
		}
	}
	if rows[0].Stats.Total != levels.MustGet(1).TotalPassages {
		t.Fatalf("unexpected total for level 1: %d", rows[0].Stats.Total)
	}
}

func TestSummaryLine(t *testing.T) {
	rec := freshRecord()
	rec.Streak.Current = 3
	rec.TotalPracticeMinutes = 42
	line := summaryLine(rec)
	for _, want := range []string{"Fox-1234", "level 1", "streak 3", "42 min"} {
		if !strings.Contains(line, want) {
			t.Fatalf("summary %q missing %q", line, want)
		}
	}
	if strings.Contains(line, "grade") {
		t.Fatalf("grade should be hidden until chosen: %q", line)
	}
	rec.Grade = 4
	if !strings.Contains(summaryLine(rec), "grade 4") {
		t.Fatalf("expected grade in summary")
	}
}

func TestLevelCompletion(t *testing.T) {
	rec := freshRecord()
	if got := levelCompletion(rec); got != 0 {
		t.Fatalf("expected 0 completion, got %f", got)
	}
	for i := 0; i < 4; i++ {
		rec.Passages[contentID(i)] = model.PassageProgress{Completed: true, BestWPM: 10, BestAccuracy: 90}
	}
	if got := levelCompletion(rec); got != 0.5 {
		t.Fatalf("expected half completion, got %f", got)
	}
}

func contentID(i int) string {
	return []string{"l1-01", "l1-02", "l1-03", "l1-04"}[i]
}

func TestRenderBadgesMarksEarned(t *testing.T) {
	rec := freshRecord()
	rec.Badges = []string{badges.FirstSteps}
	out := renderBadges(rec)
	if !strings.Contains(out, "earned") {
		t.Fatalf("expected earned marker in %q", out)
	}
	if !strings.Contains(out, "1 of") {
		t.Fatalf("expected earned count in %q", out)
	}
}
