package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/typegrow/internal/engine"
	"github.com/verte-zerg/typegrow/internal/model"
)

func plainStyles() Styles {
	return Styles{}
}

func typeRunes(t *testing.T, s *engine.Session, text string) {
	t.Helper()
	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	for _, r := range text {
		s.HandleKey(engine.Event{Kind: engine.KindRune, Rune: r, Time: at})
		at = at.Add(100 * time.Millisecond)
	}
}

func TestBuildStyledRunesLength(t *testing.T) {
	s := engine.New("p", "cat sat")
	typeRunes(t, s, "ca")
	out := buildStyledRunes(s, plainStyles())
	if len(out) != len("cat sat") {
		t.Fatalf("expected %d styled runes, got %d", len("cat sat"), len(out))
	}
}

func TestBuildStyledRunesWrongSpaceShowsDot(t *testing.T) {
	s := engine.New("p", "a b")
	typeRunes(t, s, "ax")
	out := buildStyledRunes(s, plainStyles())
	if !strings.Contains(out[1].s, "•") {
		t.Fatalf("expected wrong space to render as dot, got %q", out[1].s)
	}
}

func TestBuildStyledRunesKeepsTargetOnWrongLetter(t *testing.T) {
	s := engine.New("p", "abc")
	typeRunes(t, s, "ax")
	out := buildStyledRunes(s, plainStyles())
	if !strings.Contains(out[1].s, "b") {
		t.Fatalf("expected target rune to stay visible, got %q", out[1].s)
	}
}

func TestBuildStyledRunesCorrectedError(t *testing.T) {
	s := engine.New("p", "ab")
	typeRunes(t, s, "ax")
	s.HandleKey(engine.Event{Kind: engine.KindBackspace, Time: time.Now()})
	typeRunes(t, s, "b")
	if s.ErrorAt(1) {
		t.Fatalf("expected corrected position to be clean")
	}
}

func TestFindWords(t *testing.T) {
	words := findWords([]rune("the cat sat"))
	if len(words) != 3 {
		t.Fatalf("expected 3 words, got %d", len(words))
	}
	if words[0].start != 0 || words[0].end != 3 {
		t.Fatalf("unexpected first word range: %+v", words[0])
	}
	if words[2].start != 8 || words[2].end != 11 {
		t.Fatalf("unexpected last word range: %+v", words[2])
	}
}

func TestWordForCursor(t *testing.T) {
	words := findWords([]rune("the cat"))
	w := wordForCursor(words, 5)
	if w == nil || w.start != 4 {
		t.Fatalf("expected cursor inside second word, got %+v", w)
	}
	if wordForCursor(words, -1) != nil {
		t.Fatalf("expected nil for finished passage")
	}
}

func TestWrapStyledRunesBreaksAtSpaces(t *testing.T) {
	s := engine.New("p", "one two three")
	typeRunes(t, s, "one two three")
	out := buildStyledRunes(s, plainStyles())
	wrapped := wrapStyledRunes(out, 8)
	lines := strings.Split(wrapped, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), wrapped)
	}
	if lines[0] != "one two" {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	if lines[1] != "three" {
		t.Fatalf("unexpected second line %q", lines[1])
	}
}

func TestWrapStyledRunesLongWord(t *testing.T) {
	s := engine.New("p", "abcdefghij")
	typeRunes(t, s, "abcdefghij")
	out := buildStyledRunes(s, plainStyles())
	wrapped := wrapStyledRunes(out, 4)
	lines := strings.Split(wrapped, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected hard break into 3 lines, got %d: %q", len(lines), wrapped)
	}
}

func TestLiveStatsBeforeFirstKey(t *testing.T) {
	s := engine.New("p", "abc")
	wpm, accuracy := liveStats(s.Snapshot(), time.Now())
	if accuracy != 100 {
		t.Fatalf("expected 100%% accuracy before typing, got %d", accuracy)
	}
	if wpm != 0 {
		t.Fatalf("expected 0 wpm before typing, got %d", wpm)
	}
}

func TestLiveStatsMidSession(t *testing.T) {
	s := engine.New("p", strings.Repeat("a", 60))
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		s.HandleKey(engine.Event{Kind: engine.KindRune, Rune: 'a', Time: base.Add(time.Duration(i) * time.Second)})
	}
	// 25 correct chars over 30 seconds reads as 10 WPM.
	wpm, accuracy := liveStats(s.Snapshot(), base.Add(30*time.Second))
	if wpm != 10 {
		t.Fatalf("expected 10 wpm, got %d", wpm)
	}
	if accuracy != 100 {
		t.Fatalf("expected 100%% accuracy, got %d", accuracy)
	}
}

func TestStylesForTheme(t *testing.T) {
	dark := StylesFor(model.ThemeDark)
	light := StylesFor(model.ThemeLight)
	if dark.Correct.GetForeground() == light.Correct.GetForeground() {
		t.Fatalf("expected themes to differ")
	}
}
