package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/typegrow/internal/model"
)

var base = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func runeEvent(r rune, at time.Time) Event {
	return Event{Kind: KindRune, Rune: r, Time: at}
}

func typeAll(t *testing.T, s *Session, text string) {
	t.Helper()
	at := base
	for _, r := range text {
		s.HandleKey(runeEvent(r, at))
		at = at.Add(100 * time.Millisecond)
	}
}

func TestCursorInvariant(t *testing.T) {
	s := New("l1-01", "abc")
	events := []Event{
		runeEvent('a', base),
		runeEvent('x', base.Add(time.Second)),
		{Kind: KindBackspace, Time: base.Add(2 * time.Second)},
		{Kind: KindBackspace, Time: base.Add(3 * time.Second)},
		{Kind: KindBackspace, Time: base.Add(4 * time.Second)},
		runeEvent('a', base.Add(5 * time.Second)),
	}
	for i, ev := range events {
		s.HandleKey(ev)
		snap := s.Snapshot()
		if snap.Cursor != len(s.Typed()) {
			t.Fatalf("event %d: cursor %d != typed length %d", i, snap.Cursor, len(s.Typed()))
		}
		for j := snap.Cursor; j < snap.PassageLen; j++ {
			if s.ErrorAt(j) {
				t.Fatalf("event %d: error marked at %d beyond cursor %d", i, j, snap.Cursor)
			}
		}
	}
}

func TestAllCorrectTerminates(t *testing.T) {
	passage := "The cat sat."
	s := New("l1-01", passage)

	var result = s.HandleKey(runeEvent('T', base))
	if result != nil {
		t.Fatalf("unexpected early result")
	}
	at := base.Add(time.Second)
	runes := []rune(passage)
	for i := 1; i < len(runes); i++ {
		result = s.HandleKey(runeEvent(runes[i], at))
		if i < len(runes)-1 && result != nil {
			t.Fatalf("result emitted at index %d before completion", i)
		}
		at = at.Add(time.Second)
	}
	if result == nil {
		t.Fatalf("expected result on final keystroke")
	}
	if result.Errors != 0 {
		t.Fatalf("expected 0 errors, got %d", result.Errors)
	}
	if result.Accuracy != 100 {
		t.Fatalf("expected 100%% accuracy, got %d", result.Accuracy)
	}
	if !s.Snapshot().Done {
		t.Fatalf("session should be terminal")
	}
}

func TestTerminalSessionRejectsEvents(t *testing.T) {
	s := New("l1-01", "ab")
	typeAll(t, s, "ab")
	before := s.Snapshot()
	if res := s.HandleKey(runeEvent('c', base.Add(time.Minute))); res != nil {
		t.Fatalf("terminal session emitted a second result")
	}
	s.HandleKey(Event{Kind: KindBackspace, Time: base.Add(time.Minute)})
	after := s.Snapshot()
	if before != after {
		t.Fatalf("terminal session state changed: %+v -> %+v", before, after)
	}
}

func TestBackspaceRestoresState(t *testing.T) {
	s := New("l1-01", "abcd")
	typeAll(t, s, "ab")

	snapBefore := s.Snapshot()
	typedBefore := string(s.Typed())

	s.HandleKey(runeEvent('c', base.Add(time.Second)))
	s.HandleKey(Event{Kind: KindBackspace, Time: base.Add(2 * time.Second)})

	snapAfter := s.Snapshot()
	if string(s.Typed()) != typedBefore {
		t.Fatalf("typed not restored: %q != %q", s.Typed(), typedBefore)
	}
	if snapAfter.Cursor != snapBefore.Cursor || snapAfter.ErrorCount != snapBefore.ErrorCount {
		t.Fatalf("cursor/errors not restored: %+v vs %+v", snapAfter, snapBefore)
	}
	// totalKeystrokes is never decremented.
	if snapAfter.TotalKeystrokes != snapBefore.TotalKeystrokes+1 {
		t.Fatalf("totalKeystrokes = %d, want %d", snapAfter.TotalKeystrokes, snapBefore.TotalKeystrokes+1)
	}
}

func TestBackspaceClearsError(t *testing.T) {
	s := New("l1-01", "abc")
	s.HandleKey(runeEvent('a', base))
	s.HandleKey(runeEvent('x', base.Add(time.Second)))
	if !s.ErrorAt(1) {
		t.Fatalf("expected error at index 1")
	}
	s.HandleKey(Event{Kind: KindBackspace, Time: base.Add(2 * time.Second)})
	if s.ErrorAt(1) {
		t.Fatalf("error at index 1 should be cleared by backspace")
	}
	s.HandleKey(runeEvent('b', base.Add(3 * time.Second)))
	res := s.HandleKey(runeEvent('c', base.Add(4 * time.Second)))
	if res == nil {
		t.Fatalf("expected terminal result")
	}
	if res.Errors != 0 {
		t.Fatalf("corrected error still counted: %d", res.Errors)
	}
}

func TestFixedErrorNotCounted(t *testing.T) {
	s := New("l1-01", "ab")
	s.HandleKey(runeEvent('x', base))
	s.HandleKey(Event{Kind: KindBackspace, Time: base.Add(time.Second)})
	s.HandleKey(runeEvent('a', base.Add(2 * time.Second)))
	res := s.HandleKey(runeEvent('b', base.Add(3 * time.Second)))
	if res == nil {
		t.Fatalf("expected terminal result")
	}
	if res.Errors != 0 {
		t.Fatalf("fixed error counted: %d", res.Errors)
	}
	// The wrong keystroke still counts toward totalKeystrokes: 2 correct of 3.
	if res.Accuracy != 67 {
		t.Fatalf("accuracy = %d, want 67", res.Accuracy)
	}
}

func TestBackspaceAtStartIsNoOp(t *testing.T) {
	s := New("l1-01", "ab")
	s.HandleKey(Event{Kind: KindBackspace, Time: base})
	snap := s.Snapshot()
	if snap.Cursor != 0 || snap.TotalKeystrokes != 0 {
		t.Fatalf("backspace at start changed state: %+v", snap)
	}
}

func TestOtherKeysIgnored(t *testing.T) {
	s := New("l1-01", "ab")
	s.HandleKey(runeEvent('a', base))
	before := s.Snapshot()
	s.HandleKey(Event{Kind: KindOther, Time: base.Add(time.Second)})
	if s.Snapshot() != before {
		t.Fatalf("other key changed state")
	}
}

func TestErrorRecordedAtPassagePosition(t *testing.T) {
	s := New("l1-01", "abc")
	s.HandleKey(runeEvent('a', base))
	s.HandleKey(runeEvent('z', base.Add(time.Second)))
	if s.ErrorAt(0) || !s.ErrorAt(1) || s.ErrorAt(2) {
		t.Fatalf("error should be recorded at pre-advance index 1")
	}
}

func TestLongPauseDetection(t *testing.T) {
	s := New("l1-01", "abc")
	s.HandleKey(runeEvent('a', base))
	s.HandleKey(runeEvent('b', base.Add(31 * time.Second)))
	res := s.HandleKey(runeEvent('c', base.Add(32 * time.Second)))
	if res == nil {
		t.Fatalf("expected terminal result")
	}
	if !res.HadLongPause {
		t.Fatalf("31s gap should set hadLongPause")
	}

	s2 := New("l1-01", "abc")
	s2.HandleKey(runeEvent('a', base))
	s2.HandleKey(runeEvent('b', base.Add(29 * time.Second)))
	res = s2.HandleKey(runeEvent('c', base.Add(30 * time.Second)))
	if res == nil || res.HadLongPause {
		t.Fatalf("29s gap should not set hadLongPause")
	}
}

func TestPauseBeforeFirstKeystrokeIgnored(t *testing.T) {
	// The gap before the first accepted character never counts.
	s := New("l1-01", "ab")
	s.HandleKey(runeEvent('a', base.Add(5 * time.Minute)))
	res := s.HandleKey(runeEvent('b', base.Add(5*time.Minute + time.Second)))
	if res == nil || res.HadLongPause {
		t.Fatalf("pause before start counted")
	}
}

func TestMaxConsecutiveCorrect(t *testing.T) {
	s := New("l1-01", "abcdef")
	at := base
	for _, r := range "abc" {
		s.HandleKey(runeEvent(r, at))
		at = at.Add(time.Second)
	}
	s.HandleKey(runeEvent('x', at)) // breaks the run at 3
	at = at.Add(time.Second)
	s.HandleKey(runeEvent('e', at))
	at = at.Add(time.Second)
	res := s.HandleKey(runeEvent('f', at))
	if res == nil {
		t.Fatalf("expected terminal result")
	}
	if res.MaxConsecutiveCorrect != 3 {
		t.Fatalf("maxConsecutiveCorrect = %d, want 3", res.MaxConsecutiveCorrect)
	}
}

func TestBackspaceResetsRun(t *testing.T) {
	s := New("l1-01", "abcd")
	s.HandleKey(runeEvent('a', base))
	s.HandleKey(runeEvent('b', base.Add(time.Second)))
	s.HandleKey(Event{Kind: KindBackspace, Time: base.Add(2 * time.Second)})
	s.HandleKey(runeEvent('b', base.Add(3 * time.Second)))
	s.HandleKey(runeEvent('c', base.Add(4 * time.Second)))
	res := s.HandleKey(runeEvent('d', base.Add(5 * time.Second)))
	if res == nil {
		t.Fatalf("expected terminal result")
	}
	// Run restarts after backspace: b, c, d = 3.
	if res.MaxConsecutiveCorrect != 3 {
		t.Fatalf("maxConsecutiveCorrect = %d, want 3", res.MaxConsecutiveCorrect)
	}
}

func TestDurationAndWPM(t *testing.T) {
	// 50 identical characters typed over 60 seconds: 10 WPM.
	s := New("l1-01", strings.Repeat("a", 50))
	var res *model.SessionResult
	for i := 0; i < 50; i++ {
		at := base.Add(time.Duration(i*60000/49) * time.Millisecond)
		res = s.HandleKey(runeEvent('a', at))
	}
	if res == nil {
		t.Fatalf("expected terminal result")
	}
	if res.DurationSeconds != 60 {
		t.Fatalf("duration = %ds, want 60", res.DurationSeconds)
	}
	if res.WPM != 10 {
		t.Fatalf("wpm = %d, want 10", res.WPM)
	}
}

func TestFreezeStopsInput(t *testing.T) {
	s := New("l1-01", "ab")
	s.HandleKey(runeEvent('a', base))
	s.Freeze()
	if s.Active() {
		t.Fatalf("frozen session reported active")
	}
	if res := s.HandleKey(runeEvent('b', base.Add(time.Second))); res != nil {
		t.Fatalf("frozen session produced a result")
	}
	if s.Snapshot().Cursor != 1 {
		t.Fatalf("frozen session accepted input")
	}
}

func TestResetClearsEverything(t *testing.T) {
	s := New("l1-01", "ab")
	typeAll(t, s, "ab")
	s.Reset("l1-02", "xyz")
	snap := s.Snapshot()
	if snap.Cursor != 0 || snap.TotalKeystrokes != 0 || snap.Done || snap.PassageLen != 3 {
		t.Fatalf("reset left stale state: %+v", snap)
	}
	if !s.Active() {
		t.Fatalf("reset session should be active")
	}
}
