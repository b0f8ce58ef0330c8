// Package engine turns a stream of key events into a scored typing session.
package engine

import (
	"math"
	"time"

	"github.com/verte-zerg/typegrow/internal/metrics"
	"github.com/verte-zerg/typegrow/internal/model"
)

// LongPauseThreshold is the gap between accepted events that marks a session
// as paused.
const LongPauseThreshold = 30 * time.Second

// KeyKind classifies an incoming key event.
type KeyKind int

// Key kinds. KindOther covers modifier chords, Tab, Escape and any other
// non-printable key; the engine ignores those without touching state.
const (
	KindRune KeyKind = iota
	KindBackspace
	KindOther
)

// Event is one key event with its timestamp. Timestamps come from the
// caller so transitions stay deterministic.
type Event struct {
	Kind KeyKind
	Rune rune
	Time time.Time
}

// Snapshot is a read-only view of an in-progress session for live display.
type Snapshot struct {
	Cursor          int
	PassageLen      int
	ErrorCount      int
	TotalKeystrokes int
	StartTime       time.Time
	Done            bool
}

// CorrectChars returns the number of currently-correct typed characters.
func (s Snapshot) CorrectChars() int {
	return s.Cursor - s.ErrorCount
}

// Session owns the ephemeral state of one passage attempt.
type Session struct {
	passageID string
	passage   []rune
	typed     []rune
	errorPos  map[int]struct{}

	startTime time.Time
	endTime   time.Time
	lastEvent time.Time

	totalKeystrokes       int
	consecutiveCorrect    int
	maxConsecutiveCorrect int
	hadLongPause          bool

	done   bool
	frozen bool
}

// New creates a session for the given passage.
func New(passageID, passage string) *Session {
	s := &Session{}
	s.Reset(passageID, passage)
	return s
}

// Reset reinitializes the session for a new passage or a retry.
func (s *Session) Reset(passageID, passage string) {
	*s = Session{
		passageID: passageID,
		passage:   []rune(passage),
		errorPos:  map[int]struct{}{},
	}
}

// Freeze stops the session from accepting further key events without
// producing a result. Used when the caller deactivates the session
// (time up, navigation away).
func (s *Session) Freeze() {
	s.frozen = true
}

// Active reports whether the session still accepts key events.
func (s *Session) Active() bool {
	return !s.done && !s.frozen
}

// HandleKey applies one key event. It returns a non-nil result exactly once,
// on the event that completes the passage. Events after completion or freeze
// are ignored.
func (s *Session) HandleKey(ev Event) *model.SessionResult {
	if s.done || s.frozen {
		return nil
	}
	switch ev.Kind {
	case KindBackspace:
		s.handleBackspace()
		return nil
	case KindRune:
		return s.handleRune(ev)
	default:
		return nil
	}
}

func (s *Session) handleBackspace() {
	if len(s.typed) == 0 {
		return
	}
	s.typed = s.typed[:len(s.typed)-1]
	delete(s.errorPos, len(s.typed))
	s.consecutiveCorrect = 0
}

func (s *Session) handleRune(ev Event) *model.SessionResult {
	if s.startTime.IsZero() {
		s.startTime = ev.Time
	} else if ev.Time.Sub(s.lastEvent) > LongPauseThreshold {
		s.hadLongPause = true
	}
	s.lastEvent = ev.Time

	pos := len(s.typed)
	expected := s.passage[pos]
	s.typed = append(s.typed, ev.Rune)
	s.totalKeystrokes++

	if ev.Rune == expected {
		s.consecutiveCorrect++
		if s.consecutiveCorrect > s.maxConsecutiveCorrect {
			s.maxConsecutiveCorrect = s.consecutiveCorrect
		}
	} else {
		s.errorPos[pos] = struct{}{}
		s.consecutiveCorrect = 0
	}

	if len(s.typed) == len(s.passage) {
		s.done = true
		s.endTime = ev.Time
		return s.result()
	}
	return nil
}

func (s *Session) result() *model.SessionResult {
	durationMs := s.endTime.Sub(s.startTime).Milliseconds()
	correctChars := len(s.passage) - len(s.errorPos)
	return &model.SessionResult{
		PassageID:             s.passageID,
		WPM:                   metrics.WPM(correctChars, durationMs),
		Accuracy:              metrics.Accuracy(correctChars, s.totalKeystrokes),
		DurationSeconds:       int(math.Round(float64(durationMs) / 1000)),
		Errors:                len(s.errorPos),
		MaxConsecutiveCorrect: s.maxConsecutiveCorrect,
		HadLongPause:          s.hadLongPause,
		CompletedAt:           s.endTime,
	}
}

// Snapshot returns the current progress view.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Cursor:          len(s.typed),
		PassageLen:      len(s.passage),
		ErrorCount:      len(s.errorPos),
		TotalKeystrokes: s.totalKeystrokes,
		StartTime:       s.startTime,
		Done:            s.done,
	}
}

// Passage returns the target runes.
func (s *Session) Passage() []rune {
	return s.passage
}

// Typed returns the runes entered so far, reflecting backspaces.
func (s *Session) Typed() []rune {
	return s.typed
}

// ErrorAt reports whether the passage index is currently marked incorrect.
func (s *Session) ErrorAt(i int) bool {
	_, ok := s.errorPos[i]
	return ok
}
