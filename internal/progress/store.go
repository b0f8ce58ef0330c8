// Package progress owns the durable user progress record.
//
// The Store is constructed once and passed to consumers; it serializes all
// mutations through its cached copy so no two read-modify-write cycles see
// stale data within the process. Storage failures degrade to the in-memory
// copy and never surface into session logic.
package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/verte-zerg/typegrow/internal/badges"
	"github.com/verte-zerg/typegrow/internal/content"
	"github.com/verte-zerg/typegrow/internal/gating"
	"github.com/verte-zerg/typegrow/internal/levels"
	"github.com/verte-zerg/typegrow/internal/model"
	"github.com/verte-zerg/typegrow/internal/storage"
)

const dateLayout = "2006-01-02"

// Store loads, mutates, and persists the single user progress record.
type Store struct {
	backend storage.Backend
	cached  *model.UserProgress
	now     func() time.Time
	rnd     *rand.Rand
	logf    func(format string, args ...any)
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source, used by streak tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithRand overrides the randomness source for anonymous id generation.
func WithRand(rnd *rand.Rand) Option {
	return func(s *Store) { s.rnd = rnd }
}

// New constructs a Store over the given backend.
func New(backend storage.Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		now:     time.Now,
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
		logf:    logErrf,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// animals feeds the kid-facing anonymous id scheme.
var animals = []string{
	"Fox", "Owl", "Bear", "Wolf", "Deer", "Hawk", "Lion", "Tiger",
	"Panda", "Eagle", "Koala", "Otter", "Rabbit", "Dolphin", "Falcon",
	"Penguin", "Sparrow", "Turtle", "Beaver", "Badger",
}

func (s *Store) newAnonymousID() string {
	animal := animals[s.rnd.Intn(len(animals))]
	return fmt.Sprintf("%s-%d", animal, 1000+s.rnd.Intn(9000))
}

func (s *Store) defaultRecord() *model.UserProgress {
	return &model.UserProgress{
		CurrentLevel: levels.Min,
		Passages:     map[string]model.PassageProgress{},
		Badges:       []string{},
		Theme:        model.ThemeDark,
		AnonymousID:  s.newAnonymousID(),
	}
}

// backfill fills defaults for fields missing from older records. It reports
// whether anything changed so the caller can persist the migration.
func (s *Store) backfill(rec *model.UserProgress) bool {
	changed := false
	if rec.Passages == nil {
		rec.Passages = map[string]model.PassageProgress{}
		changed = true
	}
	if rec.Badges == nil {
		rec.Badges = []string{}
		changed = true
	}
	if !levels.Valid(rec.CurrentLevel) {
		rec.CurrentLevel = levels.Min
		changed = true
	}
	if rec.AnonymousID == "" {
		rec.AnonymousID = s.newAnonymousID()
		changed = true
	}
	if rec.Theme != model.ThemeDark && rec.Theme != model.ThemeLight {
		rec.Theme = model.ThemeDark
		changed = true
	}
	return changed
}

// Load returns the current record, creating and persisting a default one if
// none exists. A record that cannot be deserialized is replaced by defaults
// rather than surfacing an error.
func (s *Store) Load(ctx context.Context) *model.UserProgress {
	if s.cached != nil {
		return s.cached
	}
	data, err := s.backend.Load(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logf("failed to load progress, starting fresh: %v\n", err)
		}
		s.cached = s.defaultRecord()
		s.persist(ctx)
		return s.cached
	}
	rec := &model.UserProgress{}
	if err := json.Unmarshal(data, rec); err != nil {
		s.logf("failed to decode progress, starting fresh: %v\n", err)
		s.cached = s.defaultRecord()
		s.persist(ctx)
		return s.cached
	}
	migrated := s.backfill(rec)
	s.cached = rec
	if migrated {
		s.persist(ctx)
	}
	return s.cached
}

// Save persists the given record, replacing the cached copy.
func (s *Store) Save(ctx context.Context, rec *model.UserProgress) {
	s.cached = rec
	s.persist(ctx)
}

// persist writes the cached record. Write failures are logged; the cached
// copy stays authoritative for the rest of the process lifetime.
func (s *Store) persist(ctx context.Context) {
	data, err := json.Marshal(s.cached)
	if err != nil {
		s.logf("failed to encode progress: %v\n", err)
		return
	}
	if err := s.backend.Save(ctx, data); err != nil {
		s.logf("failed to save progress: %v\n", err)
	}
}

// CompletePassage records a completed session for a passage, evaluates level
// completion and level-up per the gating rules, and persists. It returns the
// updated record and the badge ids newly awarded by this mutation.
func (s *Store) CompletePassage(ctx context.Context, passageID string, wpm, accuracy int) (*model.UserProgress, []string) {
	rec := s.Load(ctx)

	existing := rec.Passages[passageID]
	rec.Passages[passageID] = model.PassageProgress{
		Completed:    true,
		BestWPM:      maxInt(existing.BestWPM, wpm),
		BestAccuracy: maxInt(existing.BestAccuracy, accuracy),
		Attempts:     existing.Attempts + 1,
		LastAttempt:  s.now(),
	}

	var newBadges []string
	award := func(id string) {
		if appendBadge(rec, id) {
			newBadges = append(newBadges, id)
		}
	}

	if level, ok := content.LevelOf(passageID); ok && level >= levels.Min && level < levels.Max {
		if gating.LevelComplete(rec, level) {
			award(badges.LevelComplete(level))
		}
	}

	if gating.CanUnlockNext(rec) && rec.CurrentLevel < levels.Max {
		rec.CurrentLevel++
		award(badges.LevelUp)
	}

	if gating.Graduated(rec) {
		award(badges.Graduation)
	}

	s.persist(ctx)
	return rec, newBadges
}

// UpdateStreak advances the consecutive-day counter for today's practice.
// Same-day repeats are no-ops; a gap of more than one day resets to 1.
func (s *Store) UpdateStreak(ctx context.Context) *model.UserProgress {
	rec := s.Load(ctx)
	today := s.now().Format(dateLayout)
	last := rec.Streak.LastPracticeDate

	switch {
	case last == "":
		rec.Streak = model.Streak{Current: 1, LastPracticeDate: today}
	case last == today:
		return rec
	default:
		next := 1
		if prev, err := time.Parse(dateLayout, last); err == nil {
			now, _ := time.Parse(dateLayout, today)
			if int(now.Sub(prev).Hours()/24) == 1 {
				next = rec.Streak.Current + 1
			}
		}
		rec.Streak = model.Streak{Current: next, LastPracticeDate: today}
	}
	s.persist(ctx)
	return rec
}

// AwardBadge idempotently grants a badge. The second return reports whether
// the badge is newly awarded.
func (s *Store) AwardBadge(ctx context.Context, badgeID string) (model.Badge, bool) {
	badge, known := badges.Lookup(badgeID)
	if !known {
		return model.Badge{}, false
	}
	rec := s.Load(ctx)
	if !appendBadge(rec, badgeID) {
		return badge, false
	}
	s.persist(ctx)
	return badge, true
}

// SetGrade records the user's school grade.
func (s *Store) SetGrade(ctx context.Context, grade int) *model.UserProgress {
	rec := s.Load(ctx)
	rec.Grade = grade
	s.persist(ctx)
	return rec
}

// SetTheme records the display theme.
func (s *Store) SetTheme(ctx context.Context, theme model.Theme) *model.UserProgress {
	rec := s.Load(ctx)
	rec.Theme = theme
	s.persist(ctx)
	return rec
}

// CompleteTutorial marks the tutorial done and grants the first-steps badge.
// It reports whether the badge is newly awarded.
func (s *Store) CompleteTutorial(ctx context.Context) (*model.UserProgress, bool) {
	rec := s.Load(ctx)
	rec.TutorialComplete = true
	awarded := appendBadge(rec, badges.FirstSteps)
	s.persist(ctx)
	return rec, awarded
}

// AddPracticeMinutes accumulates total practice time.
func (s *Store) AddPracticeMinutes(ctx context.Context, minutes int) *model.UserProgress {
	rec := s.Load(ctx)
	rec.TotalPracticeMinutes += minutes
	s.persist(ctx)
	return rec
}

// Reset clears the stored record. The next Load starts from defaults with a
// fresh anonymous id.
func (s *Store) Reset(ctx context.Context) error {
	s.cached = nil
	return s.backend.Remove(ctx)
}

func appendBadge(rec *model.UserProgress, id string) bool {
	for _, b := range rec.Badges {
		if b == id {
			return false
		}
	}
	rec.Badges = append(rec.Badges, id)
	return true
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
