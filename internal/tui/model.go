// Package tui provides the Bubble Tea practice interface.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typegrow/internal/badges"
	"github.com/verte-zerg/typegrow/internal/content"
	"github.com/verte-zerg/typegrow/internal/engine"
	"github.com/verte-zerg/typegrow/internal/leaderboard"
	"github.com/verte-zerg/typegrow/internal/levels"
	"github.com/verte-zerg/typegrow/internal/metrics"
	"github.com/verte-zerg/typegrow/internal/model"
	"github.com/verte-zerg/typegrow/internal/notify"
	"github.com/verte-zerg/typegrow/internal/progress"
)

type phase int

const (
	phaseTyping phase = iota
	phaseFinished
	phaseTimeUp
	phaseLevelDone
)

type tickMsg time.Time

// Model implements the Bubble Tea practice UI for one level.
type Model struct {
	store    *progress.Store
	board    leaderboard.Board
	notifier notify.Notifier
	styles   Styles

	level    int
	levelCfg model.LevelConfig
	tutorial bool

	passage model.Passage
	session *engine.Session

	phase     phase
	remaining time.Duration

	lastResult   *model.SessionResult
	earnedBadges []model.Badge
	leveledUpTo  int

	width  int
	height int
}

// NewModel constructs a practice model for the given level. A zero passage id
// starts at the first incomplete passage of the level.
func NewModel(store *progress.Store, board leaderboard.Board, notifier notify.Notifier, level int, passageID string, tutorial bool) (*Model, error) {
	cfg := levels.MustGet(level)
	m := &Model{
		store:     store,
		board:     board,
		notifier:  notifier,
		level:     level,
		levelCfg:  cfg,
		tutorial:  tutorial,
		remaining: time.Duration(cfg.DurationMinutes) * time.Minute,
	}
	rec := store.Load(context.Background())
	m.styles = StylesFor(rec.Theme)

	if tutorial {
		m.passage = content.TutorialPassage
	} else if passageID != "" {
		p, ok := content.ByID(passageID)
		if !ok {
			return nil, fmt.Errorf("unknown passage %q", passageID)
		}
		m.passage = p
		m.level = p.Level
		m.levelCfg = levels.MustGet(p.Level)
	} else {
		p, ok := nextPassage(rec, level)
		if !ok {
			return nil, fmt.Errorf("level %d has no passages left; try another level", level)
		}
		m.passage = p
	}
	m.session = engine.New(m.passage.ID, m.passage.Content)
	return m, nil
}

func nextPassage(rec *model.UserProgress, level int) (model.Passage, bool) {
	completed := map[string]bool{}
	for id, pp := range rec.Passages {
		if pp.Completed {
			completed[id] = true
		}
	}
	if p, ok := content.Next(level, completed); ok {
		return p, true
	}
	// Everything completed: cycle from the start for review.
	all := content.ByLevel(level)
	if len(all) == 0 {
		return model.Passage{}, false
	}
	return all[0], true
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.phase != phaseTyping {
			return m, nil
		}
		m.remaining -= time.Second
		if m.remaining <= 0 {
			m.remaining = 0
			m.session.Freeze()
			m.phase = phaseTimeUp
			return m, nil
		}
		return m, tick()
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.phase != phaseTyping {
		return m.handleMenuKey(msg)
	}

	now := time.Now()
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete:
		m.session.HandleKey(engine.Event{Kind: engine.KindBackspace, Time: now})
	case tea.KeySpace:
		m.feedRune(' ', now)
	case tea.KeyRunes:
		if msg.Alt {
			// Modifier chords never reach the session.
			m.session.HandleKey(engine.Event{Kind: engine.KindOther, Time: now})
			return m, nil
		}
		for _, r := range msg.Runes {
			m.feedRune(r, now)
			if m.phase != phaseTyping {
				break
			}
		}
	default:
		m.session.HandleKey(engine.Event{Kind: engine.KindOther, Time: now})
	}
	return m, nil
}

func (m *Model) feedRune(r rune, now time.Time) {
	result := m.session.HandleKey(engine.Event{Kind: engine.KindRune, Rune: r, Time: now})
	if result != nil {
		m.finishSession(result)
	}
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(msg.String()) {
	case "q", "esc":
		return m, tea.Quit
	case "r":
		m.restart(m.passage)
		return m, tick()
	case "enter", "n":
		if m.phase != phaseFinished || m.tutorial {
			return m, tea.Quit
		}
		rec := m.store.Load(context.Background())
		next, ok := nextPassage(rec, m.level)
		if !ok {
			return m, tea.Quit
		}
		m.restart(next)
		return m, tick()
	default:
		return m, nil
	}
}

func (m *Model) restart(p model.Passage) {
	m.passage = p
	m.session.Reset(p.ID, p.Content)
	m.phase = phaseTyping
	m.remaining = time.Duration(m.levelCfg.DurationMinutes) * time.Minute
	m.lastResult = nil
	m.earnedBadges = nil
	m.leveledUpTo = 0
}

// finishSession runs the completion flow: streak, passage record, badge
// evaluation, leaderboard submit, notifications. Store mutations are
// sequential; only the leaderboard submit is detached.
func (m *Model) finishSession(result *model.SessionResult) {
	m.phase = phaseFinished
	m.lastResult = result
	ctx := context.Background()

	if m.tutorial {
		_, awarded := m.store.CompleteTutorial(ctx)
		if awarded {
			if b, ok := badges.Lookup(badges.FirstSteps); ok {
				m.earnedBadges = append(m.earnedBadges, b)
				m.notifier.BadgeAwarded(b)
			}
		}
		m.notifier.SessionComplete(result)
		return
	}

	prevLevel := m.store.Load(ctx).CurrentLevel
	m.store.UpdateStreak(ctx)
	rec, newIDs := m.store.CompletePassage(ctx, m.passage.ID, result.WPM, result.Accuracy)
	for _, id := range badges.EvaluateSession(result, rec) {
		if _, awarded := m.store.AwardBadge(ctx, id); awarded {
			newIDs = append(newIDs, id)
		}
	}
	m.store.AddPracticeMinutes(ctx, (result.DurationSeconds+59)/60)

	for _, id := range newIDs {
		if b, ok := badges.Lookup(id); ok {
			m.earnedBadges = append(m.earnedBadges, b)
			m.notifier.BadgeAwarded(b)
		}
	}
	if rec.CurrentLevel > prevLevel {
		m.leveledUpTo = rec.CurrentLevel
		m.notifier.LevelUnlocked(rec.CurrentLevel)
	}
	m.notifier.SessionComplete(result)

	if m.board != nil && rec.Grade > 0 {
		go m.submitScore(rec.AnonymousID, rec.Grade, result)
	}
}

func (m *Model) submitScore(anonymousID string, grade int, result *model.SessionResult) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := m.board.SubmitScore(ctx, anonymousID, grade, m.level, result.WPM, result.Accuracy); err != nil {
		logErrf("failed to submit score: %v\n", err)
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.phase == phaseFinished || m.phase == phaseTimeUp {
		return m.viewResult()
	}
	return m.viewTyping()
}

func (m *Model) viewTyping() string {
	styled := buildStyledRunes(m.session, m.styles)
	header := m.renderHeader()
	footer := m.renderFooter()
	if m.width == 0 || m.height == 0 {
		return header + "\n" + renderStyledRunes(styled) + "\n" + footer
	}
	contentWidth := int(float64(m.width) * 0.70)
	if contentWidth < 1 {
		contentWidth = 1
	}
	wrapped := wrapStyledRunes(styled, contentWidth)
	body := lipgloss.NewStyle().Width(contentWidth).Render(wrapped)
	if m.height < 5 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	headerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, header)
	bodyArea := lipgloss.Place(m.width, m.height-2, lipgloss.Center, lipgloss.Center, body)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return headerLine + "\n" + bodyArea + "\n" + footerLine
}

func (m *Model) renderHeader() string {
	title := m.passage.Title
	if m.passage.Author != "" {
		title += " — " + m.passage.Author
	}
	label := fmt.Sprintf("%s · %s", m.levelCfg.Title, title)
	if m.tutorial {
		label = "Tutorial · " + title
	}
	return m.styles.Title.Render(label)
}

// liveStats recomputes display metrics from the running counters. Before any
// input, accuracy reads 100 so the screen does not open with "0%".
func liveStats(snap engine.Snapshot, now time.Time) (wpm, accuracy int) {
	accuracy = 100
	if snap.TotalKeystrokes > 0 {
		accuracy = metrics.Accuracy(snap.CorrectChars(), snap.TotalKeystrokes)
	}
	if !snap.StartTime.IsZero() {
		wpm = metrics.WPM(snap.CorrectChars(), now.Sub(snap.StartTime).Milliseconds())
	}
	return wpm, accuracy
}

func (m *Model) renderFooter() string {
	snap := m.session.Snapshot()
	wpm, accuracy := liveStats(snap, time.Now())
	pct := 0
	if snap.PassageLen > 0 {
		pct = snap.Cursor * 100 / snap.PassageLen
	}
	segments := []string{
		fmt.Sprintf("Progress %d%%", pct),
		fmt.Sprintf("%d WPM", wpm),
		fmt.Sprintf("%d%%", accuracy),
		fmt.Sprintf("Time %s", formatDuration(m.remaining)),
	}
	return m.styles.Footer.Render(strings.Join(segments, "  ·  "))
}

func (m *Model) viewResult() string {
	var b strings.Builder
	if m.phase == phaseTimeUp {
		b.WriteString(m.styles.Title.Render("Time's up!"))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Footer.Render("This attempt was not saved."))
	} else {
		r := m.lastResult
		b.WriteString(m.styles.Title.Render("Passage complete!"))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("%s %d WPM   %s %d%% accuracy   %s %d errors",
			m.styles.Accent.Render("Speed"), r.WPM,
			m.styles.Accent.Render("Accuracy"), r.Accuracy,
			m.styles.Accent.Render("Errors"), r.Errors))
		if m.leveledUpTo > 0 {
			b.WriteString("\n\n")
			b.WriteString(m.styles.Accent.Render(fmt.Sprintf("Level %d unlocked!", m.leveledUpTo)))
		}
		for _, badge := range m.earnedBadges {
			b.WriteString("\n")
			b.WriteString(fmt.Sprintf("%s %s — %s", badge.Icon, badge.Name, badge.Description))
		}
	}
	b.WriteString("\n\n")
	if m.phase == phaseFinished && !m.tutorial {
		b.WriteString(m.styles.Footer.Render("enter next · r retry · q quit"))
	} else {
		b.WriteString(m.styles.Footer.Render("r retry · q quit"))
	}
	card := m.styles.Card.Render(b.String())
	if m.width == 0 || m.height == 0 {
		return card
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
