// Package journey provides the Bubble Tea progress overview interface.
package journey

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typegrow/internal/badges"
	"github.com/verte-zerg/typegrow/internal/gating"
	"github.com/verte-zerg/typegrow/internal/levels"
	"github.com/verte-zerg/typegrow/internal/model"
)

// RecordSource supplies the progress record to render. The progress store
// satisfies it.
type RecordSource interface {
	Load(ctx context.Context) *model.UserProgress
}

const (
	tabLevels = iota
	tabBadges
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	earnedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	lockedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Model implements the Bubble Tea journey UI.
type Model struct {
	store RecordSource

	tabs       []string
	activeTab  int
	levelTable table.Model
	badgeView  viewport.Model
	levelBar   progress.Model

	width  int
	height int
}

// NewModel constructs a journey model over the current progress record.
func NewModel(store RecordSource) *Model {
	m := &Model{
		store: store,
		tabs:  []string{"Levels", "Badges"},
	}
	rec := store.Load(context.Background())
	m.levelTable = buildLevelTable(rec)
	m.badgeView = viewport.New(0, 0)
	m.badgeView.SetContent(renderBadges(rec))
	m.levelBar = progress.New(progress.WithSolidFill("#C89A3A"), progress.WithoutPercentage())
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}
		switch msg.String() {
		case "left", "h", "right", "l", "tab":
			m.activeTab = (m.activeTab + 1) % len(m.tabs)
			return m, tea.ClearScreen
		}
		if m.activeTab == tabLevels {
			var cmd tea.Cmd
			m.levelTable, cmd = m.levelTable.Update(msg)
			return m, cmd
		}
		var cmd tea.Cmd
		m.badgeView, cmd = m.badgeView.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	header := m.renderHeader()
	var body string
	if m.activeTab == tabLevels {
		body = m.levelTable.View()
	} else {
		body = m.badgeView.View()
	}
	footer := headerStyle.Render("←/→ switch tab · ↑/↓ scroll · q quit")
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) updateLayout() {
	headerHeight := lipgloss.Height(m.renderHeader())
	bodyHeight := m.height - headerHeight - 1
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	m.levelTable.SetHeight(bodyHeight)
	m.levelTable.SetWidth(m.width)
	m.badgeView.Width = m.width
	m.badgeView.Height = bodyHeight
	barWidth := m.width - 20
	if barWidth > 40 {
		barWidth = 40
	}
	if barWidth < 10 {
		barWidth = 10
	}
	m.levelBar.Width = barWidth
}

func (m *Model) renderHeader() string {
	rec := m.store.Load(context.Background())
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	tabs := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	summary := headerStyle.Render(summaryLine(rec))
	bar := accentStyle.Render(fmt.Sprintf("Level %d ", rec.CurrentLevel)) +
		m.levelBar.ViewAs(levelCompletion(rec))
	return tabs + "\n" + summary + "\n" + bar
}

// levelCompletion is the current level's progress toward its unlock
// requirement, capped at 1.
func levelCompletion(rec *model.UserProgress) float64 {
	cfg := levels.MustGet(rec.CurrentLevel)
	if cfg.PassagesRequired == 0 {
		return 0
	}
	frac := float64(gating.CompletedCount(rec, rec.CurrentLevel)) / float64(cfg.PassagesRequired)
	if frac > 1 {
		return 1
	}
	return frac
}

func summaryLine(rec *model.UserProgress) string {
	segments := []string{
		fmt.Sprintf("%s · level %d", rec.AnonymousID, rec.CurrentLevel),
		fmt.Sprintf("streak %d", rec.Streak.Current),
		fmt.Sprintf("%d min practiced", rec.TotalPracticeMinutes),
	}
	if rec.Grade > 0 {
		segments = append(segments, fmt.Sprintf("grade %d", rec.Grade))
	}
	return strings.Join(segments, "  ·  ")
}

// levelRow is one display row of the level overview.
type levelRow struct {
	Level    int
	Name     string
	Status   gating.Status
	Stats    gating.Stats
	Duration int
}

func levelRows(rec *model.UserProgress) []levelRow {
	rows := make([]levelRow, 0, levels.Max)
	for lvl := levels.Min; lvl <= levels.Max; lvl++ {
		cfg := levels.MustGet(lvl)
		rows = append(rows, levelRow{
			Level:    lvl,
			Name:     cfg.Title,
			Status:   gating.LevelStatus(rec, lvl),
			Stats:    gating.LevelStats(rec, lvl),
			Duration: cfg.DurationMinutes,
		})
	}
	return rows
}

func buildLevelTable(rec *model.UserProgress) table.Model {
	columns := []table.Column{
		{Title: "Level", Width: 7},
		{Title: "Name", Width: 16},
		{Title: "Status", Width: 10},
		{Title: "Done", Width: 8},
		{Title: "Avg WPM", Width: 8},
		{Title: "Avg Acc", Width: 8},
	}
	rows := make([]table.Row, 0, levels.Max)
	for _, r := range levelRows(rec) {
		rows = append(rows, table.Row{
			strconv.Itoa(r.Level),
			r.Name,
			r.Status.String(),
			fmt.Sprintf("%d/%d", r.Stats.Completed, r.Stats.Total),
			strconv.Itoa(r.Stats.AvgWPM),
			fmt.Sprintf("%d%%", r.Stats.AvgAccuracy),
		})
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	t.SetStyles(styles)
	return t
}

func renderBadges(rec *model.UserProgress) string {
	earned := map[string]bool{}
	for _, id := range rec.Badges {
		earned[id] = true
	}
	var b strings.Builder
	for _, badge := range badges.All() {
		if earned[badge.ID] {
			b.WriteString(earnedStyle.Render(fmt.Sprintf("%s %s", badge.Icon, badge.Name)))
			b.WriteString(earnedStyle.Render(" — " + badge.Description))
			b.WriteString("  ")
			b.WriteString(accentStyle.Render("earned"))
		} else {
			b.WriteString(lockedStyle.Render(fmt.Sprintf("%s %s — %s", badge.Icon, badge.Name, badge.Description)))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("%d of %d badges earned", len(rec.Badges), len(badges.All()))))
	return b.String()
}
