// Package main provides the CLI entrypoint for typegrow.
package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/typegrow/internal/config"
	"github.com/verte-zerg/typegrow/internal/gating"
	"github.com/verte-zerg/typegrow/internal/journey"
	"github.com/verte-zerg/typegrow/internal/leaderboard"
	"github.com/verte-zerg/typegrow/internal/levels"
	"github.com/verte-zerg/typegrow/internal/model"
	"github.com/verte-zerg/typegrow/internal/notify"
	"github.com/verte-zerg/typegrow/internal/progress"
	"github.com/verte-zerg/typegrow/internal/storage"
	"github.com/verte-zerg/typegrow/internal/tui"
)

const (
	storageSQLite = "sqlite"
	storageFile   = "file"
)

var (
	practiceLevel   int
	practicePassage string
	practiceTheme   string
	practiceGrade   int
	practiceStorage string

	journeyPlain bool

	boardGrade int
	boardLevel int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typegrow",
		Short:         "Typing tutor for kids",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().IntVar(&practiceLevel, "level", 0, "level to practice (default: current level)")
	rootCmd.Flags().StringVar(&practicePassage, "passage", "", "practice a specific passage id")
	rootCmd.Flags().StringVar(&practiceTheme, "theme", "", "color theme: dark or light")
	rootCmd.Flags().IntVar(&practiceGrade, "grade", 0, "school grade (1-12), used for the leaderboard")
	rootCmd.Flags().StringVar(&practiceStorage, "storage", storageSQLite, "progress backend: sqlite or file")

	rootCmd.AddCommand(newTutorialCmd())
	rootCmd.AddCommand(newJourneyCmd())
	rootCmd.AddCommand(newLeaderboardCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// openStore builds the progress store and, on the sqlite backend, the local
// leaderboard sharing the same database file.
func openStore(kind string) (*progress.Store, leaderboard.Board, func(), error) {
	switch kind {
	case storageSQLite:
		backend, err := storage.OpenSQLite(config.DefaultDBPath())
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to open db: %w", err)
		}
		board, err := leaderboard.NewSQLite(backend.DB())
		if err != nil {
			if cerr := backend.Close(); cerr != nil {
				logErrf("failed to close db: %v\n", cerr)
			}
			return nil, nil, nil, fmt.Errorf("failed to init leaderboard: %w", err)
		}
		closeFn := func() {
			if cerr := backend.Close(); cerr != nil {
				logErrf("failed to close db: %v\n", cerr)
			}
		}
		return progress.New(backend), board, closeFn, nil
	case storageFile:
		backend := storage.NewFile(config.DefaultProgressFilePath())
		closeFn := func() {
			if cerr := backend.Close(); cerr != nil {
				logErrf("failed to close progress file: %v\n", cerr)
			}
		}
		return progress.New(backend), nil, closeFn, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown storage %q (expected %s or %s)", kind, storageSQLite, storageFile)
	}
}

func resolveStorage(cmd *cobra.Command) (string, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "storage", &practiceStorage, fileCfg.Practice.Storage)
	return practiceStorage, nil
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "level", &practiceLevel, fileCfg.Practice.Level)
	applyStringConfig(cmd, "theme", &practiceTheme, fileCfg.Practice.Theme)
	applyIntConfig(cmd, "grade", &practiceGrade, fileCfg.Practice.Grade)
	applyStringConfig(cmd, "storage", &practiceStorage, fileCfg.Practice.Storage)

	store, board, closeFn, err := openStore(practiceStorage)
	if err != nil {
		return err
	}
	defer closeFn()

	ctx := context.Background()
	if err := applyProfileFlags(ctx, store); err != nil {
		return err
	}

	rec := store.Load(ctx)
	level := practiceLevel
	if level == 0 {
		level = rec.CurrentLevel
	}
	if !levels.Valid(level) {
		return fmt.Errorf("level must be between %d and %d", levels.Min, levels.Max)
	}
	if practicePassage == "" && gating.LevelStatus(rec, level) == gating.Locked {
		return fmt.Errorf("level %d is still locked; finish more level %d passages first", level, rec.CurrentLevel)
	}

	return runSession(store, board, level, practicePassage, false)
}

func newTutorialCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tutorial",
		Short: "Learn the home row keys",
		Args:  cobra.NoArgs,
		RunE:  runTutorialCmd,
	}
}

func runTutorialCmd(cmd *cobra.Command, _ []string) error {
	kind, err := resolveStorage(cmd)
	if err != nil {
		return err
	}
	store, board, closeFn, err := openStore(kind)
	if err != nil {
		return err
	}
	defer closeFn()
	return runSession(store, board, levels.Min, "", true)
}

// runSession runs the practice TUI. Notifications are buffered and flushed
// after the alternate screen closes so they stay readable.
func runSession(store *progress.Store, board leaderboard.Board, level int, passageID string, tutorial bool) error {
	var notices bytes.Buffer
	notifier := &notify.Writer{Out: &notices}

	m, err := tui.NewModel(store, board, notifier, level, passageID, tutorial)
	if err != nil {
		return err
	}
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if notices.Len() > 0 {
		if _, err := os.Stdout.Write(notices.Bytes()); err != nil {
			logErrf("failed to write summary: %v\n", err)
		}
	}
	return nil
}

func applyProfileFlags(ctx context.Context, store *progress.Store) error {
	if practiceTheme != "" {
		theme := model.Theme(practiceTheme)
		if theme != model.ThemeDark && theme != model.ThemeLight {
			return fmt.Errorf("unknown theme %q (expected dark or light)", practiceTheme)
		}
		store.SetTheme(ctx, theme)
	}
	if practiceGrade != 0 {
		if practiceGrade < 1 || practiceGrade > 12 {
			return fmt.Errorf("--grade must be between 1 and 12")
		}
		store.SetGrade(ctx, practiceGrade)
	}
	return nil
}

func newJourneyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journey",
		Short: "Show level progress, streak, and badges",
		Args:  cobra.NoArgs,
		RunE:  runJourneyCmd,
	}
	cmd.Flags().BoolVar(&journeyPlain, "plain", false, "print plain text instead of the interactive view")
	return cmd
}

func runJourneyCmd(cmd *cobra.Command, _ []string) error {
	kind, err := resolveStorage(cmd)
	if err != nil {
		return err
	}
	store, _, closeFn, err := openStore(kind)
	if err != nil {
		return err
	}
	defer closeFn()

	if journeyPlain {
		rec := store.Load(context.Background())
		width := journey.TerminalWidth(int(os.Stdout.Fd()))
		return journey.RenderPlain(cmd.OutOrStdout(), rec, width)
	}

	program := tea.NewProgram(journey.NewModel(store), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run journey TUI: %w", err)
	}
	return nil
}

func newLeaderboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the local leaderboard for a grade and level",
		Args:  cobra.NoArgs,
		RunE:  runLeaderboardCmd,
	}
	cmd.Flags().IntVar(&boardGrade, "grade", 0, "grade to show (default: your grade)")
	cmd.Flags().IntVar(&boardLevel, "level", 0, "level to show (default: your current level)")
	return cmd
}

func runLeaderboardCmd(cmd *cobra.Command, _ []string) error {
	store, board, closeFn, err := openStore(storageSQLite)
	if err != nil {
		return err
	}
	defer closeFn()

	ctx := context.Background()
	rec := store.Load(ctx)
	grade := boardGrade
	if grade == 0 {
		grade = rec.Grade
	}
	if grade == 0 {
		return fmt.Errorf("no grade chosen yet; run typegrow --grade <1-12> first")
	}
	level := boardLevel
	if level == 0 {
		level = rec.CurrentLevel
	}
	if !levels.Valid(level) {
		return fmt.Errorf("level must be between %d and %d", levels.Min, levels.Max)
	}

	res, err := board.GetLeaderboard(ctx, grade, level, rec.AnonymousID)
	if err != nil {
		return fmt.Errorf("failed to load leaderboard: %w", err)
	}
	width := journey.TerminalWidth(int(os.Stdout.Fd()))
	return journey.RenderLeaderboard(cmd.OutOrStdout(), &res, grade, level, width)
}

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Erase all progress and start over",
		Args:  cobra.NoArgs,
		RunE:  runResetCmd,
	}
}

func runResetCmd(cmd *cobra.Command, _ []string) error {
	kind, err := resolveStorage(cmd)
	if err != nil {
		return err
	}
	store, _, closeFn, err := openStore(kind)
	if err != nil {
		return err
	}
	defer closeFn()

	if _, err := fmt.Fprint(cmd.OutOrStdout(), "This erases all progress and badges. Type yes to continue: "); err != nil {
		return fmt.Errorf("failed to write prompt: %w", err)
	}
	reader := bufio.NewReader(cmd.InOrStdin())
	answer, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read answer: %w", err)
	}
	if strings.TrimSpace(strings.ToLower(answer)) != "yes" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "Nothing was erased.")
		return err
	}
	if err := store.Reset(context.Background()); err != nil {
		return fmt.Errorf("failed to reset progress: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), "Progress erased. A new typist profile starts on the next run.")
	return err
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return `# typegrow configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# level = 1              # Level to practice (1-5)
# theme = "dark"         # Color theme: dark or light
# grade = 3              # School grade (1-12), used for the leaderboard
# storage = "sqlite"     # Progress backend: sqlite or file
`
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
