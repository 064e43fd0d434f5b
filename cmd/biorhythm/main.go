// Package main provides the CLI entrypoint for biorhythm.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/biorhythm/internal/chart"
	"github.com/verte-zerg/biorhythm/internal/config"
	"github.com/verte-zerg/biorhythm/internal/export"
	"github.com/verte-zerg/biorhythm/internal/model"
	"github.com/verte-zerg/biorhythm/internal/rhythm"
	"github.com/verte-zerg/biorhythm/internal/tui"
)

const version = "2.0.0"

const (
	formatText = "text"
	formatJSON = "json"

	// Auto-detected widths leave room for the date label column.
	labelReserve        = 16
	terminalWidthBackup = 80
)

var (
	chartBirth       string
	chartYear        int
	chartMonth       int
	chartDay         int
	chartDate        string
	chartDays        int
	chartWidth       int
	chartOrientation string
	chartFormat      string
	verbose          bool
)

var logger zerolog.Logger

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "biorhythm",
		Short:         "Biorhythm chart generator (pseudoscience demonstration)",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runChartCmd,
	}

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
	rootCmd.Flags().StringVar(&chartBirth, "birth", "", "birth date (YYYY-MM-DD)")
	rootCmd.Flags().IntVarP(&chartYear, "year", "y", 0, "birth year (1-9999)")
	rootCmd.Flags().IntVarP(&chartMonth, "month", "m", 0, "birth month (1-12)")
	rootCmd.Flags().IntVarP(&chartDay, "day", "d", 0, "birth day (1-31)")
	rootCmd.Flags().StringVar(&chartDate, "date", "", "plot date (YYYY-MM-DD, default today)")
	rootCmd.Flags().IntVar(&chartDays, "days", model.DefaultDays, "number of days to plot")
	rootCmd.Flags().IntVar(&chartWidth, "width", 0, "chart width in columns (0 = auto-detect)")
	rootCmd.Flags().StringVar(&chartOrientation, "orientation", string(model.Vertical), "chart orientation (vertical or horizontal)")
	rootCmd.Flags().StringVar(&chartFormat, "format", formatText, "output format (text or json)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func runChartCmd(cmd *cobra.Command, _ []string) error {
	logger = newLogger(verbose)

	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "days", &chartDays, fileCfg.Chart.Days)
	applyIntConfig(cmd, "width", &chartWidth, fileCfg.Chart.Width)
	applyStringConfig(cmd, "orientation", &chartOrientation, fileCfg.Chart.Orientation)

	orientation, err := model.ParseOrientation(chartOrientation)
	if err != nil {
		return err
	}

	birth, aborted, err := resolveBirthDate(&orientation)
	if err != nil {
		return err
	}
	if aborted {
		return nil
	}

	plot, err := resolvePlotDate()
	if err != nil {
		return err
	}

	width := chartWidth
	if width == 0 {
		width = autoChartWidth()
	}
	cfg, err := model.NewConfig(width, chartDays, orientation)
	if err != nil {
		return err
	}

	start := plot.AddDate(0, 0, -cfg.Days/2)
	logger.Debug().
		Str("birth", birth.Format("2006-01-02")).
		Str("plot", plot.Format("2006-01-02")).
		Int("days", cfg.Days).
		Int("width", cfg.Width).
		Str("orientation", string(cfg.Orientation)).
		Msg("building time series")

	res, err := rhythm.Build(cfg, birth, start, model.DefaultCycles())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch chartFormat {
	case formatJSON:
		return export.EncodeJSON(out, res)
	case formatText:
		if err := chart.Render(out, res); err != nil {
			return err
		}
		_, err := fmt.Fprintln(out, "\nREMEMBER: This is pseudoscience with no proven validity!")
		return err
	default:
		return fmt.Errorf("%w: format must be %q or %q, got %q", model.ErrInvalidConfiguration, formatText, formatJSON, chartFormat)
	}
}

func resolveBirthDate(orientation *model.Orientation) (time.Time, bool, error) {
	if chartBirth != "" {
		birth, err := model.ParseDate(chartBirth)
		return birth, false, err
	}
	if chartYear != 0 || chartMonth != 0 || chartDay != 0 {
		if chartYear == 0 || chartMonth == 0 || chartDay == 0 {
			return time.Time{}, false, fmt.Errorf("%w: --year, --month, and --day must all be provided", model.ErrInvalidDateRange)
		}
		birth, err := model.NewDate(chartYear, chartMonth, chartDay)
		return birth, false, err
	}

	// No birth date on the command line: fall back to the interactive prompt.
	promptModel := tui.NewModel()
	program := tea.NewProgram(promptModel)
	if _, err := program.Run(); err != nil {
		return time.Time{}, false, fmt.Errorf("failed to run prompt: %w", err)
	}
	result := promptModel.Result()
	if result.Aborted {
		logger.Debug().Msg("prompt aborted")
		return time.Time{}, true, nil
	}
	*orientation = result.Orientation
	return result.BirthDate, false, nil
}

func resolvePlotDate() (time.Time, error) {
	if chartDate == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return model.ParseDate(chartDate)
}

func autoChartWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = terminalWidthBackup
	}
	width -= labelReserve
	if width < model.MinChartWidth {
		width = model.MinChartWidth
	}
	return width
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger().Level(level)
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

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version)
			return err
		},
	}
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# biorhythm configuration
# Uncomment a value to enable it. CLI flags override config values.

[chart]
# width = %d          # Chart width in columns (>= %d)
# days = %d           # Number of days to plot
# orientation = %q    # vertical or horizontal
`,
		model.DefaultChartWidth,
		model.MinChartWidth,
		model.DefaultDays,
		string(model.Vertical),
	)
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
