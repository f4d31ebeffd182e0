package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"library_landing/internal/animator"
	"library_landing/internal/config"
	"library_landing/internal/domain"
	"library_landing/internal/scheduler"
	"library_landing/internal/ui"
)

type showOptions struct {
	once bool
}

func runShow(cmd *cobra.Command, opts *rootOptions, showOpts *showOptions) error {
	cfg, err := load(cmd, opts)
	if err != nil {
		return err
	}

	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	w, closeLog, err := logOutput(opts, interactive)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closeLog()
	logger := setupLogger(cfg.LogLevel, w)

	acquirer, closePublisher := newAcquirer(cfg, logger)
	defer closePublisher()

	frames := scheduler.NewFrames()
	store := animator.NewStore()
	anim := animator.New(store, frames, animator.Config{
		Duration: cfg.Animation.Duration,
		Locale:   cfg.Locale,
	}, logger)

	ctx := cmd.Context()

	if !interactive {
		loop := scheduler.NewLoop(frames, cfg.Animation.FrameInterval, logger)
		headless := ui.NewHeadless(cmd.OutOrStdout(), loop, store, anim, logger)
		return headless.Play(ctx, acquirer.Acquire(ctx))
	}

	uiCfg := uiConfig(cfg)
	uiCfg.ExitWhenDone = showOpts.once
	model := ui.NewModel(ctx, uiCfg, acquirer, frames, store, anim)

	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		logger.Error("landing screen failed", "error", err)
		return err
	}
	return nil
}

func uiConfig(cfg *config.Config) ui.Config {
	c := ui.DefaultConfig()
	c.FrameInterval = cfg.Animation.FrameInterval
	c.ScrollDuration = cfg.Animation.ScrollDuration
	c.Toast = ui.ToastTiming{
		EnterDelay: cfg.Toast.EnterDelay,
		Transition: cfg.Toast.Transition,
		Visible:    cfg.Toast.Visible,
	}
	return c
}

type statsOptions struct {
	format string
}

// statsOutput is the JSON output of the stats command.
type statsOutput struct {
	Origin         domain.Origin `json:"origin"`
	BaseURL        string        `json:"base_url"`
	BooksTotal     int64         `json:"total_books"`
	StudentsTotal  int64         `json:"total_students"`
	BooksIssued    int64         `json:"books_issued"`
	BooksAvailable int64         `json:"available_books"`
	RecentIssues   *int64        `json:"recent_issues,omitempty"`
}

func newStatsCommand(root *rootOptions) *cobra.Command {
	opts := &statsOptions{}
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Fetch the statistics once and print them",
		Example: `  # Table for a served page
  landing stats --page https://library.example.org/

  # JSON, as consumed by scripts
  landing stats --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load(cmd, root)
			if err != nil {
				return err
			}
			w, closeLog, err := logOutput(root, false)
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			defer closeLog()
			logger := setupLogger(cfg.LogLevel, w)

			acquirer, closePublisher := newAcquirer(cfg, logger)
			defer closePublisher()

			snap := acquirer.Acquire(cmd.Context())
			return renderStats(cmd.OutOrStdout(), opts.format, baseURL(cfg), snap, animator.NumberFormatter(cfg.Locale))
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "table", "Output format: table, json")

	return cmd
}

func renderStats(w io.Writer, format, base string, snap domain.Snapshot, number animator.Formatter) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(statsOutput{
			Origin:         snap.Origin,
			BaseURL:        base,
			BooksTotal:     snap.Stats.BooksTotal,
			StudentsTotal:  snap.Stats.StudentsTotal,
			BooksIssued:    snap.Stats.BooksIssued,
			BooksAvailable: snap.Stats.BooksAvailable,
			RecentIssues:   snap.Stats.RecentIssues,
		})
	case "table", "":
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetTitle("Library statistics")
		t.AppendHeader(table.Row{"Metric", "Value"})
		t.AppendRows([]table.Row{
			{"Total books", number(snap.Stats.BooksTotal)},
			{"Students", number(snap.Stats.StudentsTotal)},
			{"Books issued", number(snap.Stats.BooksIssued)},
			{"Available", number(snap.Stats.BooksAvailable)},
		})
		if snap.Stats.RecentIssues != nil {
			t.AppendRow(table.Row{"Issued in last 7 days", number(*snap.Stats.RecentIssues)})
		}
		t.AppendSeparator()
		t.AppendRow(table.Row{"Origin", string(snap.Origin)})
		if base != "" {
			t.AppendRow(table.Row{"Backend", base})
		}
		t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
		t.Render()
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func newResolveCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Print the backend base URL derived from the page location",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load(cmd, root)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), baseURL(cfg))
			return err
		},
	}
}
