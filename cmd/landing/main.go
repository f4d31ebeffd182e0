package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"library_landing/internal/config"
	"library_landing/internal/endpoint"
	"library_landing/internal/publisher"
	"library_landing/internal/service"
	"library_landing/internal/source/backend"
)

// Version is set at build time.
var Version = "0.1.0"

type rootOptions struct {
	configPath string
	pageURL    string
	logLevel   string
	logFile    string
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	showOpts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "landing",
		Short: "Library landing screen with live statistics",
		Long: `Shows the library landing screen: total books, students, issued and
available books counted up from zero, with demo figures when the backend
cannot be reached.

The backend is derived from the page location: a page opened from disk talks
to http://localhost:5000, a served page talks to its own origin.`,
		Version:      Version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShow(cmd, opts, showOpts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "config.yaml", "path to config file")
	cmd.PersistentFlags().StringVar(&opts.pageURL, "page", "", "page location, e.g. file:///srv/site/index.html")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "write logs to this file instead of stderr")
	cmd.Flags().BoolVar(&showOpts.once, "once", false, "exit once the counters have settled")

	cmd.AddCommand(newStatsCommand(opts), newResolveCommand(opts))

	return cmd
}

// load reads configuration and applies flag overrides.
func load(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	explicit := cmd.Flags().Changed("config")
	cfg, err := config.Load(opts.configPath, !explicit)
	if err != nil {
		return nil, err
	}
	if opts.pageURL != "" {
		cfg.PageURL = opts.pageURL
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	return cfg, nil
}

func baseURL(cfg *config.Config) string {
	if cfg.API.BaseURL != "" {
		return cfg.API.BaseURL
	}
	return endpoint.Resolve(cfg.PageURL)
}

// newAcquirer wires the backend client and the optional publisher. The
// returned closer releases the publisher connection.
func newAcquirer(cfg *config.Config, logger *slog.Logger) (*service.StatsAcquirer, func()) {
	client := backend.New(backend.Config{
		BaseURL: baseURL(cfg),
		Origin:  endpoint.Origin(cfg.PageURL),
		Timeout: cfg.API.Timeout,
	}, logger)

	closer := func() {}
	var pub service.Publisher
	if cfg.RabbitMQ.Enabled() {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
			MessageTTL: cfg.RabbitMQ.MessageTTL,
		}, logger)
		if err != nil {
			logger.Warn("snapshot publishing disabled", "error", err)
		} else {
			pub = rabbitMQ
			closer = func() {
				if err := rabbitMQ.Close(); err != nil {
					logger.Warn("failed to close rabbitmq", "error", err)
				}
			}
		}
	}

	return service.NewStatsAcquirer(client, pub, logger), closer
}

func setupLogger(level string, w io.Writer) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(w, opts)
	return slog.New(handler)
}

// logOutput opens the log destination. interactive screens get no stderr
// logging unless a file is given, since it would tear the display.
func logOutput(opts *rootOptions, interactive bool) (io.Writer, func(), error) {
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		return f, func() { f.Close() }, nil
	}
	if interactive {
		return io.Discard, func() {}, nil
	}
	return os.Stderr, func() {}, nil
}
