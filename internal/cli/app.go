package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/hltv-cal/internal/background"
	"github.com/pfrederiksen/hltv-cal/internal/config"
	"github.com/pfrederiksen/hltv-cal/internal/exporter"
	"github.com/pfrederiksen/hltv-cal/internal/logger"
	"github.com/pfrederiksen/hltv-cal/internal/notifier"
	"github.com/pfrederiksen/hltv-cal/internal/preferences"
	"github.com/pfrederiksen/hltv-cal/internal/scraper"
	"github.com/pfrederiksen/hltv-cal/internal/storage"
)

// app holds everything one command invocation needs
type app struct {
	cfg      *config.Config
	format   OutputFormat
	out      io.Writer
	errOut   io.Writer
	loader   *scraper.Loader
	prefs    preferences.Storage
	client   *background.Client
	exporter *exporter.Exporter

	stop context.CancelFunc
	done chan struct{}
}

// newApp loads configuration and starts the background service. Callers
// must defer close.
func newApp(cmd *cobra.Command) (*app, error) {
	format, err := parseFormat()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	applyFlagOverrides(cmd, cfg)

	level := logger.ParseLevel(cfg.LogLevel)
	if flagVerbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, cmd.ErrOrStderr()))

	prefs, err := openPreferences(cfg)
	if err != nil {
		return nil, err
	}
	if _, installed, err := preferences.Install(prefs); err != nil {
		return nil, fmt.Errorf("initializing settings: %w", err)
	} else if installed {
		logger.Info("Stored default settings", nil)
	}

	downloads, err := storage.New(cfg.DownloadDir)
	if err != nil {
		return nil, fmt.Errorf("initializing download directory: %w", err)
	}

	var opener background.URLOpener = background.SystemOpener{}
	if flagDryRun {
		opener = background.PrintOpener{Out: cmd.ErrOrStderr()}
	}

	ctx, stop := context.WithCancel(cmd.Context())
	svc := background.New(prefs, opener)
	done := make(chan struct{})
	go func() {
		defer close(done)
		svc.Run(ctx)
	}()
	client := svc.Client()

	opts := scraper.Options{
		UserAgent:     cfg.UserAgent,
		Timeout:       cfg.Timeout,
		RatePerSecond: cfg.RatePerSecond,
	}
	var remote scraper.Source = scraper.NewHTTP(opts)
	if cfg.Browser {
		remote = scraper.NewBrowser(opts)
	}

	return &app{
		cfg:    cfg,
		format: format,
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
		loader: &scraper.Loader{
			Remote: remote,
			File:   scraper.NewFile(flagPageURL),
		},
		prefs:    prefs,
		client:   client,
		exporter: exporter.New(client, downloads, notifier.NewConsole(cmd.ErrOrStderr())),
		stop:     stop,
		done:     done,
	}, nil
}

// close stops the background service and reports metrics in verbose mode
func (a *app) close() {
	a.stop()
	<-a.done
	if flagVerbose {
		logger.Debug("Run metrics", logger.MetricsSnapshot())
	}
}

// applyFlagOverrides gives explicitly set flags precedence over config
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		cfg.DataDir = flagDataDir
	}
	if flags.Changed("download-dir") {
		cfg.DownloadDir = flagDownloadDir
	}
	if flags.Changed("browser") {
		cfg.Browser = flagBrowser
	}
}

func openPreferences(cfg *config.Config) (preferences.Storage, error) {
	if cfg.Gist.Enabled() {
		store, err := preferences.NewGistStorage(cfg.Gist.ID, cfg.Gist.Token)
		if err != nil {
			return nil, fmt.Errorf("initializing gist settings: %w", err)
		}
		return store, nil
	}

	store, err := preferences.NewFileStorage(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("initializing settings storage: %w", err)
	}
	return store, nil
}
