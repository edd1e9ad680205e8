package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/chris-regnier/devrewind/internal/config"
	"github.com/chris-regnier/devrewind/internal/gitlog"
	"github.com/chris-regnier/devrewind/internal/logger"
	"github.com/chris-regnier/devrewind/internal/rewind"
	"github.com/chris-regnier/devrewind/internal/storage"
	"github.com/chris-regnier/devrewind/internal/storage/markdown"
	"github.com/chris-regnier/devrewind/internal/storage/sqlite"
	"github.com/chris-regnier/devrewind/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	cfgFile        string
	jsonOutput     bool
	storageBackend string
	seedFlag       int64
	yearFlag       int
	sourceFlag     string
	reducedMotion  bool
	debugFlag      bool

	appConfig *config.Config
	store     storage.Storage

	// session is built on first use and then shared by every consumer.
	session *rewind.Dataset
)

var rootCmd = &cobra.Command{
	Use:   "devrewind",
	Short: "Your developer year in review",
	Long: `devrewind plays an animated year-in-review of your commits, squashed bugs,
that one production incident, and the stats in between.

Commits are generated from a seed by default (--source mock); point it at a
repository with --source git to rewind your real history.`,
	Example: `  devrewind
  devrewind --seed 42 --year 2025
  devrewind --source git --reduced-motion
  devrewind show | less`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		appConfig = cfg
		applyFlagOverrides(cmd)

		if err := logger.Init(logger.Config{Debug: appConfig.Log.Debug, DataDir: appConfig.DataDir}); err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		logger.Debug("config loaded", "storage", appConfig.Storage, "source", appConfig.Source, "year", appConfig.Year)

		store, err = openStore(appConfig)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			if err := store.Close(); err != nil {
				logger.Warn("closing storage", "err", err)
			}
		}
		return logger.Close()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := sessionDataset(cmd.Context())
		if err != nil {
			return err
		}
		return play(cmd.OutOrStdout(), ds)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file path")
	pf.BoolVar(&jsonOutput, "json", false, "output in JSON format")
	pf.StringVar(&storageBackend, "storage", "", "storage backend (markdown|sqlite)")
	pf.Int64Var(&seedFlag, "seed", 0, "seed for generated commits (0 = time based)")
	pf.IntVar(&yearFlag, "year", 0, "year to rewind")
	pf.StringVar(&sourceFlag, "source", "", "commit source (mock|git)")
	pf.BoolVar(&reducedMotion, "reduced-motion", false, "skip entrance animations")
	pf.BoolVar(&debugFlag, "debug", false, "log debug output to stderr")

	// Silence Cobra's built-in error and usage printing so we control stderr output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

// applyFlagOverrides lets explicitly set flags win over config and env.
func applyFlagOverrides(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("storage") {
		appConfig.Storage = storageBackend
	}
	if flags.Changed("seed") {
		appConfig.Seed = seedFlag
	}
	if flags.Changed("year") {
		appConfig.Year = yearFlag
	}
	if flags.Changed("source") {
		appConfig.Source = sourceFlag
	}
	if flags.Changed("reduced-motion") {
		appConfig.ReducedMotion = reducedMotion
	}
	if flags.Changed("debug") {
		appConfig.Log.Debug = debugFlag
	}
}

func openStore(cfg *config.Config) (storage.Storage, error) {
	switch cfg.Storage {
	case "markdown":
		s, err := markdown.New(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("initializing markdown storage: %w", err)
		}
		return s, nil
	case "sqlite":
		s, err := sqlite.New(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("initializing sqlite storage: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage)
	}
}

// sessionDataset returns this process's dataset, building it on first call.
func sessionDataset(ctx context.Context) (rewind.Dataset, error) {
	if session != nil {
		return *session, nil
	}
	ds, err := buildDataset(ctx, appConfig)
	if err != nil {
		return rewind.Dataset{}, err
	}
	session = &ds
	logger.Info("dataset built", "source", ds.Source, "year", ds.Year, "seed", ds.Seed, "commits", ds.Stats.TotalCommits)
	return ds, nil
}

func buildDataset(ctx context.Context, cfg *config.Config) (rewind.Dataset, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	switch cfg.Source {
	case "", rewind.SourceMock:
		return rewind.NewDataset(rewind.Options{Year: cfg.Year, Seed: cfg.Seed}), nil
	case rewind.SourceGit:
		year := cfg.Year
		if year <= 0 {
			year = rewind.DefaultYear
		}
		commits, err := gitlog.NewReader(cfg.Git.Dir, cfg.Git.Author).Commits(ctx, year)
		if err != nil {
			return rewind.Dataset{}, fmt.Errorf("reading git history: %w", err)
		}
		if len(commits) == 0 {
			logger.Warn("no commits found", "dir", cfg.Git.Dir, "year", year)
		}
		return rewind.NewDataset(rewind.Options{Year: year, Commits: commits, Source: rewind.SourceGit}), nil
	default:
		return rewind.Dataset{}, fmt.Errorf("unknown commit source: %s (use mock or git)", cfg.Source)
	}
}

// play runs the TUI when w is a terminal and writes the report otherwise.
func play(w io.Writer, ds rewind.Dataset) error {
	if !isTerminal(w) {
		return writeReport(w, ds)
	}
	restore := logger.FileOnly()
	defer restore()
	return ui.RunTUI(ds, ui.TUIConfig{
		Theme:         ui.ResolveTheme(appConfig.Theme),
		MaxWidth:      appConfig.MaxWidth,
		ReducedMotion: appConfig.ReducedMotion,
		Profile:       appConfig.Profile,
	})
}

// writeReport renders the markdown report, paging it on a terminal.
func writeReport(w io.Writer, ds rewind.Dataset) error {
	theme := ui.ResolveTheme(appConfig.Theme)
	style := "notty"
	if isTerminal(w) {
		style = theme.MarkdownStyle
	}

	var buf bytes.Buffer
	err := ui.WriteReport(&buf, ds, ui.ReportOptions{
		Style:   style,
		Width:   appConfig.MaxWidth,
		Profile: appConfig.Profile,
	})
	if err != nil {
		return err
	}
	return ui.PageOutput(w, buf.String(), appConfig.MaxWidth, theme)
}

// isTerminal reports whether a stream (stdin or stdout) is a terminal.
func isTerminal(stream any) bool {
	f, ok := stream.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
