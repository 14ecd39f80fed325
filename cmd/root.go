package cmd

import (
	"fmt"
	"os"

	"github.com/philosophercode/itinerary-rewind-demo/internal/config"
	"github.com/philosophercode/itinerary-rewind-demo/internal/loader"
	"github.com/philosophercode/itinerary-rewind-demo/internal/viewer"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	dataDir    string
	baseURL    string
	verbose    bool
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "itinerary-rewind",
	Short: "Browse a photo trip: summary, map, timeline and gallery from a trip JSON document",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		if !cmd.Flags().Changed("data-dir") {
			dataDir = cfg.Data.Dir
		}
		if !cmd.Flags().Changed("base-url") {
			baseURL = cfg.Data.BaseURL
		}

		logger, err = newLogger(cfg.Log.Level)
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.toml", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", ".", "Directory holding the trip document and photos")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Fetch the trip document over HTTP from this URL instead of --data-dir")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

func Execute() error {
	return rootCmd.Execute()
}

// newLogger builds a JSON production logger, or a console logger at debug
// level with --verbose.
func newLogger(level string) (*zap.Logger, error) {
	if verbose {
		zc := zap.NewDevelopmentConfig()
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		return zc.Build()
	}

	zc := zap.NewProductionConfig()
	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, err
		}
		zc.Level = zap.NewAtomicLevelAt(lvl)
	}
	return zc.Build()
}

// newViewer wires the loader to the data directory, or to base-url when set.
func newViewer() *viewer.Viewer {
	var src loader.Source = loader.DirSource{Dir: dataDir}
	if baseURL != "" {
		src = loader.NewHTTPSource(baseURL, cfg.Fetch.RateLimit)
		logVerbose("Fetching trip data from %s", baseURL)
	}

	return &viewer.Viewer{
		Loader: &loader.Loader{
			Source:     src,
			Candidates: cfg.Data.Candidates,
			Logger:     logger,
		},
		Map: cfg.Map,
	}
}

func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
