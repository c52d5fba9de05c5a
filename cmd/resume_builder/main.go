// Package main implements the resume_builder CLI: a local editor, previewer and API server
// for a structured resume document.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:               "resume_builder",
	Short:             "Structured resume editor",
	Long:              "Resume Builder edits a structured resume document, renders it with one of several visual templates and exports it as HTML or PDF.",
	SilenceUsage:      true,
	PersistentPreRunE: setupApp,
}

var (
	rootConfigFile string
	rootStorage    string
	rootDataDir    string
	rootVerbose    bool
)

// app holds the shared dependencies built once per invocation
type app struct {
	cfg     config.Config
	logger  *zap.Logger
	metrics *observability.Metrics
	kv      storage.KV
	store   *store.Store
}

var state *app

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootConfigFile, "config", "c", "", "Path to JSON or YAML config file")
	rootCmd.PersistentFlags().StringVar(&rootStorage, "storage", "", "Persistence backend: memory, file or sqlite")
	rootCmd.PersistentFlags().StringVar(&rootDataDir, "data-dir", "", "Directory for persisted state")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print detailed debug information")
}

// loadConfig merges the config file, environment and flags, in increasing precedence
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	fileCfg := &config.Config{}
	if rootConfigFile != "" {
		loaded, err := config.LoadConfig(rootConfigFile)
		if err != nil {
			return config.Config{}, err
		}
		fileCfg = loaded
	}
	if err := fileCfg.ApplyEnv(); err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("storage") {
		fileCfg.Storage = rootStorage
	}
	if flags.Changed("data-dir") {
		fileCfg.DataDir = rootDataDir
	}
	if flags.Changed("verbose") {
		fileCfg.Verbose = rootVerbose
	}

	cfg := fileCfg.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := observability.NewLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if cfg.Storage != storage.BackendMemory {
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	kv, err := storage.Open(ctx, cfg.Storage, cfg.DataDir)
	if err != nil {
		return err
	}

	metrics := observability.NewMetrics()
	opts := []store.Option{
		store.WithLogger(logger),
		store.WithMetrics(metrics),
		store.WithGenerator(llm.NewCannedGenerator(llm.WithDelay(cfg.GenerationDelay()))),
	}
	if cfg.SerializeGeneration {
		opts = append(opts, store.WithSerializedGeneration())
	}

	state = &app{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		kv:      kv,
		store:   store.New(ctx, kv, opts...),
	}
	logger.Debug("configuration loaded",
		zap.String("storage", cfg.Storage),
		zap.String("data_dir", cfg.DataDir))
	return nil
}

// closeApp releases what setupApp opened
func closeApp() {
	if state == nil {
		return
	}
	if err := state.kv.Close(); err != nil {
		state.logger.Warn("failed to close storage", zap.Error(err))
	}
	_ = state.logger.Sync()
	state = nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	err := rootCmd.Execute()
	closeApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
