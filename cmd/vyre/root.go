package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vyre/desktop/internal/app"
	"github.com/vyre/desktop/internal/config"
	"github.com/vyre/desktop/internal/logging"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "vyre",
		Short:         "Vyre desktop shell",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "config.yml", "path to configuration file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(newVersionCommand(opts))
	return cmd
}

func newVersionCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", cfg.Application.Name, cfg.Application.Version)
			return nil
		},
	}
}

func loadConfig(opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", opts.configPath, err)
	}
	if opts.logLevel != "" {
		if err := logging.CheckLevel(opts.logLevel); err != nil {
			return nil, fmt.Errorf("--log-level: %w", err)
		}
		cfg.Application.LogLevel = opts.logLevel
	}
	return cfg, nil
}

func run(opts *rootOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, err := logging.Init(cfg.Application.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	started := time.Now()
	logger.Info("Starting application",
		zap.String("name", cfg.Application.Name),
		zap.String("version", cfg.Application.Version))

	application := app.NewApplication(logger, cfg, started)
	if err := application.Initialize(); err != nil {
		logger.Fatal("Failed to initialize application", zap.Error(err))
	}

	// Run blocks until the main window is closed.
	if err := application.Run(); err != nil {
		logger.Fatal("Failed to run application", zap.Error(err))
	}

	logger.Info("Application exited")
	return nil
}
