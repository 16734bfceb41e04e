// Package main implements the interactive TechShop support assistant.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spec-kit/support-assistant/internal/app"
	"github.com/spec-kit/support-assistant/internal/cli"
	"github.com/spec-kit/support-assistant/internal/config"
	"github.com/spec-kit/support-assistant/internal/observability"
	"github.com/spec-kit/support-assistant/internal/service"
)

var (
	dataDir  string
	backend  string
	logLevel string
	version  = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "assistant",
	Short: "TechShop customer support assistant",
	Long: `assistant runs the TechShop support menu in the terminal.

Without a subcommand it starts the interactive menu. Records are kept in the
data directory (DATA_DIR, default ./data).`,
	Version:      version,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withAssistant(cmd, func(ctx context.Context, a *app.App) error {
			return cli.NewMenu(a.Router, cmd.InOrStdin(), cmd.OutOrStdout()).Run(ctx)
		})
	},
}

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a single question and print the answer",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatchOnce(cmd, service.IntentFAQ, strings.Join(args, " "))
	},
}

var orderCmd = &cobra.Command{
	Use:   "order <order-id>",
	Short: "Print the status of an order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatchOnce(cmd, service.IntentOrderStatus, args[0])
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding the record files (overrides DATA_DIR)")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "storage backend: file, memory or postgres (overrides STORAGE_BACKEND)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level; logs go to stderr")
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(orderCmd)
}

func dispatchOnce(cmd *cobra.Command, intent service.Intent, text string) error {
	return withAssistant(cmd, func(ctx context.Context, a *app.App) error {
		resp := a.Router.Dispatch(ctx, intent, service.Request{Text: text})
		fmt.Fprintln(cmd.OutOrStdout(), resp.Text)
		for _, link := range resp.Links {
			fmt.Fprintln(cmd.OutOrStdout(), "🔗 "+link)
		}
		if !resp.OK() {
			return fmt.Errorf("%s request did not complete", intent)
		}
		return nil
	})
}

func withAssistant(cmd *cobra.Command, fn func(context.Context, *app.App) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if dataDir != "" {
		cfg.Storage.DataDir = dataDir
	}
	if backend != "" {
		switch b := config.StorageBackend(strings.ToLower(backend)); b {
		case config.StorageFile, config.StorageMemory, config.StoragePostgres:
			cfg.Storage.Backend = b
		default:
			return fmt.Errorf("invalid --backend %q", backend)
		}
	}
	cfg.Logger.Level = logLevel
	cfg.Logger.Output = "stderr"

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize assistant", zap.Error(err))
		return err
	}
	defer a.Close()

	return fn(ctx, a)
}
