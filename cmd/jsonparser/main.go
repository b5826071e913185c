package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/reoring/jsonparser/i18n"
	"github.com/reoring/jsonparser/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stderr).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	cfg := config.Load()
	log := slog.New(slog.NewTextHandler(logOut, nil))

	rootCmd := &cobra.Command{
		Use:          "jsonparser",
		Short:        "Validate JSON and YAML documents against typed parsers",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			level, _ := cfg.Level()
			*log = *slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))
			i18n.SetLanguage(cfg.Lang)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfg.Lang, "lang", cfg.Lang, "message language (en, ja)")
	rootCmd.PersistentFlags().StringVar(&cfg.DuplicateKeys, "duplicate-keys", cfg.DuplicateKeys, "duplicate object keys: ignore, warn or error")
	rootCmd.PersistentFlags().IntVar(&cfg.MaxDepth, "max-depth", cfg.MaxDepth, "maximum nesting depth (0 disables)")
	rootCmd.PersistentFlags().Int64Var(&cfg.MaxBytes, "max-bytes", cfg.MaxBytes, "maximum input size in bytes (0 disables)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newCheckCmd(&cfg, log))
	rootCmd.AddCommand(newServeCmd(&cfg, log))
	rootCmd.AddCommand(newSchemasCmd())

	return rootCmd
}
