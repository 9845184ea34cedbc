// Command srepd runs srep as an HTTP search-node.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnendingLoop/srep/internal/appmode"
	"github.com/UnendingLoop/srep/internal/config"
	"github.com/UnendingLoop/srep/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath, address string

	cmd := &cobra.Command{
		Use:          "srepd",
		Short:        "HTTP search-node for srep",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if address != "" {
				cfg.Address = address
			}

			log, err := logger.New(cfg.Env, cfg.LogFile)
			if err != nil {
				return fmt.Errorf("failed to init logger: %w", err)
			}
			defer func() { _ = log.Sync() }()

			// готовим слушатель прерываний - контекст для всего приложения
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.Info("starting srepd", zap.String("env", cfg.Env), zap.String("address", cfg.Address))
			return appmode.RunNode(ctx, stop, cfg, log)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", os.Getenv(config.PathEnv), "path to YAML config (env "+config.PathEnv+")")
	cmd.Flags().StringVar(&address, "address", "", "listen address, overrides the config file")
	return cmd
}
