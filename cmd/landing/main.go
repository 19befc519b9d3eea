// Command landing serves the Desert AAED landing page.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/desertaaed/landing/internal/config"
	"github.com/desertaaed/landing/internal/content"
	"github.com/desertaaed/landing/internal/logger"
	"github.com/desertaaed/landing/internal/pages"
	"github.com/desertaaed/landing/internal/server"
	"github.com/desertaaed/landing/internal/structpages"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string
	root := &cobra.Command{
		Use:          "landing",
		Short:        "Desert AAED landing page server",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (yaml, toml or json)")
	root.AddCommand(newServeCmd(&configFile), newRoutesCmd())
	return root
}

func newServeCmd(configFile *string) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the landing page",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configFile)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			lvl, err := cfg.Level()
			if err != nil {
				return err
			}
			lggr, err := logger.Config{Level: lvl, Development: cfg.Dev}.New()
			if err != nil {
				return err
			}
			defer func() { _ = lggr.Sync() }()

			srv, err := server.New(cfg, lggr)
			if err != nil {
				lggr.Errorw("building server", "err", err)
				return err
			}
			if err := srv.Run(cmd.Context()); err != nil {
				lggr.Errorw("server stopped", "err", err)
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides config")
	return cmd
}

func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the page routes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			page, err := content.Landing()
			if err != nil {
				return err
			}
			store := pages.NewStore(page, time.Minute)
			routes, err := structpages.PrintRoutes(&pages.Pages{}, "/",
				page, store, &pages.Site{}, logger.Nop())
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), routes)
			return err
		},
	}
}
