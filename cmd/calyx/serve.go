package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/calyx-ui/calyx/internal/config"
	"github.com/calyx-ui/calyx/pkg/server"
)

func serveCmd() *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the development server",
		Long: `Start the development server for the current project.

The server serves the project's static assets, exposes the live-reload
endpoint, and (when enabled in calyx.toml) the /metrics endpoint.

Examples:
  calyx serve
  calyx serve --port=8080
  calyx serve --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port, host)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from calyx.toml)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from calyx.toml)")

	return cmd
}

func runServe(port int, host string) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	cfg, err := config.Load(wd)
	if err != nil {
		return err
	}
	if port > 0 {
		cfg.Server.Port = port
	}
	if host != "" {
		cfg.Server.Host = host
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	printBanner()
	fmt.Println()
	info("serving %s on http://%s", cfg.Name, cfg.Addr())
	if cfg.Server.Dev {
		info("live reload at %s", server.ReloadPath)
	}
	fmt.Println()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\n  Shutting down...")
		cancel()
	}()

	return server.New(cfg).Run(ctx)
}
