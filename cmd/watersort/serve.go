package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-watersort/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the puzzle over SSH",
	Long: `Serve Water Sort over SSH. Every connection gets the start menu and
plays against the server's shared score database.

The host key defaults to ~/.watersort/host_key and is generated on first
start. Sessions without a terminal are refused.

Examples:
  watersort serve
  watersort serve --ssh :2222 --idle-timeout 10m
  watersort serve --host-key ./host_key --db ./scores.db

Then connect with:
  ssh -p 23234 localhost`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "Listen address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Host key file (default ~/.watersort/host_key)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", defaults.IdleTimeout, "Disconnect sessions idle this long")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = flagIdleTimeout
	cfg.TickRate = flagFPS

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Serving Water Sort on %s (Ctrl+C to stop)\n", server.Addr())
	return server.ListenAndServe()
}
