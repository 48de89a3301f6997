package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bounce-shield/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a mode menu. Results go to a
leaderboard shared by every connection and kept until the server stops.
Sound is never played server-side.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.bounce/host_key

Examples:
  bounce serve                           # Listen on :23234 with auto-generated key
  bounce serve --ssh :2222               # Listen on port 2222
  bounce serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS

	server, err := tui.NewSSHServer(cfg, logger.WithPrefix("bounce-ssh"))
	if err != nil {
		return err
	}

	logger.Info("connect with ssh", "address", server.Addr())
	return server.ListenAndServe()
}
