package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/color-runner/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Color Runner SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game. All players share the same
high score and history, stored in the --db database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.color-runner/host_key

Examples:
  runner serve                           # Listen on :23234 with auto-generated key
  runner serve --ssh :2222               # Listen on port 2222
  runner serve --host-key ./my_host_key  # Use specific host key
  runner serve --difficulty hard         # Every session plays on hard

With the default address, users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port) (env: RUNNER_SSH)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file, auto-generated if not specified (env: RUNNER_HOST_KEY)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting (env: RUNNER_IDLE_TIMEOUT)")
	addTuningFlags(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	runnerCfg, err := loadRunnerConfig()
	if err != nil {
		return err
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Runner = runnerCfg

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting Color Runner SSH server on %s\n", server.Addr())
	fmt.Printf("Connect with: %s\n", connectCommand(server.Addr()))
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}

// connectCommand returns the ssh command a player runs to reach addr.
// Wildcard and empty hosts are shown as localhost.
func connectCommand(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "ssh " + addr
	}
	switch host {
	case "", "0.0.0.0", "::":
		host = "localhost"
	}
	return fmt.Sprintf("ssh %s -p %s", host, port)
}
