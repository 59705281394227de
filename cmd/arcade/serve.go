package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-arcade/internal/applog"
	"github.com/vovakirdan/tile-arcade/internal/platform/tui"
	"github.com/vovakirdan/tile-arcade/internal/platform/web"
	"github.com/vovakirdan/tile-arcade/internal/storage"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the arcade SSH server",
	Long: `Start an SSH server that allows users to connect and play games.

Each SSH connection gets their own session with a game picker menu.
Scores are stored per-server (all users share the same leaderboard).

With --http, an HTTP server also runs on the same store:
  GET /games          - registered games
  GET /scores/<game>  - top scores
  GET /play/<game>    - websocket play, one JSON event per message

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  arcade serve                           # Listen on :23234 with auto-generated key
  arcade serve --ssh :2222               # Listen on port 2222
  arcade serve --http :8080              # Also serve the websocket API
  arcade serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP server address (empty = disabled)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

// listener is a server that runs until its context ends.
type listener interface {
	ListenAndServe(ctx context.Context) error
}

func runServe(_ *cobra.Command, _ []string) {
	// Servers own no terminal, so logs go to stderr unless --log says otherwise.
	if flagLogPath == "" {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			level = log.InfoLevel
		}
		applog.SetOutput(os.Stderr, level)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	sshServer, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}, store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	servers := []listener{sshServer}
	fmt.Printf("Starting arcade SSH server on %s\n", sshServer.Addr())
	if flagHTTPAddr != "" {
		httpServer := web.NewServer(flagHTTPAddr, store)
		servers = append(servers, httpServer)
		fmt.Printf("Starting arcade HTTP server on %s\n", httpServer.Addr())
	}
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The first server to fail stops the others.
	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	for _, srv := range servers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := srv.ListenAndServe(ctx); err != nil {
				once.Do(func() { firstErr = err })
				stop()
			}
		}()
	}
	wg.Wait()

	if firstErr != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", firstErr)
		if store != nil {
			store.Close()
		}
		os.Exit(1)
	}
}
