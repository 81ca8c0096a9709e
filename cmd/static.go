package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"coursetrack/static"
)

var (
	staticPort int
	staticRoot string
)

var staticCmd = &cobra.Command{
	Use:   "static",
	Short: "Serve the web directory as plain static files",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if cmd.Flags().Changed("port") {
			cfg.StaticPort = staticPort
		}
		if cmd.Flags().Changed("root") {
			cfg.StaticDir = staticRoot
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.StaticPort),
			Handler:           static.NewServer(cfg.StaticDir),
			ReadHeaderTimeout: 10 * time.Second,
		}

		log.Printf("Server running at http://localhost:%d/", cfg.StaticPort)
		log.Printf("Press Ctrl+C to stop")
		return runServer(ctx, srv)
	},
}

func init() {
	staticCmd.Flags().IntVar(&staticPort, "port", 8000, "port to listen on (overrides config)")
	staticCmd.Flags().StringVar(&staticRoot, "root", "web", "directory to serve (overrides config)")
	rootCmd.AddCommand(staticCmd)
}
