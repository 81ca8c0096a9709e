package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/spf13/cobra"

	"coursetrack/config"
	"coursetrack/db"
	"coursetrack/handlers"
	"coursetrack/static"
	"coursetrack/views"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the tracker web app and JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		kv, err := openKV(ctx, cfg)
		if err != nil {
			return fmt.Errorf("opening %s storage: %w", cfg.Storage, err)
		}
		defer kv.Close()

		store := db.NewStore(kv)
		if err := store.Seed(ctx); err != nil {
			return fmt.Errorf("seeding storage: %w", err)
		}

		renderer, err := views.NewRenderer()
		if err != nil {
			return fmt.Errorf("parsing templates: %w", err)
		}

		router := handlers.NewRouter(handlers.NewHandler(store, renderer), static.NewServer(cfg.StaticDir))
		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           withCORS(router, cfg.AllowedOrigins),
			ReadHeaderTimeout: 10 * time.Second,
		}

		log.Printf("Starting coursetrack on port %d (storage=%s, static=%s)", cfg.Port, cfg.Storage, cfg.StaticDir)
		return runServer(ctx, srv)
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

// openKV builds the storage backend named by cfg.Storage.
func openKV(ctx context.Context, cfg *config.Config) (db.KV, error) {
	switch cfg.Storage {
	case config.StorageRedis:
		client, err := db.InitializeRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		return db.NewRedisKV(client), nil
	case config.StorageSQLite:
		return db.OpenSQLiteKV(cfg.SQLitePath)
	case config.StorageMemory:
		log.Printf("Using in-memory storage, data is lost on exit")
		return db.NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
}

func withCORS(h http.Handler, origins []string) http.Handler {
	headers := gorillahandlers.AllowedHeaders([]string{"Content-Type", "Accept"})
	methods := gorillahandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	log.Printf("Configuring CORS with allowed origins: %v", origins)
	return gorillahandlers.CORS(headers, methods, gorillahandlers.AllowedOrigins(origins))(h)
}

// runServer serves until ctx is cancelled, then shuts the server down.
func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
