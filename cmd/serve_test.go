package cmd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"coursetrack/config"
	"coursetrack/db"
)

func TestOpenKV(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr bool
	}{
		{"memory", func(c *config.Config) { c.Storage = config.StorageMemory }, false},
		{"sqlite", func(c *config.Config) {
			c.Storage = config.StorageSQLite
			c.SQLitePath = filepath.Join(t.TempDir(), "ct.db")
		}, false},
		{"redis", func(c *config.Config) { c.RedisAddr = mr.Addr(); c.RedisDB = 0 }, false},
		{"unknown", func(c *config.Config) { c.Storage = "cookies" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.mutate(cfg)
			kv, err := openKV(ctx, cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("openKV: %v", err)
			}
			defer kv.Close()

			if err := db.NewStore(kv).Seed(ctx); err != nil {
				t.Fatalf("Seed: %v", err)
			}
			if _, err := kv.Get(ctx, db.CoursesKey); err != nil {
				t.Errorf("courses not seeded: %v", err)
			}
		})
	}
}

func TestWithCORS(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := withCORS(inner, []string{"http://allowed.example"})

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set("Origin", "http://allowed.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://allowed.example" {
		t.Errorf("expected allowed origin header, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set("Origin", "http://other.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("unexpected origin header %q", got)
	}
}

func TestRunServerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}

	done := make(chan error, 1)
	go func() { done <- runServer(ctx, srv) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("runServer returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
