package static

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupRoot(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"index.html":     "<h1>home</h1>",
		"css/app.css":    "body{}",
		"data/blob.xyz":  "raw bytes",
		"img/logo.PNG":   "png",
		"nested/dir/.gk": "",
	}
	for name, body := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("MkdirAll: %v", err)
		}
		if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
	return dir
}

func TestResolve(t *testing.T) {
	tests := map[string]string{
		"/":               "index.html",
		"":                "index.html",
		"/css/app.css":    "css/app.css",
		"/a/../b.js":      "b.js",
		"/../../etc/pass": "etc/pass",
	}
	for in, want := range tests {
		if got := Resolve(in); got != want {
			t.Errorf("Resolve(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestContentType(t *testing.T) {
	tests := map[string]string{
		"index.html": "text/html",
		"app.js":     "text/javascript",
		"photo.jpg":  "image/jpg",
		"LOGO.PNG":   "image/png",
		"mod.wasm":   "application/wasm",
		"notes.txt":  DefaultContentType,
		"Makefile":   DefaultContentType,
	}
	for in, want := range tests {
		if got := ContentType(in); got != want {
			t.Errorf("ContentType(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestServeHTTP(t *testing.T) {
	srv := NewServer(setupRoot(t))

	tests := []struct {
		name        string
		method      string
		path        string
		wantStatus  int
		wantType    string
		wantBodyHas string
	}{
		{"root document", http.MethodGet, "/", http.StatusOK, "text/html", "<h1>home</h1>"},
		{"css", http.MethodGet, "/css/app.css", http.StatusOK, "text/css", "body{}"},
		{"unknown extension", http.MethodGet, "/data/blob.xyz", http.StatusOK, DefaultContentType, "raw bytes"},
		{"missing", http.MethodGet, "/nope.html", http.StatusNotFound, "text/html", "<h1>404 Not Found</h1>"},
		{"directory", http.MethodGet, "/nested", http.StatusInternalServerError, "", "Server Error"},
		{"head", http.MethodHead, "/css/app.css", http.StatusOK, "text/css", ""},
		{"post", http.MethodPost, "/index.html", http.StatusMethodNotAllowed, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status: got %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantType != "" && rec.Header().Get("Content-Type") != tt.wantType {
				t.Errorf("content type: got %q, want %q", rec.Header().Get("Content-Type"), tt.wantType)
			}
			if !strings.Contains(rec.Body.String(), tt.wantBodyHas) {
				t.Errorf("body %q does not contain %q", rec.Body.String(), tt.wantBodyHas)
			}
		})
	}
}

func TestServerErrorHidesPath(t *testing.T) {
	root := setupRoot(t)
	srv := NewServer(root)

	req := httptest.NewRequest(http.MethodGet, "/nested", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d, want 500", rec.Code)
	}
	body := rec.Body.String()
	if strings.Contains(body, root) || strings.Contains(body, "nested") {
		t.Errorf("error body leaks the file path: %q", body)
	}
	if !strings.HasPrefix(body, "Server Error: ") {
		t.Errorf("unexpected body %q", body)
	}
}
