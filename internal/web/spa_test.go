package web

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/E11SH/RENTHUB/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:   "error",
		Format:  logger.JSON,
		Service: "test",
	})
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func TestSPAHandler_ServesExistingFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "index.html", "<html>index</html>")
	writeFile(t, dir, "app.js", "console.log('app')")

	handler := NewSPAHandler(dir, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/app.js", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "console.log") {
		t.Errorf("unexpected body: %q", w.Body.String())
	}
}

func TestSPAHandler_DeepLinkFallsBackToIndex(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "index.html", "<html>index</html>")

	handler := NewSPAHandler(dir, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/properties/507f1f77bcf86cd799439011", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "index") {
		t.Errorf("expected index fallback, got %q", w.Body.String())
	}
}

func TestSPAHandler_UnknownAPIRouteStaysJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "index.html", "<html>index</html>")

	handler := NewSPAHandler(dir, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"msg"`) {
		t.Errorf("expected JSON error body, got %q", w.Body.String())
	}
}

func TestSPAHandler_PathTraversalBlocked(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "index.html", "<html>index</html>")

	handler := NewSPAHandler(dir, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/../../etc/passwd", nil)
	req.URL.Path = "/../../etc/passwd"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	// Clean confines the path to the static dir, so the traversal resolves
	// to a miss and falls back to index.html.
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "index") {
		t.Errorf("expected index fallback, got %d %q", w.Code, w.Body.String())
	}
}
