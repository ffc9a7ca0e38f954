package web

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	httputil "github.com/E11SH/RENTHUB/pkg/http"
	"github.com/E11SH/RENTHUB/pkg/logger"
)

// SPAHandler serves the bundled frontend. Files under the static directory
// are served as-is; any other path falls back to index.html so client-side
// routing works on deep links. API paths never reach it because the router
// matches them first.
type SPAHandler struct {
	staticDir string
	log       *logger.Logger
}

func NewSPAHandler(staticDir string, log *logger.Logger) *SPAHandler {
	return &SPAHandler{
		staticDir: staticDir,
		log:       log,
	}
}

func (h *SPAHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		httputil.WriteMsg(w, http.StatusNotFound, "Not found")
		return
	}

	path := filepath.Join(h.staticDir, filepath.Clean("/"+r.URL.Path))

	info, err := os.Stat(path)
	if err == nil && !info.IsDir() {
		http.ServeFile(w, r, path)
		return
	}

	index := filepath.Join(h.staticDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		h.log.Warn("Static index not found", "static_dir", h.staticDir)
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, index)
}
