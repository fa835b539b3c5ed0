package server

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

const indexFile = "index.html"

// spaHandler serves the built client bundle. Paths that name an existing
// file are served as-is; any other path gets index.html so client-side
// routes survive a reload.
type spaHandler struct {
	root string
	s    *Server
}

func newSPAHandler(root string, s *Server) *spaHandler {
	return &spaHandler{root: root, s: s}
}

func (h *spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") || r.URL.Path == "/api" {
		h.s.errorResponse(w, http.StatusNotFound, "not found")
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		h.s.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if h.root == "" {
		h.s.errorResponse(w, http.StatusNotFound, "not found")
		return
	}

	name, err := h.resolve(r.URL.Path)
	if err != nil {
		log.Printf("[static] refused %q: %v", r.URL.Path, err)
		h.s.errorFrom(w, err)
		return
	}

	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		http.ServeFile(w, r, name)
		return
	}

	index := filepath.Join(h.root, indexFile)
	if _, err := os.Stat(index); err != nil {
		h.s.errorResponse(w, http.StatusNotFound, "client bundle not found")
		return
	}
	// ServeContent avoids ServeFile's redirect of paths ending in /index.html.
	f, err := os.Open(index)
	if err != nil {
		h.s.errorResponse(w, http.StatusInternalServerError, "failed to open client bundle")
		return
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		h.s.errorResponse(w, http.StatusInternalServerError, "failed to open client bundle")
		return
	}
	http.ServeContent(w, r, indexFile, info.ModTime(), f)
}

// resolve maps a URL path to a file under root. Any ".." segment is
// refused outright rather than cleaned away.
func (h *spaHandler) resolve(urlPath string) (string, error) {
	for _, seg := range strings.Split(strings.ReplaceAll(urlPath, "\\", "/"), "/") {
		if seg == ".." {
			return "", &ErrPathTraversal{Path: urlPath}
		}
	}

	root, err := filepath.Abs(h.root)
	if err != nil {
		return "", err
	}
	name := filepath.Join(root, filepath.FromSlash(filepath.Clean("/"+urlPath)))
	if name != root && !strings.HasPrefix(name, root+string(filepath.Separator)) {
		return "", &ErrPathTraversal{Path: urlPath}
	}
	return name, nil
}
