// Package server implements the viewer HTTP server: the interactive graph
// page, raw artifact serving, and the JSON endpoints the page's script
// drives (positioned graph models, resolved syntax tree renders).
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ramran505/depends-tree-sitter-visualizer/pkg/graph"
	"github.com/ramran505/depends-tree-sitter-visualizer/pkg/layout"
	"github.com/ramran505/depends-tree-sitter-visualizer/pkg/render"
	"github.com/ramran505/depends-tree-sitter-visualizer/pkg/view"
)

// DefaultPort is the port the viewer binds when none is configured.
const DefaultPort = 3000

// Server serves converted artifacts from a single output directory.
type Server struct {
	ArtifactDir string
	Renderer    *render.Renderer
	Logger      *log.Logger

	// DefaultGraph is the artifact the page loads when no ?graph= query is
	// given. Empty means the most obvious batch output name.
	DefaultGraph string

	fetcher view.DirFetcher
}

// New builds a Server over dir. renderer may carry a shared render cache;
// nil gets an uncached renderer.
func New(dir string, renderer *render.Renderer, logger *log.Logger) *Server {
	if renderer == nil {
		renderer = render.NewRenderer(nil)
	}
	return &Server{
		ArtifactDir: dir,
		Renderer:    renderer,
		Logger:      logger,
		fetcher:     view.DirFetcher{Root: dir},
	}
}

// Router assembles the route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Get("/api/graph", s.handleGraph)
	r.Get("/api/ast", s.handleAST)
	r.Get("/api/render", s.handleRender)
	r.Handle("/artifacts/*", http.StripPrefix("/artifacts/",
		http.FileServer(http.Dir(s.ArtifactDir))))
	return r
}

// ListenAndServe runs the server until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, port int) error {
	if port == 0 {
		port = DefaultPort
	}
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	s.Logger.Infof("Viewer listening on http://localhost:%d", port)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	graphFile := r.URL.Query().Get("graph")
	if graphFile == "" {
		graphFile = s.defaultGraph()
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := view.WritePage(w, view.PageData{Title: "dtsviz", Graph: graphFile}); err != nil {
		s.Logger.Errorf("Render page: %v", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleGraph returns the parsed, radially positioned model of a converted
// graph artifact.
func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	file := r.URL.Query().Get("file")
	if file == "" {
		writeError(w, http.StatusBadRequest, "missing file parameter")
		return
	}

	data, err := s.fetcher.Fetch(r.Context(), file)
	if err != nil {
		writeError(w, http.StatusNotFound, fmt.Sprintf("artifact %q not found", file))
		return
	}

	model := graph.Parse(string(data))
	placed := layout.Radial(model, layout.DefaultCenter)
	writeJSON(w, http.StatusOK, placed)
}

// handleAST resolves a node ID to its syntax tree artifact, lays it out
// hierarchically, and returns the rendered SVG. Resolution failure returns
// 404 with the full list of attempted locations.
func (s *Server) handleAST(w http.ResponseWriter, r *http.Request) {
	nodeID := r.URL.Query().Get("node")
	if nodeID == "" {
		writeError(w, http.StatusBadRequest, "missing node parameter")
		return
	}

	text, err := view.ResolveArtifact(r.Context(), s.fetcher, nodeID)
	if err != nil {
		var rerr *view.ResolutionError
		if errors.As(err, &rerr) {
			writeJSON(w, http.StatusNotFound, map[string]any{
				"error":     rerr.Error(),
				"attempted": rerr.Attempted,
			})
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	model := graph.Parse(text)
	dot := layout.ToDOT(model, layout.DefaultDirective())
	svg, hit, err := s.Renderer.SVG(r.Context(), dot)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("render failed: %v", err))
		return
	}
	if hit {
		s.Logger.Debugf("Render cache hit for node %s", nodeID)
	}
	writeJSON(w, http.StatusOK, map[string]string{"svg": string(svg)})
}

// handleRender renders any artifact in the output directory to SVG,
// delegating layout to the hierarchical engine.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	file := r.URL.Query().Get("file")
	if file == "" {
		writeError(w, http.StatusBadRequest, "missing file parameter")
		return
	}

	data, err := s.fetcher.Fetch(r.Context(), file)
	if err != nil {
		writeError(w, http.StatusNotFound, fmt.Sprintf("artifact %q not found", file))
		return
	}

	model := graph.Parse(string(data))
	dot := layout.ToDOT(model, layout.DefaultDirective())
	svg, _, err := s.Renderer.SVG(r.Context(), dot)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("render failed: %v", err))
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(svg)
}

// defaultGraph picks the initial artifact: the batch's converted graph if
// present, otherwise the first converted artifact in the directory.
func (s *Server) defaultGraph() string {
	if s.DefaultGraph != "" {
		return s.DefaultGraph
	}
	preferred := "deps.converted.dot"
	if _, err := os.Stat(filepath.Join(s.ArtifactDir, preferred)); err == nil {
		return preferred
	}
	entries, err := os.ReadDir(s.ArtifactDir)
	if err != nil {
		return preferred
	}
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".converted.dot") {
			return e.Name()
		}
	}
	return preferred
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
