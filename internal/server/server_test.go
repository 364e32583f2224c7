package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramran505/depends-tree-sitter-visualizer/pkg/view"
)

const graphArtifact = `digraph deps {
"main.py" -> "util/helpers.py";
"main.py" -> "config.py";
}`

const astArtifact = `digraph ast {
  n0 [label="module"];
  n1 [label="identifier"];
  n0 -> n1;
}`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "deps.converted.dot"), []byte(graphArtifact), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "ast", "util"), 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "ast", "util", "helpers.py.ast.dot"), []byte(astArtifact), 0644))
	return New(dir, nil, log.New(io.Discard))
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealthz(t *testing.T) {
	rec := get(t, newTestServer(t).Router(), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}

func TestIndexDefaultsGraph(t *testing.T) {
	rec := get(t, newTestServer(t).Router(), "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "deps.converted.dot")
	assert.Contains(t, rec.Body.String(), "vis-network")
}

func TestGraphEndpointPositionsNodes(t *testing.T) {
	rec := get(t, newTestServer(t).Router(), "/api/graph?file=deps.converted.dot")
	require.Equal(t, http.StatusOK, rec.Code)

	var model struct {
		Nodes []struct {
			ID    string  `json:"id"`
			Label string  `json:"label"`
			X     float64 `json:"x"`
			Y     float64 `json:"y"`
		} `json:"nodes"`
		Edges []struct {
			Source string `json:"source"`
			Target string `json:"target"`
		} `json:"edges"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &model))

	require.Len(t, model.Nodes, 3)
	require.Len(t, model.Edges, 2)
	// First-appearance order: the source of the first edge comes first and
	// sits at angle zero, right of center.
	assert.Equal(t, "main.py", model.Nodes[0].ID)
	assert.Greater(t, model.Nodes[0].X, 400.0)
	assert.InDelta(t, 300.0, model.Nodes[0].Y, 0.001)
}

func TestGraphEndpointErrors(t *testing.T) {
	router := newTestServer(t).Router()
	assert.Equal(t, http.StatusBadRequest, get(t, router, "/api/graph").Code)
	assert.Equal(t, http.StatusNotFound, get(t, router, "/api/graph?file=nope.dot").Code)
}

func TestASTEndpointNotFoundListsAttempts(t *testing.T) {
	rec := get(t, newTestServer(t).Router(), "/api/ast?node=gone.py")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var payload struct {
		Error     string   `json:"error"`
		Attempted []string `json:"attempted"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, view.CandidateLocations("gone.py"), payload.Attempted)
	assert.Contains(t, payload.Error, `"gone.py"`)
}

func TestASTEndpointRendersResolvedTree(t *testing.T) {
	rec := get(t, newTestServer(t).Router(), "/api/ast?node=util/helpers.py")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var payload struct {
		SVG string `json:"svg"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Contains(t, payload.SVG, "<svg")
	assert.Contains(t, payload.SVG, "module")
}

func TestArtifactFileServer(t *testing.T) {
	rec := get(t, newTestServer(t).Router(), "/artifacts/deps.converted.dot")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, graphArtifact, strings.TrimRight(rec.Body.String(), "\n"))
}

func TestRequestIDHeader(t *testing.T) {
	rec := get(t, newTestServer(t).Router(), "/healthz")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	// A caller-supplied ID is echoed back.
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec = httptest.NewRecorder()
	newTestServer(t).Router().ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}
