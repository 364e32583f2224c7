// Package render rasterizes DOT graph text to SVG using Graphviz. The
// hierarchical rank layout itself is delegated to the dot engine; this
// package only drives it and normalizes the output for embedding.
package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/ramran505/depends-tree-sitter-visualizer/pkg/cache"
)

// RenderSVG renders a DOT graph to SVG with the dot layout engine.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return NormalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// NormalizeViewBox rewrites the opening svg tag so the viewBox starts at the
// origin with explicit width/height. Graphviz emits offset viewBoxes that
// break fit-to-viewport scaling in the overlay.
func NormalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}

// =============================================================================
// Cached Rendering
// =============================================================================

// DefaultTTL bounds how long rendered artifacts stay cached.
const DefaultTTL = 24 * time.Hour

// renderFunc is swapped out in tests.
type renderFunc func(ctx context.Context, dot string) ([]byte, error)

// Renderer memoizes SVG rendering keyed by a hash of the DOT text.
type Renderer struct {
	cache  cache.Cache
	render renderFunc
}

// NewRenderer creates a renderer backed by c. A nil cache disables
// memoization.
func NewRenderer(c cache.Cache) *Renderer {
	if c == nil {
		c = cache.NewNullCache()
	}
	return &Renderer{cache: c, render: RenderSVG}
}

// SVG renders dot to SVG, serving from cache when the identical DOT text was
// rendered before. Cache failures degrade to a fresh render, never an error.
func (r *Renderer) SVG(ctx context.Context, dot string) ([]byte, bool, error) {
	key := cache.Key("render", []byte(dot))
	if data, ok, err := r.cache.Get(ctx, key); err == nil && ok {
		return data, true, nil
	}

	data, err := r.render(ctx, dot)
	if err != nil {
		return nil, false, err
	}
	_ = r.cache.Set(ctx, key, data, DefaultTTL)
	return data, false, nil
}
