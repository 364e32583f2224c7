package render

import (
	"context"
	"strings"
	"testing"

	"github.com/ramran505/depends-tree-sitter-visualizer/pkg/cache"
)

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 12.50 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g></g></svg>`)
	out := string(NormalizeViewBox(in))

	if !strings.Contains(out, `viewBox="0 0 100.00 50.00"`) {
		t.Errorf("viewBox not rebased:\n%s", out)
	}
	if !strings.Contains(out, `width="100" height="50"`) {
		t.Errorf("dimensions wrong:\n%s", out)
	}
	if !strings.Contains(out, "<g></g>") {
		t.Errorf("body lost:\n%s", out)
	}
}

func TestNormalizeViewBoxPassthrough(t *testing.T) {
	for _, in := range []string{"<svg>no viewbox</svg>", "not svg at all"} {
		if got := string(NormalizeViewBox([]byte(in))); got != in {
			t.Errorf("NormalizeViewBox(%q) = %q", in, got)
		}
	}
}

func TestRendererCaches(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRenderer(fc)

	calls := 0
	r.render = func(ctx context.Context, dot string) ([]byte, error) {
		calls++
		return []byte("<svg>" + dot + "</svg>"), nil
	}

	ctx := context.Background()
	dot := `digraph G { "a" -> "b"; }`

	first, hit, err := r.SVG(ctx, dot)
	if err != nil || hit {
		t.Fatalf("first render: hit=%v err=%v", hit, err)
	}
	second, hit, err := r.SVG(ctx, dot)
	if err != nil || !hit {
		t.Fatalf("second render: hit=%v err=%v", hit, err)
	}
	if string(first) != string(second) {
		t.Error("cached render differs")
	}
	if calls != 1 {
		t.Errorf("render called %d times, want 1", calls)
	}
}

func TestRendererNilCache(t *testing.T) {
	r := NewRenderer(nil)
	r.render = func(ctx context.Context, dot string) ([]byte, error) {
		return []byte("x"), nil
	}
	if _, hit, err := r.SVG(context.Background(), "digraph {}"); err != nil || hit {
		t.Errorf("hit=%v err=%v", hit, err)
	}
}
