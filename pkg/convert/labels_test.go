package convert

import (
	"reflect"
	"testing"
)

func TestResolveLabels(t *testing.T) {
	tests := []struct {
		name string
		text string
		want IDLabelMap
	}{
		{
			name: "Basic",
			text: "// 1:/x/a.py\n// 2:/x/b.py\n1 -> 2;\n",
			want: IDLabelMap{"1": "a.py", "2": "b.py"},
		},
		{
			name: "LastOccurrenceWins",
			text: "// 1:/x/old.py\n// 1:/x/new.py\n",
			want: IDLabelMap{"1": "new.py"},
		},
		{
			name: "IndentedComment",
			text: "  // 3:/deep/nested/util.py\n",
			want: IDLabelMap{"3": "util.py"},
		},
		{
			name: "WindowsPath",
			text: `// 4:C:\proj\src\main.py` + "\n",
			want: IDLabelMap{"4": "main.py"},
		},
		{
			name: "NoMatches",
			text: "7 -> 9;\ndigraph G {}\n",
			want: IDLabelMap{},
		},
		{
			name: "Empty",
			text: "",
			want: IDLabelMap{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveLabels(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ResolveLabels() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveLabelsIdempotent(t *testing.T) {
	text := "// 1:/x/a.py\n// 2:/y/b.py\n1 -> 2;\n"
	first := ResolveLabels(text)
	second := ResolveLabels(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("resolving twice differs: %v vs %v", first, second)
	}
}

func TestLabelFallback(t *testing.T) {
	m := IDLabelMap{"1": "a.py"}
	if got := m.Label("1"); got != "a.py" {
		t.Errorf("Label(1) = %q", got)
	}
	if got := m.Label("9"); got != "9" {
		t.Errorf("Label(9) = %q, want raw id fallback", got)
	}
}

func TestBasename(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"/a/b/main.py", "main.py"},
		{"main.py", "main.py"},
		{`C:\a\b\main.py`, "main.py"},
		{"/a/b/", "b"},
	}
	for _, tt := range tests {
		if got := Basename(tt.in); got != tt.want {
			t.Errorf("Basename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
