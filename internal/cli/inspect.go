package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spf13/cobra"

	"github.com/ramran505/depends-tree-sitter-visualizer/pkg/graph"
	"github.com/ramran505/depends-tree-sitter-visualizer/pkg/view"
)

// inspectCommand creates the inspect command: a terminal browser over a
// converted graph where selecting a node overlays its syntax tree.
func (c *CLI) inspectCommand() *cobra.Command {
	var graphFile string

	cmd := &cobra.Command{
		Use:   "inspect [artifact-dir]",
		Short: "Browse a converted graph and its syntax trees in the terminal",
		Long: `Browse a converted dependency graph in the terminal.

Selecting a node activates its syntax tree overlay, resolved through the
same ordered candidate locations the web viewer uses. Esc dismisses the
overlay, q quits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := c.Config.OutputDir
			if len(args) == 1 {
				dir = args[0]
			}

			path, err := findGraphArtifact(dir, graphFile)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			model := graph.Parse(string(data))
			if model.NodeCount() == 0 {
				return fmt.Errorf("no nodes in %s", path)
			}

			m := newInspectModel(cmd.Context(), model, view.DirFetcher{Root: dir})
			_, err = tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
			if errors.Is(err, tea.ErrProgramKilled) {
				return context.Canceled
			}
			return err
		},
	}

	cmd.Flags().StringVar(&graphFile, "graph", "", "graph artifact to inspect (default: auto-detected)")

	return cmd
}

// findGraphArtifact locates the converted graph inside dir: the named file
// if given, otherwise the first *.converted.dot entry.
func findGraphArtifact(dir, name string) (string, error) {
	if name != "" {
		return filepath.Join(dir, name), nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", dir, err)
	}
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".converted.dot") {
			return filepath.Join(dir, e.Name()), nil
		}
	}
	return "", fmt.Errorf("no converted graph artifact in %s", dir)
}

// overlayDoneMsg signals that an activation's fetch has settled. The
// overlay itself already dropped the result if it was stale.
type overlayDoneMsg struct{}

// inspectModel is the bubbletea model for the node list plus overlay.
type inspectModel struct {
	ctx     context.Context
	nodes   []graph.Node
	fetcher view.Fetcher
	overlay *view.Overlay

	cursor int
	offset int
	height int
}

func newInspectModel(ctx context.Context, m *graph.Model, f view.Fetcher) inspectModel {
	return inspectModel{
		ctx:     ctx,
		nodes:   m.Nodes,
		fetcher: f,
		overlay: view.NewOverlay(),
		height:  15,
	}
}

func (m inspectModel) Init() tea.Cmd {
	return nil
}

func (m inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.overlay.State() != view.StateIdle {
				m.overlay.Dismiss()
				return m, nil
			}
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.nodes)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter":
			return m, m.activate(m.nodes[m.cursor].ID)
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 6
		if m.height < 5 {
			m.height = 5
		}
	case overlayDoneMsg:
		// State already settled inside the overlay; redraw.
	}
	return m, nil
}

// activate starts an overlay load; the fetch runs in the command goroutine
// and stale results are dropped by the overlay's generation check.
func (m inspectModel) activate(nodeID string) tea.Cmd {
	gen := m.overlay.Activate(nodeID)
	return func() tea.Msg {
		text, err := view.ResolveArtifact(m.ctx, m.fetcher, nodeID)
		if err != nil {
			var rerr *view.ResolutionError
			if errors.As(err, &rerr) {
				m.overlay.Fail(gen, nodeID, rerr.Attempted)
			} else {
				m.overlay.Fail(gen, nodeID, nil)
			}
			return overlayDoneMsg{}
		}
		m.overlay.Resolve(gen, text)
		return overlayDoneMsg{}
	}
}

func (m inspectModel) View() string {
	if m.overlay.State() != view.StateIdle {
		return m.overlayView()
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render("Dependency Graph"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ navigate  ⏎ syntax tree  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.nodes) {
		end = len(m.nodes)
	}
	for i := m.offset; i < end; i++ {
		cursor := "  "
		label := StyleValue.Render(m.nodes[i].Label)
		if i == m.cursor {
			cursor = "▸ "
			label = StyleTitle.Render(m.nodes[i].Label)
		}
		fmt.Fprintf(&b, "%s%s\n", cursor, label)
	}
	return b.String()
}

// overlayView renders the activation overlay panel.
func (m inspectModel) overlayView() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(m.overlay.Title()))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("esc dismiss  q quit"))
	b.WriteString("\n\n")

	switch m.overlay.State() {
	case view.StateLoading:
		b.WriteString(StyleDim.Render("Loading…"))
		b.WriteString("\n")
	case view.StateFailed:
		b.WriteString(m.overlay.Failure())
		b.WriteString("\n")
	case view.StateDisplaying:
		model := m.overlay.Model()
		fmt.Fprintf(&b, "%d nodes, %d edges\n\n", model.NodeCount(), model.EdgeCount())
		b.WriteString(m.treeView())
	}
	return b.String()
}

// treeView prints the displayed syntax tree as an indented outline, capped
// to the list height.
func (m inspectModel) treeView() string {
	model := m.overlay.Model()

	children := make(map[string][]string)
	isChild := make(map[string]bool)
	for _, e := range model.Edges {
		children[e.Source] = append(children[e.Source], e.Target)
		isChild[e.Target] = true
	}

	var b strings.Builder
	lines := 0
	var walk func(id string, depth int)
	walk = func(id string, depth int) {
		if lines >= m.height {
			return
		}
		node, _ := model.Node(id)
		fmt.Fprintf(&b, "%s%s\n", strings.Repeat("  ", depth), node.Label)
		lines++
		for _, child := range children[id] {
			walk(child, depth+1)
		}
	}
	for _, n := range model.Nodes {
		if !isChild[n.ID] {
			walk(n.ID, 0)
		}
	}
	if lines >= m.height {
		b.WriteString(StyleDim.Render("…"))
		b.WriteString("\n")
	}
	return b.String()
}
