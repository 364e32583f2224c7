package view

import (
	"html/template"
	"io"
)

// PageData parameterizes the viewer page.
type PageData struct {
	Title string // page title
	Graph string // initial graph artifact name, from the ?graph= query
}

// WritePage renders the interactive viewer page. The page's script mirrors
// the Overlay state machine: activation counter, ordered candidate
// resolution via the /api/ast endpoint, backdrop-only dismissal.
func WritePage(w io.Writer, data PageData) error {
	return pageTmpl.Execute(w, data)
}

var pageTmpl = template.Must(template.New("viewer").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <style>
    * { margin: 0; }
    #network { width: 100vw; height: 100vh; }
    #overlay {
      display: none; position: fixed; inset: 0;
      background: rgba(0, 0, 0, 0.5); z-index: 10;
    }
    #overlay.visible { display: flex; align-items: center; justify-content: center; }
    #overlay-content {
      background: white; border-radius: 6px; padding: 16px;
      max-width: 85vw; max-height: 85vh; overflow: auto;
    }
    #overlay-content svg { max-width: 80vw; height: auto; }
    #overlay-title { font: bold 14px sans-serif; margin-bottom: 8px; }
    #overlay-error { color: #a33; font: 13px monospace; white-space: pre-wrap; }
  </style>
  <script src="https://unpkg.com/vis-network/standalone/umd/vis-network.min.js"></script>
</head>
<body>
  <div id="network"></div>
  <div id="overlay">
    <div id="overlay-content">
      <div id="overlay-title"></div>
      <div id="overlay-body"></div>
    </div>
  </div>
  <script>
    const graphFile = {{.Graph}};
    const container = document.getElementById("network");
    const overlay = document.getElementById("overlay");
    const overlayTitle = document.getElementById("overlay-title");
    const overlayBody = document.getElementById("overlay-body");

    // Activation generation counter: a late response for a superseded
    // activation must not clobber the overlay.
    let activation = 0;

    function dismiss() {
      overlay.classList.remove("visible");
      overlayTitle.textContent = "";
      overlayBody.innerHTML = "";
    }
    overlay.addEventListener("click", dismiss);
    // Clicks inside the content region must not bubble to the dismiss handler.
    document.getElementById("overlay-content")
      .addEventListener("click", (e) => e.stopPropagation());

    async function activate(nodeId) {
      const gen = ++activation;
      overlayTitle.textContent = nodeId;
      overlayBody.textContent = "Loading…";
      overlay.classList.add("visible");

      try {
        const resp = await fetch("/api/ast?node=" + encodeURIComponent(nodeId));
        const payload = await resp.json();
        if (gen !== activation) return; // superseded
        if (!resp.ok) {
          overlayBody.innerHTML = "";
          const err = document.createElement("div");
          err.id = "overlay-error";
          err.textContent = payload.error;
          overlayBody.appendChild(err);
          return;
        }
        overlayBody.innerHTML = payload.svg;
      } catch (err) {
        if (gen !== activation) return;
        overlayBody.textContent = "" + err;
      }
    }

    fetch("/api/graph?file=" + encodeURIComponent(graphFile))
      .then((r) => r.json())
      .then((model) => {
        const nodes = model.nodes.map((n) => ({
          id: n.id, label: n.label, x: n.x, y: n.y, shape: "box",
        }));
        const edges = model.edges.map((e) => ({
          from: e.source, to: e.target, arrows: "to",
        }));
        const network = new vis.Network(container, {
          nodes: new vis.DataSet(nodes),
          edges: new vis.DataSet(edges),
        }, {
          physics: false,
          interaction: { hover: true },
        });
        network.fit();
        network.on("click", (params) => {
          if (params.nodes.length === 1) activate(params.nodes[0]);
        });
      });
  </script>
</body>
</html>
`))
