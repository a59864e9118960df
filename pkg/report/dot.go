package report

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/stowage-dev/stowage/pkg/observability"
	"github.com/stowage-dev/stowage/pkg/pipeline"
)

// ToDOT converts a pipeline result to Graphviz DOT format. Each inventory
// becomes a box labeled with its occupancy, each audit entry a leaf node
// connected to its inventory: stored stacks solid green, discarded stacks
// dashed red, unresolved requests dashed grey.
func ToDOT(result *pipeline.Result) string {
	var buf bytes.Buffer
	buf.WriteString("digraph stowage {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for i, filled := range result.Inventories {
		inv := filled.Inventory
		invID := fmt.Sprintf("inv%d", i)
		label := fmt.Sprintf("Inventory %d\n%d / %d", i+1, inv.Occupied(), inv.Capacity())
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=lightblue];\n", invID, label)

		for j, entry := range filled.Log {
			nodeID := fmt.Sprintf("%s_s%d", invID, j)
			fmt.Fprintf(&buf, "  %q [%s];\n", nodeID, strings.Join(entryAttrs(entry), ", "))
			fmt.Fprintf(&buf, "  %q -> %q%s;\n", invID, nodeID, entryEdgeAttrs(entry))
		}
		buf.WriteString("\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

func entryAttrs(e pipeline.Entry) []string {
	label := fmt.Sprintf("%s (%d)", e.Name, e.Size)
	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch e.Label {
	case pipeline.LabelStored:
		attrs = append(attrs, "fillcolor=palegreen")
	case pipeline.LabelDiscarded:
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=mistyrose")
	default:
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey", "fontcolor=grey30")
	}
	return attrs
}

func entryEdgeAttrs(e pipeline.Entry) string {
	switch e.Label {
	case pipeline.LabelStored:
		return " [color=darkgreen]"
	case pipeline.LabelDiscarded:
		return " [color=red3, style=dashed]"
	default:
		return " [color=grey, style=dashed]"
	}
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return render(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return render(dot, graphviz.PNG)
}

func render(dot string, format graphviz.Format) (out []byte, err error) {
	ctx := context.Background()
	start := time.Now()
	observability.Render().OnRenderStart(ctx, string(format))
	defer func() {
		observability.Render().OnRenderComplete(ctx, string(format), time.Since(start), err)
	}()

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
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
