package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/arborfield/phyloreduce/pkg/hasse"
	"github.com/arborfield/phyloreduce/pkg/rbgraph"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Rankdir sets Graphviz's layout direction (e.g. "TB", "LR"). Empty
	// defaults to "TB".
	Rankdir string
}

func (o Options) rankdir() string {
	if o.Rankdir == "" {
		return "TB"
	}
	return o.Rankdir
}

// GraphDOT renders a red-black graph as Graphviz DOT: species as boxes,
// characters as ellipses (filled when active), edges colored to match
// their [rbgraph.Color].
func GraphDOT(g *rbgraph.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", opts.rankdir())
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontsize=14];\n\n")

	for _, s := range g.SpeciesNames() {
		fmt.Fprintf(&buf, "  %q [shape=box, style=filled, fillcolor=white, label=%q];\n", s, s)
	}
	buf.WriteString("\n")
	for _, c := range g.CharacterNames() {
		fillcolor := "white"
		if g.IsActive(c) {
			fillcolor = "lightpink"
		}
		fmt.Fprintf(&buf, "  %q [shape=ellipse, style=filled, fillcolor=%s, label=%q];\n", c, fillcolor, c)
	}

	buf.WriteString("\n")
	for _, s := range g.SpeciesNames() {
		chars := g.CharactersOf(s)
		for _, c := range sortedKeys(chars) {
			color := "black"
			if chars[c] == rbgraph.Red {
				color = "red"
			}
			fmt.Fprintf(&buf, "  %q -> %q [dir=none, color=%s];\n", s, c, color)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// DiagramDOT renders the Hasse diagram of a maximal reducible graph: each
// live vertex is a box listing its species and characters, edges carry
// their signed-character labels (e.g. "c0+, c1+").
func DiagramDOT(d *hasse.Diagram, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph P {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", opts.rankdir())
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12];\n\n")

	for _, i := range d.Indices() {
		v := d.Vertex(i)
		label := fmt.Sprintf("species: %s\\ncharacters: %s", strings.Join(v.Species, ","), strings.Join(v.Characters, ","))
		fmt.Fprintf(&buf, "  %q [label=%q];\n", nodeID(i), label)
	}

	buf.WriteString("\n")
	for _, i := range d.Indices() {
		for _, e := range d.OutEdges(i) {
			labels := make([]string, len(e.SignedCharacters))
			for j, sc := range e.SignedCharacters {
				labels[j] = sc.String()
			}
			fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", nodeID(e.From), nodeID(e.To), strings.Join(labels, ", "))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(i int) string { return "v" + strconv.Itoa(i) }

func sortedKeys(m map[string]rbgraph.Color) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
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
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
