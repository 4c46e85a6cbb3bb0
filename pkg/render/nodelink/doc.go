// Package nodelink renders red-black graphs and Hasse diagrams as
// traditional node-link diagrams.
//
// # Overview
//
// This package produces directed graph visualizations using Graphviz:
// species and characters (or Hasse vertices) appear as nodes connected by
// colored, labeled edges.
//
//	dot := nodelink.GraphDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// [DiagramDOT] renders the other half of a driver iteration, the Hasse
// diagram of a maximal reducible graph:
//
//	dot := nodelink.DiagramDOT(d, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
