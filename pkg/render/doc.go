// Package render provides Graphviz DOT/SVG export of red-black graphs and
// their Hasse diagrams.
//
// # Overview
//
// This is a debugging and documentation aid, not part of the reduction
// engine proper: the node-link diagrams in [nodelink] let a caller inspect
// the graph a matrix file produced, or the maximal reducible graph and
// Hasse diagram a driver iteration derived from it, without instrumenting
// the engine itself.
//
//	dot := nodelink.GraphDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// [nodelink]: github.com/arborfield/phyloreduce/pkg/render/nodelink
package render
