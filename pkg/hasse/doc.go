// Package hasse builds and analyzes the Hasse diagram of a maximal
// reducible red-black graph, and runs the safe-source analysis used to
// drive a reduction.
//
// # Overview
//
// Each vertex of the diagram groups every species of Gm sharing the same
// set of inactive characters. An edge from u to v, labeled with one or more
// gained characters, exists when v's character set is a strict superset of
// u's and no intermediate vertex explains the difference (the diagram is
// transitively reduced). Species that are already active in Gm don't
// appear in the diagram at all, and vertices left with no species once
// those are stripped out are removed, their in- and out-edges rewired
// around them.
//
// # Safe sources
//
// [Diagram.SafeSources] finds the sources (in-degree 0 vertices) that are
// "safe": realizing every signed character on their out-edges is
// guaranteed not to introduce a red Σ-graph. See [Diagram.SafeSources] for
// the three tests applied.
package hasse
