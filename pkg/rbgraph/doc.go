// Package rbgraph implements red-black graphs, the core data structure of
// persistent-phylogeny reduction.
//
// # Overview
//
// A red-black graph is a bipartite graph on a set of species S and a set of
// characters C. Every edge connects a species to a character and is colored
// black (the species lacks the character, or the character hasn't been
// gained yet) or red (the species has gained the character). A character
// incident only on red edges is active; one incident only on black edges is
// inactive. [Graph.AddEdge] takes the color of each edge from its caller and
// does not check it against the character's other edges; a successful
// [Graph.RealizeCharacter] leaves no black edge at a gained character, and
// [Graph.ChangeCharacterType] flips every edge of a character together.
//
// # Basic Usage
//
//	g := rbgraph.New()
//	g.AddSpecies("s0")
//	g.AddCharacter("c0")
//	g.AddEdge("s0", "c0", rbgraph.Black)
//	g.IsInactive("c0") // true
//
// # Realize
//
// [Graph.RealizeCharacter] applies a signed character (gain or lose) and
// returns whether the realization was feasible; [Graph.Realize] applies a
// list of them in order. See [SignedCharacter].
package rbgraph
