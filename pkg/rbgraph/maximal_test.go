package rbgraph

import "testing"

// c1's species set {s0} is a proper subset of c0's {s0,s1}, so only c0 is
// maximal.
func TestMaximalCharactersDropsSubsets(t *testing.T) {
	g := mustGraph(t,
		[]string{"s0", "s1"}, []string{"c0", "c1"},
		[][3]string{{"s0", "c0", "black"}, {"s1", "c0", "black"}, {"s0", "c1", "black"}},
	)
	cm := g.MaximalCharacters(true)
	if len(cm) != 1 || cm[0] != "c0" {
		t.Fatalf("expected only c0 to be maximal, got %v", cm)
	}
}

// c0's species set {s0,s1} and c1's {s1,s2} are incomparable: both maximal.
func TestMaximalCharactersKeepsIncomparableSets(t *testing.T) {
	g := mustGraph(t,
		[]string{"s0", "s1", "s2"}, []string{"c0", "c1"},
		[][3]string{{"s0", "c0", "black"}, {"s1", "c0", "black"}, {"s1", "c1", "black"}, {"s2", "c1", "black"}},
	)
	cm := g.MaximalCharacters(true)
	if len(cm) != 2 {
		t.Fatalf("expected both c0 and c1 to be maximal, got %v", cm)
	}
}

func TestMaximalCharactersExcludesActiveWhenNotKept(t *testing.T) {
	g := mustGraph(t,
		[]string{"s0"}, []string{"c0", "c1"},
		[][3]string{{"s0", "c0", "black"}, {"s0", "c1", "red"}},
	)
	cm := g.MaximalCharacters(false)
	if len(cm) != 1 || cm[0] != "c0" {
		t.Fatalf("expected only the inactive c0, got %v", cm)
	}
}

func TestMaximalReducibleGraphDropsNonMaximalInactiveCharacters(t *testing.T) {
	g := mustGraph(t,
		[]string{"s0", "s1"}, []string{"c0", "c1"},
		[][3]string{{"s0", "c0", "black"}, {"s1", "c0", "black"}, {"s0", "c1", "black"}},
	)
	gm := g.MaximalReducibleGraph(true)
	if gm.HasVertex("c1") {
		t.Fatal("expected c1 (a subset of c0) to be dropped from Gm")
	}
	if !gm.HasVertex("c0") {
		t.Fatal("expected c0 to survive in Gm")
	}
}

func TestMaximalReducibleGraphKeepsActiveRegardlessOfMaximality(t *testing.T) {
	g := mustGraph(t,
		[]string{"s0", "s1"}, []string{"c0", "c1"},
		[][3]string{{"s0", "c0", "black"}, {"s1", "c0", "black"}, {"s0", "c1", "red"}},
	)
	gm := g.MaximalReducibleGraph(true)
	if !gm.HasVertex("c1") {
		t.Fatal("expected the active c1 to be kept in Gm even though it's a subset of c0")
	}
}

// Two active characters sharing a species (the junction) with each also
// red to a species the other doesn't touch is a red Σ-graph.
func TestHasRedSigmaGraphDetectsJunction(t *testing.T) {
	g := mustGraph(t,
		[]string{"s0", "s1", "s2"}, []string{"c0", "c1"},
		[][3]string{
			{"s0", "c0", "red"}, {"s1", "c0", "red"},
			{"s0", "c1", "red"}, {"s2", "c1", "red"},
		},
	)
	if !g.HasRedSigmaGraph() {
		t.Fatal("expected a red Σ-graph to be detected")
	}
}

func TestHasRedSigmaGraphFalseWhenCharactersShareEverySpecies(t *testing.T) {
	g := mustGraph(t,
		[]string{"s0", "s1"}, []string{"c0", "c1"},
		[][3]string{
			{"s0", "c0", "red"}, {"s1", "c0", "red"},
			{"s0", "c1", "red"}, {"s1", "c1", "red"},
		},
	)
	if g.HasRedSigmaGraph() {
		t.Fatal("expected no red Σ-graph: c0 and c1 are red to exactly the same species")
	}
}

func TestHasRedSigmaGraphFalseWithFewerThanTwoActiveCharacters(t *testing.T) {
	g := mustGraph(t, []string{"s0"}, []string{"c0"}, [][3]string{{"s0", "c0", "red"}})
	if g.HasRedSigmaGraph() {
		t.Fatal("expected no red Σ-graph with only one active character")
	}
}
