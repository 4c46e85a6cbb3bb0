package hasse

import (
	"testing"

	"github.com/arborfield/phyloreduce/pkg/rbgraph"
)

func mustGraph(t *testing.T, species, characters []string, edges [][3]string) *rbgraph.Graph {
	t.Helper()
	g := rbgraph.New()
	for _, s := range species {
		if err := g.AddSpecies(s); err != nil {
			t.Fatalf("AddSpecies(%s): %v", s, err)
		}
	}
	for _, c := range characters {
		if err := g.AddCharacter(c); err != nil {
			t.Fatalf("AddCharacter(%s): %v", c, err)
		}
	}
	for _, e := range edges {
		color := rbgraph.Black
		if e[2] == "red" {
			color = rbgraph.Red
		}
		if _, err := g.AddEdge(e[0], e[1], color); err != nil {
			t.Fatalf("AddEdge(%s,%s): %v", e[0], e[1], err)
		}
	}
	return g
}

func vertexByCharacters(d *Diagram, chars ...string) (int, bool) {
	for _, i := range d.Indices() {
		if sameCharacters(d.Vertex(i).Characters, chars) {
			return i, true
		}
	}
	return 0, false
}

// Diamond: s0-c0, s1-{c0,c1}, s2-{c0,c1}, s3-c1, all black. c0's species set
// {s0,s1,s2} and c1's {s1,s2,s3} are incomparable, so both stay maximal and
// the diagram keeps three vertices rather than collapsing to one.
func TestBuildGroupsSpeciesByCharacterSet(t *testing.T) {
	g := mustGraph(t,
		[]string{"s0", "s1", "s2", "s3"}, []string{"c0", "c1"},
		[][3]string{
			{"s0", "c0", "black"},
			{"s1", "c0", "black"}, {"s1", "c1", "black"},
			{"s2", "c0", "black"}, {"s2", "c1", "black"},
			{"s3", "c1", "black"},
		},
	)
	gm := g.MaximalReducibleGraph(true)
	d := Build(g, gm)

	if d.NumVertices() != 3 {
		t.Fatalf("expected 3 vertices, got %d: %+v", d.NumVertices(), d.vertices)
	}

	c0, ok := vertexByCharacters(d, "c0")
	if !ok {
		t.Fatal("expected a {c0} vertex")
	}
	if len(d.Vertex(c0).Species) != 1 || d.Vertex(c0).Species[0] != "s0" {
		t.Fatalf("expected {c0} vertex to hold s0, got %v", d.Vertex(c0).Species)
	}

	both, ok := vertexByCharacters(d, "c0", "c1")
	if !ok {
		t.Fatal("expected a {c0,c1} vertex")
	}
	if len(d.Vertex(both).Species) != 2 {
		t.Fatalf("expected {c0,c1} vertex to hold s1,s2, got %v", d.Vertex(both).Species)
	}
}

// s0-c0, s1-{c0,c1}, s2-c1: c0's species set {s0,s1} and c1's {s1,s2} are
// incomparable, so the diagram keeps both as independent sources below the
// shared {c0,c1} sink.
func TestSourcesHaveNoInEdges(t *testing.T) {
	g := mustGraph(t,
		[]string{"s0", "s1", "s2"}, []string{"c0", "c1"},
		[][3]string{
			{"s0", "c0", "black"},
			{"s1", "c0", "black"}, {"s1", "c1", "black"},
			{"s2", "c1", "black"},
		},
	)
	gm := g.MaximalReducibleGraph(true)
	d := Build(g, gm)

	sources := d.Sources()
	if len(sources) != 2 {
		t.Fatalf("expected exactly 2 sources, got %v", sources)
	}
	for _, v := range sources {
		if d.InDegree(v) != 0 {
			t.Fatalf("expected source %d to have in-degree 0, got %d", v, d.InDegree(v))
		}
	}
}

// A 5-species antichain (c0:{s0,s1,s2}, c1:{s1,s2,s3}, c2:{s2,s3,s4} are
// pairwise incomparable, so all three stay maximal) builds two chains,
// {c0}->{c0,c1} and {c2}->{c1,c2}, both feeding {c0,c1,c2}. The direct
// shortcuts {c0}->{c0,c1,c2} and {c2}->{c0,c1,c2} must be removed since
// each is already reachable through its two-hop chain.
func antichainGraph(t *testing.T) *rbgraph.Graph {
	return mustGraph(t,
		[]string{"s0", "s1", "s2", "s3", "s4"}, []string{"c0", "c1", "c2"},
		[][3]string{
			{"s0", "c0", "black"},
			{"s1", "c0", "black"}, {"s1", "c1", "black"},
			{"s2", "c0", "black"}, {"s2", "c1", "black"}, {"s2", "c2", "black"},
			{"s3", "c1", "black"}, {"s3", "c2", "black"},
			{"s4", "c2", "black"},
		},
	)
}

func TestTransitiveReductionDropsShortcutEdge(t *testing.T) {
	g := antichainGraph(t)
	gm := g.MaximalReducibleGraph(true)
	d := Build(g, gm)

	v0, _ := vertexByCharacters(d, "c0")
	v1, _ := vertexByCharacters(d, "c2")
	v2, _ := vertexByCharacters(d, "c0", "c1")
	v3, _ := vertexByCharacters(d, "c1", "c2")
	v4, _ := vertexByCharacters(d, "c0", "c1", "c2")

	if len(d.OutEdges(v0)) != 1 || d.OutEdges(v0)[0].To != v2 {
		t.Fatalf("expected v0's only out-edge to go to v2, got %+v", d.OutEdges(v0))
	}
	if len(d.OutEdges(v1)) != 1 || d.OutEdges(v1)[0].To != v3 {
		t.Fatalf("expected v1's only out-edge to go to v3, got %+v", d.OutEdges(v1))
	}
	if len(d.OutEdges(v2)) != 1 || d.OutEdges(v2)[0].To != v4 {
		t.Fatalf("expected v2's only out-edge to go to v4, got %+v", d.OutEdges(v2))
	}
	if len(d.OutEdges(v3)) != 1 || d.OutEdges(v3)[0].To != v4 {
		t.Fatalf("expected v3's only out-edge to go to v4, got %+v", d.OutEdges(v3))
	}
}

// Same antichain, but s1 (the sole species of the {c0,c1} vertex) also
// carries a red edge to an active character c3. reduceDiagram strips s1
// from {c0,c1}'s species list, leaving it empty; the vertex is folded away
// and its in-edge ({c0}->{c0,c1}) and out-edge ({c0,c1}->{c0,c1,c2}) must
// merge into a single edge carrying the union of both labels, not overwrite
// one with the other.
func TestReduceDiagramMergesLabelsAcrossRemovedVertex(t *testing.T) {
	g := antichainGraph(t)
	if err := g.AddCharacter("c3"); err != nil {
		t.Fatalf("AddCharacter(c3): %v", err)
	}
	if _, err := g.AddEdge("s1", "c3", rbgraph.Red); err != nil {
		t.Fatalf("AddEdge(s1,c3): %v", err)
	}

	gm := g.MaximalReducibleGraph(true)
	d := Build(g, gm)

	if _, ok := vertexByCharacters(d, "c0", "c1"); ok {
		t.Fatal("expected the {c0,c1} vertex (species s1 only) to be folded away")
	}

	v0, ok := vertexByCharacters(d, "c0")
	if !ok {
		t.Fatal("expected {c0} vertex to survive")
	}
	v4, ok := vertexByCharacters(d, "c0", "c1", "c2")
	if !ok {
		t.Fatal("expected {c0,c1,c2} vertex to survive")
	}

	outs := d.OutEdges(v0)
	if len(outs) != 1 || outs[0].To != v4 {
		t.Fatalf("expected exactly 1 out-edge from {c0} to {c0,c1,c2} after folding, got %+v", outs)
	}
	labels := outs[0].SignedCharacters
	if !hasSignedCharacter(labels, "c1", rbgraph.Gain) {
		t.Fatalf("expected merged edge to carry c1+ from the in-edge, got %v", labels)
	}
	if !hasSignedCharacter(labels, "c2", rbgraph.Gain) {
		t.Fatalf("expected merged edge to carry c2+ from the out-edge, got %v", labels)
	}
}

func hasSignedCharacter(list []rbgraph.SignedCharacter, character string, sign rbgraph.Sign) bool {
	for _, sc := range list {
		if sc.Character == character && sc.Sign == sign {
			return true
		}
	}
	return false
}
