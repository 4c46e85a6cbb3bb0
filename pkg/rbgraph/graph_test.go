package rbgraph

import (
	"strconv"
	"testing"

	"github.com/arborfield/phyloreduce/pkg/errors"
)

func TestAddSpeciesAndCharacterRejectDuplicates(t *testing.T) {
	g := New()
	if err := g.AddSpecies("s0"); err != nil {
		t.Fatalf("AddSpecies: %v", err)
	}
	if err := g.AddSpecies("s0"); !errors.Is(err, errors.ErrCodeDuplicateVertex) {
		t.Fatalf("expected ErrCodeDuplicateVertex, got %v", err)
	}
	if err := g.AddCharacter("s0"); !errors.Is(err, errors.ErrCodeDuplicateVertex) {
		t.Fatalf("expected ErrCodeDuplicateVertex for cross-kind clash, got %v", err)
	}
}

func TestAddEdgeRejectsUnknownVertices(t *testing.T) {
	g := New()
	_ = g.AddSpecies("s0")
	if _, err := g.AddEdge("s0", "c0", Black); !errors.Is(err, errors.ErrCodeUnknownVertex) {
		t.Fatalf("expected ErrCodeUnknownVertex, got %v", err)
	}
}

func TestAddEdgeIsIdempotentAndPreservesColor(t *testing.T) {
	g := New()
	_ = g.AddSpecies("s0")
	_ = g.AddCharacter("c0")

	added, err := g.AddEdge("s0", "c0", Black)
	if err != nil || !added {
		t.Fatalf("expected first AddEdge to succeed, got added=%v err=%v", added, err)
	}
	added, err = g.AddEdge("s0", "c0", Red)
	if err != nil || added {
		t.Fatalf("expected second AddEdge to report added=false, got added=%v err=%v", added, err)
	}
	color, ok := g.EdgeColor("s0", "c0")
	if !ok || color != Black {
		t.Fatalf("expected edge to remain black, got color=%v ok=%v", color, ok)
	}
}

func TestRemoveVertexDropsIncidentEdges(t *testing.T) {
	g := New()
	_ = g.AddSpecies("s0")
	_ = g.AddCharacter("c0")
	_ = g.AddCharacter("c1")
	_, _ = g.AddEdge("s0", "c0", Black)
	_, _ = g.AddEdge("s0", "c1", Black)

	if err := g.RemoveVertex("c0"); err != nil {
		t.Fatalf("RemoveVertex: %v", err)
	}
	if g.HasVertex("c0") {
		t.Fatal("expected c0 to be gone")
	}
	if _, ok := g.EdgeColor("s0", "c0"); ok {
		t.Fatal("expected s0's edge to c0 to be gone")
	}
	if _, ok := g.EdgeColor("s0", "c1"); !ok {
		t.Fatal("expected s0's edge to c1 to survive")
	}
}

func TestRemoveSingletonsDropsZeroDegreeVertices(t *testing.T) {
	g := New()
	_ = g.AddSpecies("s0")
	_ = g.AddSpecies("s1")
	_ = g.AddCharacter("c0")
	_, _ = g.AddEdge("s0", "c0", Black)

	g.RemoveSingletons()
	if g.HasVertex("s1") {
		t.Fatal("expected singleton s1 to be removed")
	}
	if !g.HasVertex("s0") || !g.HasVertex("c0") {
		t.Fatal("expected s0 and c0 to survive (they're connected)")
	}
}

func TestCopyIsIndependent(t *testing.T) {
	g := New()
	_ = g.AddSpecies("s0")
	_ = g.AddCharacter("c0")
	_, _ = g.AddEdge("s0", "c0", Black)

	cp := g.Copy()
	_ = cp.RemoveVertex("c0")

	if !g.HasVertex("c0") {
		t.Fatal("expected removing a vertex from the copy to leave the original untouched")
	}
}

func TestComponentsReturnsNilWhenConnected(t *testing.T) {
	g := New()
	_ = g.AddSpecies("s0")
	_ = g.AddCharacter("c0")
	_, _ = g.AddEdge("s0", "c0", Black)

	if comps := g.Components(); comps != nil {
		t.Fatalf("expected nil for a connected graph, got %v", comps)
	}
}

func TestComponentsSplitsDisconnectedPieces(t *testing.T) {
	g := New()
	_ = g.AddSpecies("s0")
	_ = g.AddSpecies("s1")
	_ = g.AddCharacter("c0")
	_ = g.AddCharacter("c1")
	_, _ = g.AddEdge("s0", "c0", Black)
	_, _ = g.AddEdge("s1", "c1", Black)

	comps := g.Components()
	if len(comps) != 2 {
		t.Fatalf("expected 2 components, got %d", len(comps))
	}
	for _, c := range comps {
		if c.NumSpecies() != 1 || c.NumCharacters() != 1 {
			t.Fatalf("expected each component to hold 1 species and 1 character, got %d/%d", c.NumSpecies(), c.NumCharacters())
		}
	}

	// Components are independent copies: mutating one never reaches g.
	_ = comps[0].RemoveVertex(comps[0].SpeciesNames()[0])
	if g.NumSpecies() != 2 {
		t.Fatalf("expected g to still have 2 species after mutating a component copy, got %d", g.NumSpecies())
	}
}

func TestSortedNamesOrdersByNumericSuffix(t *testing.T) {
	g := New()
	for i := 0; i < 11; i++ {
		_ = g.AddSpecies("s" + strconv.Itoa(i))
	}
	names := g.SpeciesNames()
	if names[0] != "s0" || names[1] != "s1" || names[10] != "s10" {
		t.Fatalf("expected numeric ordering s0,s1,...,s10, got %v", names)
	}
}
