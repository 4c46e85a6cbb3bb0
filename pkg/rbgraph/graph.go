package rbgraph

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/arborfield/phyloreduce/pkg/errors"
)

// Kind distinguishes the two vertex classes of a red-black graph.
type Kind int

const (
	Species Kind = iota
	Character
)

func (k Kind) String() string {
	if k == Species {
		return "species"
	}
	return "character"
}

// Color labels an edge between a species and a character.
//
// A character incident only on black edges is inactive (the character
// hasn't been gained by any of its species yet); one incident only on red
// edges is active.
type Color int

const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

type speciesVertex struct {
	name  string
	edges map[string]Color // character name -> color
}

type characterVertex struct {
	name      string
	edges     map[string]Color // species name -> color
	preActive bool
}

// Graph is a red-black graph: a bipartite graph on species and characters,
// with edges colored black or red.
//
// The zero value is not usable; construct with [New].
type Graph struct {
	species    map[string]*speciesVertex
	characters map[string]*characterVertex
}

// New returns an empty red-black graph.
func New() *Graph {
	return &Graph{
		species:    make(map[string]*speciesVertex),
		characters: make(map[string]*characterVertex),
	}
}

// AddSpecies adds a species vertex named name. It returns an error if a
// vertex (species or character) with that name already exists.
func (g *Graph) AddSpecies(name string) error {
	if g.HasVertex(name) {
		return errors.New(errors.ErrCodeDuplicateVertex, "vertex already exists: %s", name)
	}
	g.species[name] = &speciesVertex{name: name, edges: make(map[string]Color)}
	return nil
}

// AddCharacter adds a character vertex named name. It returns an error if a
// vertex (species or character) with that name already exists.
func (g *Graph) AddCharacter(name string) error {
	return g.addCharacter(name, false)
}

// AddPreActiveCharacter adds a character vertex marked pre-active. The flag
// is informational ([Graph.IsPreActive]) — callers still choose the color
// of each edge they add to it explicitly, as [pkg/matrix] does when
// building a character's edges red because the matrix file flagged it
// pre-active.
func (g *Graph) AddPreActiveCharacter(name string) error {
	return g.addCharacter(name, true)
}

func (g *Graph) addCharacter(name string, preActive bool) error {
	if g.HasVertex(name) {
		return errors.New(errors.ErrCodeDuplicateVertex, "vertex already exists: %s", name)
	}
	g.characters[name] = &characterVertex{name: name, edges: make(map[string]Color), preActive: preActive}
	return nil
}

// HasVertex reports whether a species or character named name exists.
func (g *Graph) HasVertex(name string) bool {
	if _, ok := g.species[name]; ok {
		return true
	}
	_, ok := g.characters[name]
	return ok
}

// VertexKind returns the kind of the vertex named name.
func (g *Graph) VertexKind(name string) (Kind, bool) {
	if _, ok := g.species[name]; ok {
		return Species, true
	}
	if _, ok := g.characters[name]; ok {
		return Character, true
	}
	return 0, false
}

// RemoveVertex removes the species or character named name along with all
// its incident edges.
func (g *Graph) RemoveVertex(name string) error {
	if sv, ok := g.species[name]; ok {
		for c := range sv.edges {
			delete(g.characters[c].edges, name)
		}
		delete(g.species, name)
		return nil
	}
	if cv, ok := g.characters[name]; ok {
		for s := range cv.edges {
			delete(g.species[s].edges, name)
		}
		delete(g.characters, name)
		return nil
	}
	return errors.New(errors.ErrCodeUnknownVertex, "no such vertex: %s", name)
}

// AddEdge adds an edge between species s and character c with the given
// color. If the edge already exists, added is false and the existing edge
// is left untouched (its color is not changed).
func (g *Graph) AddEdge(s, c string, color Color) (added bool, err error) {
	sv, ok := g.species[s]
	if !ok {
		return false, errors.New(errors.ErrCodeUnknownVertex, "no such species: %s", s)
	}
	cv, ok := g.characters[c]
	if !ok {
		return false, errors.New(errors.ErrCodeUnknownVertex, "no such character: %s", c)
	}
	if _, exists := sv.edges[c]; exists {
		return false, nil
	}
	sv.edges[c] = color
	cv.edges[s] = color
	return true, nil
}

// RemoveEdge removes the edge between species s and character c, if present.
func (g *Graph) RemoveEdge(s, c string) error {
	sv, ok := g.species[s]
	if !ok {
		return errors.New(errors.ErrCodeUnknownVertex, "no such species: %s", s)
	}
	cv, ok := g.characters[c]
	if !ok {
		return errors.New(errors.ErrCodeUnknownVertex, "no such character: %s", c)
	}
	delete(sv.edges, c)
	delete(cv.edges, s)
	return nil
}

// EdgeColor returns the color of the edge between s and c, if it exists.
func (g *Graph) EdgeColor(s, c string) (Color, bool) {
	sv, ok := g.species[s]
	if !ok {
		return 0, false
	}
	color, ok := sv.edges[c]
	return color, ok
}

// NumSpecies returns the number of species vertices.
func (g *Graph) NumSpecies() int { return len(g.species) }

// NumCharacters returns the number of character vertices.
func (g *Graph) NumCharacters() int { return len(g.characters) }

// IsEmpty reports whether the graph has no vertices at all.
func (g *Graph) IsEmpty() bool { return len(g.species) == 0 && len(g.characters) == 0 }

// SpeciesNames returns the names of all species, sorted deterministically
// (see sortedNames).
func (g *Graph) SpeciesNames() []string {
	names := make([]string, 0, len(g.species))
	for n := range g.species {
		names = append(names, n)
	}
	return sortedNames(names)
}

// CharacterNames returns the names of all characters, sorted
// deterministically (see sortedNames).
func (g *Graph) CharacterNames() []string {
	names := make([]string, 0, len(g.characters))
	for n := range g.characters {
		names = append(names, n)
	}
	return sortedNames(names)
}

// CharactersOf returns a copy of the species-to-character adjacency for s:
// character name to edge color.
func (g *Graph) CharactersOf(s string) map[string]Color {
	sv, ok := g.species[s]
	if !ok {
		return nil
	}
	return cloneColorMap(sv.edges)
}

// SpeciesOf returns a copy of the character-to-species adjacency for c:
// species name to edge color.
func (g *Graph) SpeciesOf(c string) map[string]Color {
	cv, ok := g.characters[c]
	if !ok {
		return nil
	}
	return cloneColorMap(cv.edges)
}

// Degree returns the number of edges incident to the named vertex.
func (g *Graph) Degree(name string) int {
	if sv, ok := g.species[name]; ok {
		return len(sv.edges)
	}
	if cv, ok := g.characters[name]; ok {
		return len(cv.edges)
	}
	return 0
}

// IsPreActive reports whether character c was marked pre-active when added.
func (g *Graph) IsPreActive(c string) bool {
	cv, ok := g.characters[c]
	if !ok {
		return false
	}
	return cv.preActive
}

// RemoveSingletons removes every vertex with degree 0.
func (g *Graph) RemoveSingletons() {
	for name, sv := range g.species {
		if len(sv.edges) == 0 {
			delete(g.species, name)
		}
	}
	for name, cv := range g.characters {
		if len(cv.edges) == 0 {
			delete(g.characters, name)
		}
	}
}

// Copy returns a deep copy of g: new vertex and edge maps, so mutating the
// copy never affects g.
func (g *Graph) Copy() *Graph {
	out := New()
	for name, sv := range g.species {
		out.species[name] = &speciesVertex{name: name, edges: cloneColorMap(sv.edges)}
	}
	for name, cv := range g.characters {
		out.characters[name] = &characterVertex{name: name, edges: cloneColorMap(cv.edges), preActive: cv.preActive}
	}
	return out
}

// String renders the graph deterministically: species then characters,
// each sorted by [sortedNames], with each species line listing its
// characters and edge colors in the same order.
func (g *Graph) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "species (%d):\n", len(g.species))
	for _, s := range g.SpeciesNames() {
		sv := g.species[s]
		chars := sortedNames(keysOf(sv.edges))
		parts := make([]string, 0, len(chars))
		for _, c := range chars {
			parts = append(parts, fmt.Sprintf("%s(%s)", c, sv.edges[c]))
		}
		fmt.Fprintf(&b, "  %s: %s\n", s, strings.Join(parts, " "))
	}
	fmt.Fprintf(&b, "characters (%d):\n", len(g.characters))
	for _, c := range g.CharacterNames() {
		state := "inactive"
		if g.IsActive(c) {
			state = "active"
		}
		fmt.Fprintf(&b, "  %s: %s\n", c, state)
	}
	return b.String()
}

func errUnknownVertex(name string) error {
	return errors.New(errors.ErrCodeUnknownVertex, "no such vertex: %s", name)
}

func keysOf(m map[string]Color) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func cloneColorMap(m map[string]Color) map[string]Color {
	out := make(map[string]Color, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

var numericSuffix = regexp.MustCompile(`(\D*)(\d+)$`)

// sortedNames orders names by their trailing numeric suffix when every name
// shares it (so "s0", "s1", ..., "s10" sort numerically, not lexically),
// falling back to a plain lexical sort otherwise. This mirrors how the
// matrix reader names species and characters (s0, s1, ... and c0, c1, ...).
func sortedNames(names []string) []string {
	type entry struct {
		name   string
		prefix string
		suffix int
		ok     bool
	}
	entries := make([]entry, len(names))
	allNumeric := true
	for i, n := range names {
		m := numericSuffix.FindStringSubmatch(n)
		if m == nil {
			allNumeric = false
			entries[i] = entry{name: n}
			continue
		}
		num, err := strconv.Atoi(m[2])
		if err != nil {
			allNumeric = false
			entries[i] = entry{name: n}
			continue
		}
		entries[i] = entry{name: n, prefix: m[1], suffix: num, ok: true}
	}
	if allNumeric {
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].prefix != entries[j].prefix {
				return entries[i].prefix < entries[j].prefix
			}
			return entries[i].suffix < entries[j].suffix
		})
	} else {
		sort.Slice(entries, func(i, j int) bool { return entries[i].name < entries[j].name })
	}
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.name
	}
	return out
}
