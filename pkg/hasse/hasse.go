package hasse

import (
	"regexp"
	"sort"
	"strconv"

	"github.com/arborfield/phyloreduce/pkg/rbgraph"
)

// Vertex groups every species of Gm that shares the same set of inactive
// characters.
type Vertex struct {
	Species    []string
	Characters []string
}

// Diagram is the Hasse diagram of a maximal reducible graph Gm, derived
// from the original graph G.
type Diagram struct {
	vertices []Vertex
	removed  []bool
	out      []map[int][]rbgraph.SignedCharacter
	in       []map[int][]rbgraph.SignedCharacter

	G  *rbgraph.Graph
	Gm *rbgraph.Graph
}

// NumVertices returns the number of live (non-removed) vertices.
func (d *Diagram) NumVertices() int {
	n := 0
	for _, r := range d.removed {
		if !r {
			n++
		}
	}
	return n
}

// Vertex returns the vertex at index i. i remains stable across
// reduceDiagram and is valid as long as !d.IsRemoved(i).
func (d *Diagram) Vertex(i int) Vertex { return d.vertices[i] }

// IsRemoved reports whether vertex i was removed during diagram
// construction (folded away because it had no remaining species).
func (d *Diagram) IsRemoved(i int) bool { return d.removed[i] }

// Indices returns the indices of every live vertex, in ascending order.
func (d *Diagram) Indices() []int {
	out := make([]int, 0, d.NumVertices())
	for i, r := range d.removed {
		if !r {
			out = append(out, i)
		}
	}
	return out
}

// Edge is a labeled edge of the diagram.
type Edge struct {
	From, To         int
	SignedCharacters []rbgraph.SignedCharacter
}

// OutEdges returns the out-edges of vertex i.
func (d *Diagram) OutEdges(i int) []Edge {
	return edgesFrom(i, d.out[i])
}

// InEdges returns the in-edges of vertex i.
func (d *Diagram) InEdges(i int) []Edge {
	var out []Edge
	for from, labels := range d.in[i] {
		out = append(out, Edge{From: from, To: i, SignedCharacters: labels})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].From < out[b].From })
	return out
}

func edgesFrom(from int, m map[int][]rbgraph.SignedCharacter) []Edge {
	var out []Edge
	for to, labels := range m {
		out = append(out, Edge{From: from, To: to, SignedCharacters: labels})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].To < out[b].To })
	return out
}

// InDegree and OutDegree count live in/out edges of vertex i.
func (d *Diagram) InDegree(i int) int  { return len(d.in[i]) }
func (d *Diagram) OutDegree(i int) int { return len(d.out[i]) }

// Sources returns the indices of every vertex with in-degree 0.
func (d *Diagram) Sources() []int {
	var out []int
	for _, i := range d.Indices() {
		if d.InDegree(i) == 0 {
			out = append(out, i)
		}
	}
	return out
}

// Build constructs the Hasse diagram of gm, the maximal reducible graph
// derived from g.
func Build(g, gm *rbgraph.Graph) *Diagram {
	d := &Diagram{G: g, Gm: gm}

	type speciesChars struct {
		species string
		chars   []string // inactive characters adjacent to species, unsorted
	}

	var groups []speciesChars
	for _, s := range gm.SpeciesNames() {
		var chars []string
		for c, color := range gm.CharactersOf(s) {
			if color == rbgraph.Black {
				chars = append(chars, c)
			}
		}
		if len(chars) == 0 {
			continue
		}
		groups = append(groups, speciesChars{species: s, chars: chars})
	}

	sort.SliceStable(groups, func(i, j int) bool { return len(groups[i].chars) < len(groups[j].chars) })

	d.out = nil
	d.in = nil

	for _, grp := range groups {
		lcv := sortCharacterNames(grp.chars)

		matched := -1
		for i, v := range d.vertices {
			if d.removed[i] {
				continue
			}
			if sameCharacters(v.Characters, lcv) {
				matched = i
				break
			}
		}
		if matched >= 0 {
			d.vertices[matched].Species = append(d.vertices[matched].Species, grp.species)
			continue
		}

		newIdx := len(d.vertices)
		d.vertices = append(d.vertices, Vertex{Species: []string{grp.species}, Characters: lcv})
		d.removed = append(d.removed, false)
		d.out = append(d.out, map[int][]rbgraph.SignedCharacter{})
		d.in = append(d.in, map[int][]rbgraph.SignedCharacter{})

		for i, v := range d.vertices[:newIdx] {
			if d.removed[i] {
				continue
			}
			if !isSubset(v.Characters, lcv) {
				continue
			}
			var gained []rbgraph.SignedCharacter
			for _, c := range lcv {
				if !containsString(v.Characters, c) {
					gained = append(gained, rbgraph.SignedCharacter{Character: c, Sign: rbgraph.Gain})
				}
			}
			if len(gained) > 0 {
				d.addEdge(i, newIdx, gained)
			}
		}
	}

	d.transitiveReduce()

	for i := range d.vertices {
		d.vertices[i].Species = sortCharacterNames(d.vertices[i].Species)
	}

	d.reduceDiagram()

	return d
}

func (d *Diagram) addEdge(from, to int, labels []rbgraph.SignedCharacter) {
	d.out[from][to] = append(d.out[from][to], labels...)
	d.in[to][from] = append(d.in[to][from], labels...)
}

func (d *Diagram) removeEdge(from, to int) {
	delete(d.out[from], to)
	delete(d.in[to], from)
}

// transitiveReduce removes every direct edge source->target for which a
// path source->u->target already exists through some internal vertex u
// (one with both in- and out-edges).
func (d *Diagram) transitiveReduce() {
	for u := range d.vertices {
		if d.InDegree(u) == 0 || d.OutDegree(u) == 0 {
			continue
		}
		for from := range d.in[u] {
			for to := range d.out[u] {
				if _, exists := d.out[from][to]; exists {
					d.removeEdge(from, to)
				}
			}
		}
	}
}

// reduceDiagram strips every active species of gm from every vertex's
// species list, then removes (and rewires around) every vertex left with
// no species. When a removed vertex has both in- and out-edges, the edges
// it sat between are merged by unioning their signed-character labels
// rather than one overwriting the other.
func (d *Diagram) reduceDiagram() {
	active := make(map[string]bool)
	for _, s := range d.Gm.SpeciesNames() {
		for _, color := range d.Gm.CharactersOf(s) {
			if color == rbgraph.Red {
				active[s] = true
				break
			}
		}
	}
	if len(active) == 0 {
		return
	}

	for i := range d.vertices {
		if d.removed[i] {
			continue
		}
		d.vertices[i].Species = removeStrings(d.vertices[i].Species, active)
	}

	var toRemove []int
	for i := range d.vertices {
		if !d.removed[i] && len(d.vertices[i].Species) == 0 {
			toRemove = append(toRemove, i)
		}
	}
	for _, v := range toRemove {
		d.removeVertex(v)
	}
}

func (d *Diagram) removeVertex(v int) {
	if d.removed[v] {
		return
	}
	for from, inLabels := range d.in[v] {
		for to, outLabels := range d.out[v] {
			merged := unionSignedCharacters(d.out[from][to], append(append([]rbgraph.SignedCharacter{}, inLabels...), outLabels...))
			d.out[from][to] = merged
			d.in[to][from] = merged
		}
	}
	for from := range d.in[v] {
		delete(d.out[from], v)
	}
	for to := range d.out[v] {
		delete(d.in[to], v)
	}
	d.in[v] = map[int][]rbgraph.SignedCharacter{}
	d.out[v] = map[int][]rbgraph.SignedCharacter{}
	d.removed[v] = true
}

func unionSignedCharacters(lists ...[]rbgraph.SignedCharacter) []rbgraph.SignedCharacter {
	seen := make(map[rbgraph.SignedCharacter]bool)
	var out []rbgraph.SignedCharacter
	for _, list := range lists {
		for _, sc := range list {
			if !seen[sc] {
				seen[sc] = true
				out = append(out, sc)
			}
		}
	}
	return out
}

func removeStrings(list []string, remove map[string]bool) []string {
	var out []string
	for _, s := range list {
		if !remove[s] {
			out = append(out, s)
		}
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

func isSubset(a, b []string) bool {
	for _, s := range a {
		if !containsString(b, s) {
			return false
		}
	}
	return true
}

func sameCharacters(a, b []string) bool {
	return len(a) == len(b) && isSubset(a, b)
}

var numericSuffix = regexp.MustCompile(`(\D*)(\d+)$`)

// sortCharacterNames sorts names by trailing numeric suffix when every name
// carries one (the matrix reader's s0, s1, ..., c0, c1, ... convention),
// falling back to a lexical sort otherwise.
func sortCharacterNames(names []string) []string {
	out := append([]string{}, names...)
	allNumeric := true
	nums := make(map[string]int, len(out))
	prefixes := make(map[string]string, len(out))
	for _, n := range out {
		m := numericSuffix.FindStringSubmatch(n)
		if m == nil {
			allNumeric = false
			continue
		}
		v, err := strconv.Atoi(m[2])
		if err != nil {
			allNumeric = false
			continue
		}
		nums[n] = v
		prefixes[n] = m[1]
	}
	if allNumeric {
		sort.Slice(out, func(i, j int) bool {
			if prefixes[out[i]] != prefixes[out[j]] {
				return prefixes[out[i]] < prefixes[out[j]]
			}
			return nums[out[i]] < nums[out[j]]
		})
	} else {
		sort.Strings(out)
	}
	return out
}
