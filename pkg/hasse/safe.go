package hasse

import "github.com/arborfield/phyloreduce/pkg/rbgraph"

// SafeSources returns the vertices of d that are safe to realize next: every
// signed character labeling their out-edges can be applied to Gm without
// ever producing a red Σ-graph.
//
// Every source-to-sink chain out of each source is tried, in ascending
// vertex-index order among children at every branch, until one passes
// [Diagram.safeChain]; sources with a passing chain and whose standalone
// realization ([Diagram.realizeSource]) is feasible are then split by
// [Diagram.safeSourceTest1]. Sources passing test 1 are returned directly;
// when none do, the remaining candidates are narrowed by
// [Diagram.safeSourceTest2] and, failing that, [Diagram.safeSourceTest3].
func (d *Diagram) SafeSources() []int {
	var test1, candidates []int

	for _, v := range d.Sources() {
		if !d.safeChain(v) {
			continue
		}
		if !d.realizeSource(v) {
			continue
		}
		if d.safeSourceTest1(v) {
			test1 = append(test1, v)
			continue
		}
		candidates = append(candidates, v)
	}

	if len(test1) > 0 {
		return test1
	}
	if len(candidates) == 1 {
		return candidates
	}
	if len(candidates) > 1 {
		if out := d.safeSourceTest2(candidates); len(out) > 0 {
			return out
		}
		return d.safeSourceTest3(candidates)
	}
	return nil
}

// safeChain reports whether at least one source-to-sink chain out of source
// passes the chain test: every branch is tried, in ascending
// target-index order at each vertex, and the first chain whose test passes
// makes the source safe. A source gives up only once every chain to every
// sink it can reach has failed, matching how the DFS invokes the chain test
// on each chain-closing event rather than on a single representative path.
func (d *Diagram) safeChain(source int) bool {
	return d.tryChains(source, source, nil)
}

// tryChains extends chain by walking out-edges from v, testing the
// completed chain at every sink reached, and backtracking to the next
// sibling branch on failure.
func (d *Diagram) tryChains(source, v int, chain []Edge) bool {
	outs := d.OutEdges(v)
	if len(outs) == 0 {
		return d.testChain(source, chain)
	}
	for _, e := range outs {
		if d.tryChains(source, e.To, append(chain, e)) {
			return true
		}
	}
	return false
}

// testChain builds the list of signed characters gained along chain,
// drops any already active in Gm, and checks that realizing the rest on a
// copy of Gm is feasible and doesn't induce a red Σ-graph. An empty chain
// (source is also a sink) is trivially safe.
func (d *Diagram) testChain(source int, chain []Edge) bool {
	if len(chain) == 0 {
		return true
	}

	sinkChars := d.vertices[chain[len(chain)-1].To].Characters

	var lsc []rbgraph.SignedCharacter
	for _, c := range d.vertices[source].Characters {
		lsc = append(lsc, rbgraph.SignedCharacter{Character: c, Sign: rbgraph.Gain})
	}

	for _, e := range chain {
		for _, sc := range e.SignedCharacters {
			if !containsString(sinkChars, sc.Character) {
				break
			}
			lsc = removeSignedCharacter(lsc, sc)
			lsc = append(lsc, sc)
		}
	}

	var filtered []rbgraph.SignedCharacter
	for _, sc := range lsc {
		if !d.Gm.IsActive(sc.Character) {
			filtered = append(filtered, sc)
		}
	}

	gmTest := d.Gm.Copy()
	if _, feasible := gmTest.Realize(filtered); !feasible {
		return false
	}
	return !gmTest.HasRedSigmaGraph()
}

// safeSourceTest1 reports whether source has a species connected, in Gm,
// only to inactive characters.
func (d *Diagram) safeSourceTest1(source int) bool {
	for _, species := range d.vertices[source].Species {
		if !d.speciesHasActiveNeighbor(species) {
			return true
		}
	}
	return false
}

func (d *Diagram) speciesHasActiveNeighbor(species string) bool {
	for _, color := range d.Gm.CharactersOf(species) {
		if color == rbgraph.Red {
			return true
		}
	}
	return false
}

// safeSourceTest2 narrows candidates to those with a species, outside the
// source's own species set, that is adjacent to exactly the source's
// characters plus at least one other maximal character of Gm, and to no
// active character.
func (d *Diagram) safeSourceTest2(candidates []int) []int {
	gmChars := d.Gm.CharacterNames()

	var output []int
	for _, source := range candidates {
		sourceSpecies := d.vertices[source].Species
		sourceChars := d.vertices[source].Characters

		qualifies := false
		for _, species := range d.Gm.SpeciesNames() {
			if containsString(sourceSpecies, species) {
				continue
			}

			var maximalC []string
			countMaximal := 0
			active := false

			for c, color := range d.Gm.CharactersOf(species) {
				if color == rbgraph.Red {
					active = true
					break
				}
				if containsString(sourceChars, c) {
					countMaximal++
				} else if containsString(gmChars, c) {
					maximalC = append(maximalC, c)
				}
			}

			if active || countMaximal < len(sourceChars) || len(maximalC) == 0 {
				continue
			}

			qualifies = true
			break
		}

		if qualifies {
			output = append(output, source)
		}
	}
	return output
}

// safeSourceTest3 requires every candidate's species to be adjacent to at
// least one active character in Gm, then keeps the candidates whose
// smallest per-species active-character count is the overall minimum across
// all candidates, computed as an explicit reduction rather than an
// order-sensitive running assignment.
func (d *Diagram) safeSourceTest3(candidates []int) []int {
	activeCount := make(map[int]int, len(candidates))

	for _, source := range candidates {
		min := -1
		for _, species := range d.vertices[source].Species {
			count := 0
			for _, color := range d.Gm.CharactersOf(species) {
				if color == rbgraph.Red {
					count++
				}
			}
			if count == 0 {
				return nil
			}
			if min == -1 || count < min {
				min = count
			}
		}
		activeCount[source] = min
	}

	minActive := -1
	for _, c := range activeCount {
		if minActive == -1 || c < minActive {
			minActive = c
		}
	}

	var output []int
	for _, source := range candidates {
		if activeCount[source] == minActive {
			output = append(output, source)
		}
	}
	return output
}

// realizeSource tests whether source is feasible to realize on its own: the
// component's active characters are borrowed onto every species of source as
// black edges, source's still-inactive characters are gained on a copy of
// Gm, and the result must be feasible and free of a red Σ-graph.
func (d *Diagram) realizeSource(source int) bool {
	species := d.vertices[source].Species
	if len(species) == 0 {
		return false
	}

	gmTest := d.Gm.Copy()

	acc := gmTest.ComponentActiveCharacters(species[0])
	for _, s := range species {
		for _, ac := range acc {
			_, _ = gmTest.AddEdge(s, ac, rbgraph.Black)
		}
	}

	var lsc []rbgraph.SignedCharacter
	for _, c := range d.vertices[source].Characters {
		if gmTest.IsInactive(c) {
			lsc = append(lsc, rbgraph.SignedCharacter{Character: c, Sign: rbgraph.Gain})
		}
	}

	if _, feasible := gmTest.Realize(lsc); !feasible {
		return false
	}
	return !gmTest.HasRedSigmaGraph()
}

func removeSignedCharacter(list []rbgraph.SignedCharacter, sc rbgraph.SignedCharacter) []rbgraph.SignedCharacter {
	for i, x := range list {
		if x == sc {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
