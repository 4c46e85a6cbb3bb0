package rbgraph

// MaximalCharacters returns the maximal characters of g: characters c such
// that no other character c' has S(c) a proper subset of S(c'), where S(c)
// is the set of species adjacent to c.
//
// When two characters have exactly the same species set, only the
// first-encountered one (in [Graph.CharacterNames] order) is kept, since
// either is an equally valid representative for reduction purposes.
//
// When keepActive is false, active characters are never candidates: they
// are dropped from consideration entirely, matching how
// [Graph.MaximalReducibleGraph] is meant to be used (it only wants maximal
// inactive characters unless told otherwise).
func (g *Graph) MaximalCharacters(keepActive bool) []string {
	var cm []string
	for _, c := range g.CharacterNames() {
		if !keepActive && g.IsActive(c) {
			continue
		}
		sc := g.SpeciesOf(c)

		if len(cm) == 0 {
			cm = append(cm, c)
			continue
		}

		subsetOfAny := false
		for _, m := range cm {
			if isSubsetOrEqual(sc, g.SpeciesOf(m)) {
				subsetOfAny = true
				break
			}
		}
		if subsetOfAny {
			continue
		}

		next := make([]string, 0, len(cm)+1)
		for _, m := range cm {
			sm := g.SpeciesOf(m)
			if isSubsetOrEqual(sm, sc) && !setsEqual(sm, sc) {
				continue // m is a proper subset of c: drop m
			}
			next = append(next, m)
		}
		next = append(next, c)
		cm = next
	}
	return cm
}

func isSubsetOrEqual(a, b map[string]Color) bool {
	if len(a) > len(b) {
		return false
	}
	for s := range a {
		if _, ok := b[s]; !ok {
			return false
		}
	}
	return true
}

func setsEqual(a, b map[string]Color) bool {
	return len(a) == len(b) && isSubsetOrEqual(a, b)
}

// MaximalReducibleGraph builds the maximal reducible graph Gm of g: the
// subgraph induced by the maximal characters of g, plus (when keepActive is
// true) every active character of g, with singleton vertices removed
// afterward.
func (g *Graph) MaximalReducibleGraph(keepActive bool) *Graph {
	gm := g.Copy()
	cm := make(map[string]bool)
	for _, c := range g.MaximalCharacters(keepActive) {
		cm[c] = true
	}

	for _, c := range gm.CharacterNames() {
		if keepActive && gm.IsActive(c) {
			continue
		}
		if !cm[c] {
			_ = gm.RemoveVertex(c)
		}
	}
	gm.RemoveSingletons()
	return gm
}

// HasRedSigmaGraph reports whether g contains a red Σ-graph: two active
// characters connected through a shared species (the junction) with each
// also connected, by a red edge, to a species not shared with the other.
// A graph containing one cannot be reduced to the empty graph.
func (g *Graph) HasRedSigmaGraph() bool {
	actives := g.ActiveCharacters()
	if len(actives) < 2 {
		return false
	}
	for i := 0; i < len(actives); i++ {
		for j := i + 1; j < len(actives); j++ {
			if g.hasRedSigmaPath(actives[i], actives[j]) {
				return true
			}
		}
	}
	return false
}

func (g *Graph) hasRedSigmaPath(c0, c1 string) bool {
	junction := ""
	halfSigma := false

	for _, s := range sortedNames(keysOf(g.SpeciesOf(c0))) {
		if g.SpeciesOf(c0)[s] != Red {
			continue
		}
		colorC1, existsC1 := g.EdgeColor(s, c1)

		if junction == "" && existsC1 && colorC1 == Red {
			junction = s
			continue
		}
		if existsC1 {
			continue
		}
		halfSigma = true
		if junction != "" {
			break
		}
	}

	if !halfSigma || junction == "" {
		return false
	}

	for _, s := range sortedNames(keysOf(g.SpeciesOf(c1))) {
		if g.SpeciesOf(c1)[s] != Red || s == junction {
			continue
		}
		_, existsC0 := g.EdgeColor(s, c0)
		if existsC0 {
			continue
		}
		return true
	}
	return false
}
