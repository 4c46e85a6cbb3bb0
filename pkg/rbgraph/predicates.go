package rbgraph

// IsActive reports whether character c is incident only on red edges.
// A character with no incident edges is vacuously active; callers
// typically call [Graph.RemoveSingletons] first so this case doesn't arise
// in practice.
func (g *Graph) IsActive(c string) bool {
	cv, ok := g.characters[c]
	if !ok {
		return false
	}
	for _, color := range cv.edges {
		if color == Black {
			return false
		}
	}
	return true
}

// IsInactive reports whether character c is incident only on black edges.
func (g *Graph) IsInactive(c string) bool {
	cv, ok := g.characters[c]
	if !ok {
		return false
	}
	for _, color := range cv.edges {
		if color == Red {
			return false
		}
	}
	return true
}

// IsFree reports whether c is an active character connected to every
// species in the whole graph by a red edge.
func (g *Graph) IsFree(c string) bool {
	cv, ok := g.characters[c]
	if !ok {
		return false
	}
	if !g.IsActive(c) {
		return false
	}
	return len(cv.edges) == g.NumSpecies()
}

// IsUniversal reports whether c is an inactive character connected to every
// species in the whole graph by a black edge.
func (g *Graph) IsUniversal(c string) bool {
	cv, ok := g.characters[c]
	if !ok {
		return false
	}
	if !g.IsInactive(c) {
		return false
	}
	return len(cv.edges) == g.NumSpecies()
}

// IsFreeIn reports whether c is an active character connected by red edges
// to every species of its connected component, as recorded in comp (the
// component each species name belongs to, e.g. from [Graph.ComponentIndex]).
func (g *Graph) IsFreeIn(c string, comp map[string]int) bool {
	cv, ok := g.characters[c]
	if !ok || !g.IsActive(c) {
		return false
	}
	return len(cv.edges) == componentSize(comp, c, cv.edges)
}

// IsUniversalIn reports whether c is an inactive character connected by
// black edges to every species of its connected component.
func (g *Graph) IsUniversalIn(c string, comp map[string]int) bool {
	cv, ok := g.characters[c]
	if !ok || !g.IsInactive(c) {
		return false
	}
	return len(cv.edges) == componentSize(comp, c, cv.edges)
}

func componentSize(comp map[string]int, anyMember string, edges map[string]Color) int {
	// anyMember has at least one neighbor, so its component id can be read
	// off any neighbor rather than from anyMember itself (comp is keyed by
	// species name, and anyMember here is a character).
	var id int
	found := false
	for s := range edges {
		id = comp[s]
		found = true
		break
	}
	if !found {
		return 0
	}
	count := 0
	for _, cid := range comp {
		if cid == id {
			count++
		}
	}
	return count
}

// ChangeCharacterType flips the color of every edge incident to character
// c: active becomes inactive and vice versa.
func (g *Graph) ChangeCharacterType(c string) error {
	cv, ok := g.characters[c]
	if !ok {
		return errUnknownVertex(c)
	}
	for s, color := range cv.edges {
		flipped := Black
		if color == Black {
			flipped = Red
		}
		cv.edges[s] = flipped
		g.species[s].edges[c] = flipped
	}
	return nil
}

// ActiveCharacters returns the names of every active character in the
// graph.
func (g *Graph) ActiveCharacters() []string {
	var out []string
	for c := range g.characters {
		if g.IsActive(c) {
			out = append(out, c)
		}
	}
	return sortedNames(out)
}

// SpeciesActiveCharacters returns the names of the active characters
// adjacent to species s.
func (g *Graph) SpeciesActiveCharacters(s string) []string {
	sv, ok := g.species[s]
	if !ok {
		return nil
	}
	var out []string
	for c, color := range sv.edges {
		if color == Red {
			out = append(out, c)
		}
	}
	return sortedNames(out)
}

// ComponentActiveCharacters returns the names of the active characters
// belonging to the connected component that contains species s.
func (g *Graph) ComponentActiveCharacters(s string) []string {
	if _, ok := g.species[s]; !ok {
		return nil
	}
	comp := g.componentOf(s)
	seen := make(map[string]bool)
	var out []string
	for member := range comp {
		sv, ok := g.species[member]
		if !ok {
			continue
		}
		for c, color := range sv.edges {
			if color == Red && !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return sortedNames(out)
}

// componentOf returns the set of species names reachable from s via any
// path of species-character edges (ignoring color), including s itself.
func (g *Graph) componentOf(s string) map[string]bool {
	species := make(map[string]bool)
	for name, isSpecies := range g.componentMembers(s, true) {
		if isSpecies {
			species[name] = true
		}
	}
	return species
}

// componentSpeciesOf returns the names of every species in the connected
// component containing the named vertex (species or character).
func (g *Graph) componentSpeciesOf(name string, startIsSpecies bool) []string {
	var out []string
	for member, isSpecies := range g.componentMembers(name, startIsSpecies) {
		if isSpecies {
			out = append(out, member)
		}
	}
	return sortedNames(out)
}

// componentMembers returns every vertex reachable from start, including
// start itself, mapped to whether it is a species.
func (g *Graph) componentMembers(start string, startIsSpecies bool) map[string]bool {
	type item struct {
		name      string
		isSpecies bool
	}
	members := make(map[string]bool) // name -> isSpecies
	visited := make(map[string]bool)
	stack := []item{{start, startIsSpecies}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[cur.name] {
			continue
		}
		visited[cur.name] = true
		members[cur.name] = cur.isSpecies
		if cur.isSpecies {
			sv, ok := g.species[cur.name]
			if !ok {
				continue
			}
			for c := range sv.edges {
				if !visited[c] {
					stack = append(stack, item{c, false})
				}
			}
		} else {
			cv, ok := g.characters[cur.name]
			if !ok {
				continue
			}
			for s := range cv.edges {
				if !visited[s] {
					stack = append(stack, item{s, true})
				}
			}
		}
	}
	return members
}
