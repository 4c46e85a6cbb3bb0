package rbgraph

// Sign is the direction of a character realization: gain (the character
// becomes active) or lose (the active character is removed).
type Sign int

const (
	Gain Sign = iota
	Lose
)

func (s Sign) String() string {
	if s == Lose {
		return "-"
	}
	return "+"
}

// SignedCharacter names a character together with the direction it should
// be realized in.
type SignedCharacter struct {
	Character string
	Sign      Sign
}

func (sc SignedCharacter) String() string {
	return sc.Character + sc.Sign.String()
}

// RealizeCharacter applies sc to g in place.
//
// c+ is feasible when c is currently inactive: every species in c's
// connected component that isn't already adjacent to c gains a red edge to
// it, and every black edge already incident on c is removed (c becomes
// active).
//
// c- is feasible when c is currently active and connected, by a red edge,
// to every species of its connected component: every edge incident on c is
// removed (c disappears, having been fully gained by its component).
//
// Any other combination (gaining an already-active character, losing an
// inactive one, or losing an active character not yet connected to its
// whole component) is infeasible. RealizeCharacter never returns an error
// for infeasibility — only for an unknown character name — matching how
// [Graph.Realize] and the reduction driver treat infeasibility as a
// first-class outcome, not a fault.
func (g *Graph) RealizeCharacter(sc SignedCharacter) (applied []SignedCharacter, feasible bool) {
	if _, ok := g.characters[sc.Character]; !ok {
		return nil, false
	}

	switch {
	case sc.Sign == Gain && g.IsInactive(sc.Character):
		for _, s := range g.componentSpeciesOf(sc.Character, false) {
			if _, exists := g.EdgeColor(s, sc.Character); exists {
				_ = g.RemoveEdge(s, sc.Character)
			} else {
				_, _ = g.AddEdge(s, sc.Character, Red)
			}
		}

	case sc.Sign == Lose && g.IsActive(sc.Character):
		for _, s := range g.componentSpeciesOf(sc.Character, false) {
			if _, exists := g.EdgeColor(s, sc.Character); !exists {
				return nil, false
			}
		}
		for s := range g.characters[sc.Character].edges {
			_ = g.RemoveEdge(s, sc.Character)
		}

	default:
		return nil, false
	}

	g.RemoveSingletons()
	return []SignedCharacter{sc}, true
}

// RealizeSpecies realizes every inactive character adjacent to species s as
// a gain, via [Graph.Realize].
func (g *Graph) RealizeSpecies(s string) (applied []SignedCharacter, feasible bool) {
	sv, ok := g.species[s]
	if !ok {
		return nil, false
	}
	var list []SignedCharacter
	for _, c := range sortedNames(keysOf(sv.edges)) {
		if g.IsInactive(c) {
			list = append(list, SignedCharacter{Character: c, Sign: Gain})
		}
	}
	return g.Realize(list)
}

// Realize applies each signed character in list in order, skipping any that
// duplicate one already applied earlier in the same call. It stops at the
// first infeasible realization.
//
// On success, applied holds every signed character actually realized (in
// application order, expanding duplicates only once). On failure, applied
// holds only the (empty) result of the failing [Graph.RealizeCharacter]
// call, not the realizations that succeeded before it; those remain applied
// to g.
func (g *Graph) Realize(list []SignedCharacter) (applied []SignedCharacter, feasible bool) {
	var output []SignedCharacter
	for _, sc := range list {
		if containsSignedCharacter(output, sc) {
			continue
		}
		applied, ok := g.RealizeCharacter(sc)
		if !ok {
			return applied, false
		}
		output = append(output, applied...)
	}
	return output, true
}

func containsSignedCharacter(list []SignedCharacter, sc SignedCharacter) bool {
	for _, x := range list {
		if x == sc {
			return true
		}
	}
	return false
}
