package reduce

import (
	"context"

	"github.com/arborfield/phyloreduce/pkg/errors"
	"github.com/arborfield/phyloreduce/pkg/hasse"
	"github.com/arborfield/phyloreduce/pkg/rbgraph"
)

// errNoReduction, an error with code [errors.ErrCodeNoReduction], is
// returned when no safe source exists for a (sub)graph that isn't already
// empty.
var errNoReduction = errors.New(errors.ErrCodeNoReduction, "no safe source found")

// Reduce realizes g down to the empty graph, one safe source at a time, and
// returns the signed characters realized along the way, in application
// order. g is mutated in place except under [Exhaustive] mode, where each
// candidate source is tried on its own copy first. When g splits into
// several connected components, each component is reduced on its own copy
// and g is left as it was at the split.
func Reduce(ctx context.Context, g *rbgraph.Graph, policy Policy) ([]rbgraph.SignedCharacter, error) {
	hooks := policy.hooks()

	g.RemoveSingletons()
	if g.IsEmpty() {
		return nil, nil
	}

	for _, c := range g.CharacterNames() {
		if !g.IsFree(c) {
			continue
		}
		hooks.OnFreeCharacter(ctx, c)
		applied, _ := g.RealizeCharacter(rbgraph.SignedCharacter{Character: c, Sign: rbgraph.Lose})
		rest, err := Reduce(ctx, g, policy)
		if err != nil {
			return nil, err
		}
		return append(applied, rest...), nil
	}

	for _, c := range g.CharacterNames() {
		if !g.IsUniversal(c) {
			continue
		}
		hooks.OnUniversalCharacter(ctx, c)
		applied, _ := g.RealizeCharacter(rbgraph.SignedCharacter{Character: c, Sign: rbgraph.Gain})
		rest, err := Reduce(ctx, g, policy)
		if err != nil {
			return nil, err
		}
		return append(applied, rest...), nil
	}

	if components := g.Components(); components != nil {
		hooks.OnComponentSplit(ctx, len(components))
		var output []rbgraph.SignedCharacter
		for _, comp := range components {
			part, err := Reduce(ctx, comp, policy)
			if err != nil {
				return nil, err
			}
			output = append(output, part...)
		}
		return output, nil
	}

	gm := g.MaximalReducibleGraph(true)
	diagram := hasse.Build(g, gm)

	sources := diagram.SafeSources()
	hooks.OnSafeSourcesFound(ctx, len(sources))
	if len(sources) == 0 {
		hooks.OnNoReduction(ctx)
		return nil, errNoReduction
	}

	if policy.Mode == Exhaustive {
		return reduceExhaustive(ctx, g, diagram, sources, policy)
	}

	source, err := selectSource(ctx, diagram, sources, policy)
	if err != nil {
		return nil, err
	}

	hooks.OnSourceSelected(ctx, diagram.Vertex(source).Species)

	gain := gainCharacters(diagram, source)
	applied, feasible := g.Realize(gain)
	if !feasible {
		return nil, errors.New(errors.ErrCodeNoReduction, "safe source %v not realizable on G", diagram.Vertex(source).Species)
	}
	hooks.OnRealize(ctx, formatSignedCharacters(applied))

	rest, err := Reduce(ctx, g, policy)
	if err != nil {
		return nil, err
	}
	return append(applied, rest...), nil
}

// reduceExhaustive tries every safe source on its own copy of g and returns
// the first one whose recursive reduction succeeds, in the order sources
// lists them.
func reduceExhaustive(ctx context.Context, g *rbgraph.Graph, diagram *hasse.Diagram, sources []int, policy Policy) ([]rbgraph.SignedCharacter, error) {
	hooks := policy.hooks()

	for _, source := range sources {
		gTest := g.Copy()
		gain := gainCharacters(diagram, source)
		applied, feasible := gTest.Realize(gain)
		if !feasible {
			continue
		}

		rest, err := Reduce(ctx, gTest, policy)
		if err != nil {
			continue
		}

		*g = *gTest
		hooks.OnSourceSelected(ctx, diagram.Vertex(source).Species)
		hooks.OnRealize(ctx, formatSignedCharacters(applied))
		return append(applied, rest...), nil
	}

	hooks.OnNoReduction(ctx)
	return nil, errNoReduction
}

func selectSource(ctx context.Context, diagram *hasse.Diagram, sources []int, policy Policy) (int, error) {
	if len(sources) == 1 {
		return sources[0], nil
	}

	switch policy.Mode {
	case Nth:
		idx := policy.NthIndex
		if idx >= len(sources) {
			idx = len(sources) - 1
		}
		return sources[idx], nil

	case Interactive:
		if policy.Prompt == nil {
			return 0, errors.New(errors.ErrCodeBadPolicy, "Interactive mode requires a non-nil Prompt")
		}
		options := make([]SourceOption, len(sources))
		for i, s := range sources {
			v := diagram.Vertex(s)
			options[i] = SourceOption{Species: v.Species, Characters: v.Characters}
		}
		choice, err := policy.Prompt.PromptSource(ctx, options)
		if err != nil {
			return 0, err
		}
		if choice < 0 || choice >= len(sources) {
			return 0, errors.New(errors.ErrCodeBadPolicy, "source choice %d out of range [0,%d)", choice, len(sources))
		}
		return sources[choice], nil

	default: // FirstFound
		return sources[0], nil
	}
}

func gainCharacters(diagram *hasse.Diagram, source int) []rbgraph.SignedCharacter {
	chars := diagram.Vertex(source).Characters
	sc := make([]rbgraph.SignedCharacter, len(chars))
	for i, c := range chars {
		sc[i] = rbgraph.SignedCharacter{Character: c, Sign: rbgraph.Gain}
	}
	return sc
}

func formatSignedCharacters(list []rbgraph.SignedCharacter) []string {
	out := make([]string, len(list))
	for i, sc := range list {
		out[i] = sc.String()
	}
	return out
}

// IsPartial reports whether reduction loses a character that was never
// gained earlier in the same list. A full run of [Reduce] on a graph with
// pre-active characters can produce such a list (a pre-active free
// character is lost without a gain), so IsPartial is true for it too.
func IsPartial(reduction []rbgraph.SignedCharacter) bool {
	gained := make(map[string]bool)
	for _, sc := range reduction {
		if sc.Sign == rbgraph.Gain {
			gained[sc.Character] = true
			continue
		}
		if !gained[sc.Character] {
			return true
		}
	}
	return false
}

// IsComplete reports whether reduction mentions no character that remains
// inactive in g. A character that is both part of reduction and still
// inactive means the reduction didn't carry that character through.
func IsComplete(reduction []rbgraph.SignedCharacter, g *rbgraph.Graph) bool {
	for _, sc := range reduction {
		if g.IsInactive(sc.Character) {
			return false
		}
	}
	return true
}
