package reduce

import (
	"context"

	"github.com/arborfield/phyloreduce/pkg/observability"
)

// Mode selects how a safe source is picked when the Hasse diagram offers
// more than one.
type Mode int

const (
	// FirstFound always takes the first safe source, in the order
	// [github.com/arborfield/phyloreduce/pkg/hasse.Diagram.SafeSources] returns them.
	FirstFound Mode = iota

	// Nth takes the source at Policy.NthIndex, clamped to the last one if
	// the index is out of range.
	Nth

	// Interactive asks Policy.Prompt to choose among the safe sources.
	Interactive

	// Exhaustive tries every safe source in turn, on its own copy of the
	// graph, and keeps the first one whose recursive reduction succeeds.
	Exhaustive
)

// SourceOption describes one safe source candidate for a [SourcePrompter].
type SourceOption struct {
	Species    []string
	Characters []string
}

// SourcePrompter lets a caller choose a safe source interactively. Reduce
// calls it only when Policy.Mode is [Interactive] and more than one safe
// source is available.
type SourcePrompter interface {
	PromptSource(ctx context.Context, options []SourceOption) (int, error)
}

// Policy parameterizes a single [Reduce] call: how to pick among safe
// sources, and where to report progress.
type Policy struct {
	Mode     Mode
	NthIndex int

	// Prompt is consulted only when Mode is [Interactive].
	Prompt SourcePrompter

	// Hooks receives progress events. A nil Hooks falls back to the
	// package-wide hooks of [observability.Reduction], which are
	// [observability.NoopReductionHooks] unless others were registered.
	Hooks observability.ReductionHooks
}

func (p Policy) hooks() observability.ReductionHooks {
	if p.Hooks == nil {
		return observability.Reduction()
	}
	return p.Hooks
}
