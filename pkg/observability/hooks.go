// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about reduction progress.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define a hook interface for the event category
//   - Provide a no-op default implementation
//   - Allow registration of a custom implementation at startup, or pass one
//     directly on a per-call basis (e.g. [github.com/arborfield/phyloreduce/pkg/reduce.Policy.Hooks])
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, plain logging)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetReductionHooks(&myReductionHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Reduction().OnSafeSourcesFound(ctx, 3)
//	// ... realize the chosen source ...
//	observability.Reduction().OnRealize(ctx, applied)
package observability

import (
	"context"
	"sync"
)

// =============================================================================
// Reduction Hooks
// =============================================================================

// ReductionHooks receives events from a red-black graph reduction. Every
// signed character is passed pre-formatted (e.g. "c3+") so this package
// never needs to import the graph types themselves.
type ReductionHooks interface {
	// OnFreeCharacter fires when the driver finds a free character and
	// realizes it as a loss without consulting the Hasse diagram.
	OnFreeCharacter(ctx context.Context, character string)

	// OnUniversalCharacter fires when the driver finds a universal
	// character and realizes it as a gain without consulting the Hasse
	// diagram.
	OnUniversalCharacter(ctx context.Context, character string)

	// OnComponentSplit fires when the graph splits into independent
	// components, each reduced on its own.
	OnComponentSplit(ctx context.Context, components int)

	// OnSafeSourcesFound fires once the Hasse diagram's safe-source
	// analysis completes, with the number of sources found (zero means the
	// reduction is about to fail).
	OnSafeSourcesFound(ctx context.Context, count int)

	// OnSourceSelected fires when a safe source is chosen for realization,
	// naming the species grouped at that source vertex.
	OnSourceSelected(ctx context.Context, species []string)

	// OnRealize fires after a batch of signed characters has been applied
	// to the graph.
	OnRealize(ctx context.Context, applied []string)

	// OnNoReduction fires when the driver gives up: no safe source exists
	// and the graph can't be reduced further.
	OnNoReduction(ctx context.Context)
}

// =============================================================================
// No-op Implementation
// =============================================================================

// NoopReductionHooks is a no-op implementation of ReductionHooks.
type NoopReductionHooks struct{}

func (NoopReductionHooks) OnFreeCharacter(context.Context, string)      {}
func (NoopReductionHooks) OnUniversalCharacter(context.Context, string) {}
func (NoopReductionHooks) OnComponentSplit(context.Context, int)        {}
func (NoopReductionHooks) OnSafeSourcesFound(context.Context, int)      {}
func (NoopReductionHooks) OnSourceSelected(context.Context, []string)   {}
func (NoopReductionHooks) OnRealize(context.Context, []string)         {}
func (NoopReductionHooks) OnNoReduction(context.Context)                {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	reductionHooks ReductionHooks = NoopReductionHooks{}
	hooksMu        sync.RWMutex
)

// SetReductionHooks registers custom reduction hooks as the package-wide
// default. This should be called once at application startup before any
// reduction runs; prefer setting [github.com/arborfield/phyloreduce/pkg/reduce.Policy.Hooks]
// directly when a single run needs its own hooks.
func SetReductionHooks(h ReductionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		reductionHooks = h
	}
}

// Reduction returns the registered reduction hooks.
func Reduction() ReductionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return reductionHooks
}

// Reset restores the hooks to their no-op default. This is primarily useful
// for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	reductionHooks = NoopReductionHooks{}
}
