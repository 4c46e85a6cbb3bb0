// Package reduce drives the red-black graph reduction algorithm to
// completion: repeatedly finding a safe source in the Hasse diagram of the
// graph's maximal reducible subgraph, realizing it, and recursing, until the
// graph is empty or no safe source remains.
//
// # Policy
//
// [Policy] controls how a safe source is picked when more than one is
// available, and carries the [github.com/arborfield/phyloreduce/pkg/observability.ReductionHooks]
// the driver reports progress through. The four [Mode] values mirror the
// selection strategies of the underlying algorithm: take the first safe
// source found, take the Nth, ask a caller-supplied [SourcePrompter], or try
// every one of them and keep the first reduction that succeeds.
package reduce
