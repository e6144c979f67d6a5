// Package pattern adapts user-facing pattern values — a single element, a
// predicate, a set of elements, or a sub-sequence — into the searcher
// capability tiers defined in package searcher, dispatching each to the
// cheapest algorithm that can implement it.
package pattern

import (
	"github.com/coregx/patterncore/hay"
	"github.com/coregx/patterncore/searcher"
)

// Pattern is the common shape every pattern kind in this package
// implements: two constructors, one per consumer role. Most kinds return
// the same underlying value from both (a single-element scan is equally
// cheap whichever role it serves); Subsequence and Text are the exceptions,
// where IntoSearcher and IntoConsumer pick genuinely different algorithms.
type Pattern[H hay.Hay] interface {
	// IntoSearcher returns a searcher optimized for Search/RSearch.
	IntoSearcher() searcher.Forward[H]

	// IntoConsumer returns a searcher optimized for Consume/RConsume and
	// TrimStart/TrimEnd.
	IntoConsumer() searcher.Forward[H]
}
