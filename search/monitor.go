package search

import "github.com/poiesic/sermonsearch/core"

// SearchMonitor provides hooks to observe the ranking pipeline.
// Implement this interface to track intermediate stages during ranking.
type SearchMonitor interface {
	Start(intent *core.SearchIntent)
	AfterDateFilter(records []core.CatalogRecord)
	AfterSpeakerFilter(records []core.CatalogRecord)
	AfterExactPass(records []core.ScoredRecord)
	AfterSuggestedPass(records []core.ScoredRecord)
	FallbackApplied(records []core.ScoredRecord)
	Finish(results *core.ResultSet)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ *core.SearchIntent)                 {}
func (n *noopMonitor) AfterDateFilter(_ []core.CatalogRecord)     {}
func (n *noopMonitor) AfterSpeakerFilter(_ []core.CatalogRecord)  {}
func (n *noopMonitor) AfterExactPass(_ []core.ScoredRecord)       {}
func (n *noopMonitor) AfterSuggestedPass(_ []core.ScoredRecord)   {}
func (n *noopMonitor) FallbackApplied(_ []core.ScoredRecord)      {}
func (n *noopMonitor) Finish(_ *core.ResultSet)                   {}
