package retrieval

import "github.com/poiesic/answerit/core"

// Monitor provides hooks to observe the retrieval process.
// Implement this interface to track intermediate steps during retrieval.
type Monitor interface {
	Start(query string)
	AfterScoring(scored []core.ScoredRecord)
	Finish(texts []string)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                     {}
func (n *noopMonitor) AfterScoring(_ []core.ScoredRecord) {}
func (n *noopMonitor) Finish(_ []string)                  {}
