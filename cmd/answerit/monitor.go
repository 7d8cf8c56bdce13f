package main

import (
	"fmt"

	"github.com/poiesic/answerit/core"
	"github.com/poiesic/answerit/retrieval"
)

// printingMonitor prints retrieval diagnostics to stdout for --verbose.
type printingMonitor struct{}

var _ retrieval.Monitor = (*printingMonitor)(nil)

func (m *printingMonitor) Start(query string) {
	fmt.Printf("query: %q\n", query)
}

func (m *printingMonitor) AfterScoring(scored []core.ScoredRecord) {
	fmt.Printf("matched %d records:\n", len(scored))
	for _, sr := range scored {
		fmt.Printf("  [%d] %s: %q\n", sr.Score, sr.Record.Id, sr.Record.Text)
	}
}

func (m *printingMonitor) Finish(texts []string) {
	fmt.Printf("retrieved %d texts\n\n", len(texts))
}

// monitorOrNil avoids handing a typed-nil pointer to the engine.
func monitorOrNil(m *printingMonitor) retrieval.Monitor {
	if m == nil {
		return nil
	}
	return m
}
