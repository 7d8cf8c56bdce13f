package retrieval

import (
	"sort"

	"github.com/poiesic/answerit/core"
)

// Rank orders scored records by score descending and truncates to at most k
// texts. The sort is stable, so records with equal scores keep their corpus
// insertion order; for a fixed corpus and query the result is deterministic.
// Only the record texts survive this boundary; ids and scores are discarded.
func Rank(scored []core.ScoredRecord, k int) []string {
	if k < 1 || len(scored) == 0 {
		return nil
	}

	ordered := make([]core.ScoredRecord, len(scored))
	copy(ordered, scored)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Score > ordered[j].Score
	})

	if k > len(ordered) {
		k = len(ordered)
	}
	texts := make([]string, 0, k)
	for _, sr := range ordered[:k] {
		texts = append(texts, sr.Record.Text)
	}
	return texts
}
