package analysis

import (
	"sort"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
)

// Filter sorts records ascending by timestamp and collapses consecutive
// near-duplicates. A record survives only when it differs from the last KEPT
// record by more than windowMinutes, or its kind or operation tag differs.
// The comparison base is the last kept record, not the last seen one, so a
// burst of identical punches inside the window collapses to its first punch.
//
// Filter is idempotent: Filter(Filter(x)) == Filter(x).
func Filter(records []punch.Record, windowMinutes int) []punch.Record {
	if len(records) == 0 {
		return nil
	}

	sorted := make([]punch.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	window := time.Duration(windowMinutes) * time.Minute
	kept := make([]punch.Record, 0, len(sorted))
	kept = append(kept, sorted[0])
	for _, rec := range sorted[1:] {
		last := kept[len(kept)-1]
		if rec.Kind != last.Kind || rec.Op != last.Op || rec.Timestamp.Sub(last.Timestamp) > window {
			kept = append(kept, rec)
		}
	}
	return kept
}
