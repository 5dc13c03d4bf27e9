package survey

import (
	"sort"
	"time"

	"coolassistant.app/internal/ports"
)

// FindDuplicates returns the ids of rows that follow an earlier row of the
// same user by less than cooldown. The earliest row of every cluster is kept.
func FindDuplicates(rows []ports.TimelineEntry, cooldown time.Duration) []uint {
	sorted := make([]ports.TimelineEntry, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].UserEmail != sorted[j].UserEmail {
			return sorted[i].UserEmail < sorted[j].UserEmail
		}
		if !sorted[i].Timestamp.Equal(sorted[j].Timestamp) {
			return sorted[i].Timestamp.Before(sorted[j].Timestamp)
		}
		return sorted[i].ID < sorted[j].ID
	})

	var duplicates []uint
	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if prev.UserEmail != cur.UserEmail {
			continue
		}
		// compared with the immediate predecessor, even if that one is itself removed
		if cur.Timestamp.Sub(prev.Timestamp) < cooldown {
			duplicates = append(duplicates, cur.ID)
		}
	}
	return duplicates
}
