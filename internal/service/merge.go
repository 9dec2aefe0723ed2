package service

import (
	"sort"

	"guestdesk/internal/models"
)

// MergeCandidates combines candidate lists in the order given, drops
// duplicates by exact content (the first occurrence wins, regardless of
// confidence), stable-sorts by confidence descending and truncates to limit.
// Equal confidences keep the relative order of the concatenated input, so
// earlier lists outrank later ones on ties.
//
// Pure function of its inputs: performs no I/O and cannot fail.
func MergeCandidates(limit int, lists ...[]models.ReplyCandidate) []models.ReplyCandidate {
	seen := make(map[string]struct{})
	merged := make([]models.ReplyCandidate, 0)

	for _, list := range lists {
		for _, candidate := range list {
			if _, ok := seen[candidate.Content]; ok {
				continue
			}
			seen[candidate.Content] = struct{}{}
			merged = append(merged, candidate)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Confidence > merged[j].Confidence
	})

	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}

	return merged
}
