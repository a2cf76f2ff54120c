package availability

import (
	"sort"
	"time"

	"pawbooker/models"
)

// Overlaps reports whether two half-open intervals share any instant.
// Touching endpoints do not overlap.
func Overlaps(a, b models.TimeInterval) bool {
	return a.Start.Before(b.End) && a.End.After(b.Start)
}

// Merge sorts intervals by start and folds overlapping or touching spans into
// one. The result is sorted, mutually non-overlapping and minimal. Zero and
// negative-length inputs are dropped.
func Merge(intervals []models.TimeInterval) []models.TimeInterval {
	valid := make([]models.TimeInterval, 0, len(intervals))
	for _, iv := range intervals {
		if iv.End.After(iv.Start) {
			valid = append(valid, iv)
		}
	}
	if len(valid) == 0 {
		return nil
	}

	sort.Slice(valid, func(i, j int) bool {
		return valid[i].Start.Before(valid[j].Start)
	})

	merged := []models.TimeInterval{valid[0]}
	for _, current := range valid[1:] {
		last := &merged[len(merged)-1]
		// Touching spans merge too.
		if !current.Start.After(last.End) {
			if current.End.After(last.End) {
				last.End = current.End
			}
		} else {
			merged = append(merged, current)
		}
	}
	return merged
}

// Subtract removes every blocked span from the available spans, splitting
// around blocks. Each block is applied against the current fragment set, so
// a fragment produced by one block can still be cut by the next.
func Subtract(available, blocked []models.TimeInterval) []models.TimeInterval {
	if len(blocked) == 0 {
		return available
	}

	var result []models.TimeInterval
	for _, avail := range available {
		current := []models.TimeInterval{avail}

		for _, block := range blocked {
			var next []models.TimeInterval
			for _, frag := range current {
				if !Overlaps(frag, block) {
					next = append(next, frag)
					continue
				}
				// Left remainder before the block.
				if frag.Start.Before(block.Start) {
					next = append(next, models.TimeInterval{
						Start: frag.Start,
						End:   minTime(frag.End, block.Start),
					})
				}
				// Right remainder after the block.
				if frag.End.After(block.End) {
					next = append(next, models.TimeInterval{
						Start: maxTime(frag.Start, block.End),
						End:   frag.End,
					})
				}
			}
			current = next
		}

		result = append(result, current...)
	}

	// Keep only fragments with positive duration.
	kept := result[:0]
	for _, iv := range result {
		if iv.End.After(iv.Start) {
			kept = append(kept, iv)
		}
	}
	return kept
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
