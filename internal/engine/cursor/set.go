package cursor

import "slices"

// Normalize sorts selections by position and merges overlapping ones.
// Touching selections stay separate so neighbouring text objects can be
// selected side by side. The input slice is not modified.
func Normalize(sels []Selection) []Selection {
	if len(sels) <= 1 {
		return slices.Clone(sels)
	}

	sorted := slices.Clone(sels)
	slices.SortStableFunc(sorted, func(a, b Selection) int {
		if c := a.Start().Compare(b.Start()); c != 0 {
			return c
		}
		// Same start: larger ranges first
		return b.End().Compare(a.End())
	})

	merged := sorted[:1]
	for _, sel := range sorted[1:] {
		last := &merged[len(merged)-1]
		if last.Overlaps(sel) {
			*last = last.Merge(sel)
		} else {
			merged = append(merged, sel)
		}
	}
	return merged
}

// Append adds sel to sels and normalizes the result.
func Append(sels []Selection, sel ...Selection) []Selection {
	return Normalize(append(slices.Clone(sels), sel...))
}

// Ranges returns the range of every selection.
func Ranges(sels []Selection) []Range {
	ranges := make([]Range, len(sels))
	for i, sel := range sels {
		ranges[i] = sel.Range()
	}
	return ranges
}

// EqualSets returns true if both slices hold the same selections in order.
func EqualSets(a, b []Selection) bool {
	return slices.EqualFunc(a, b, Selection.Equals)
}
