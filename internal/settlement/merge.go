package settlement

import (
	"errors"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ErrNoRecords signals that harvesting produced zero records across all
// regions. That usually means the source pages changed structure and the
// extraction heuristics went stale, not that the run itself misbehaved.
var ErrNoRecords = errors.New("no settlement records harvested; source page structure may have changed")

// Merge concatenates per-region record sets, drops exact duplicate
// triples keeping the first occurrence, and sorts the result.
func Merge(sets ...[]Record) []Record {
	seen := make(map[Record]bool)
	var merged []Record
	for _, set := range sets {
		for _, rec := range set {
			if seen[rec] {
				continue
			}
			seen[rec] = true
			merged = append(merged, rec)
		}
	}
	Sort(merged)
	return merged
}

// Sort orders records by (region, district, settlement) using
// case-insensitive Russian collation.
func Sort(records []Record) {
	c := collate.New(language.Russian, collate.IgnoreCase)
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if r := c.CompareString(a.Region, b.Region); r != 0 {
			return r < 0
		}
		if r := c.CompareString(a.District, b.District); r != 0 {
			return r < 0
		}
		return c.CompareString(a.Settlement, b.Settlement) < 0
	})
}
