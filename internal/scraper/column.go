package scraper

import (
	"strings"
)

// Tunables for the extraction heuristics. The source pages drift over
// time, so these stay adjustable rather than baked into the matchers.
var (
	// FallbackColumn is used when no header matches: the first column of
	// the source tables is usually a row number, the second the name.
	FallbackColumn = 1

	// MaxListItemLen caps list-item candidates, in runes. Longer items
	// are prose that leaked into a list, not settlement names.
	MaxListItemLen = 100
)

// A columnMatcher inspects a grid's header and picks the column holding
// settlement names, or reports that it cannot.
type columnMatcher struct {
	name  string
	match func(g Grid) (int, bool)
}

// columnMatchers is evaluated in order; the first success wins.
var columnMatchers = []columnMatcher{
	{name: "settlement-compound", match: matchSettlementCompound},
	{name: "name-synonym", match: matchNameSynonym},
	{name: "loose-stem", match: matchLooseStem},
	{name: "second-column", match: matchSecondColumn},
}

// settlementColumn returns the index of the column holding settlement
// names, or false when the grid cannot be attributed one and must be
// skipped.
func settlementColumn(g Grid) (int, bool) {
	for _, m := range columnMatchers {
		if col, ok := m.match(g); ok {
			return col, true
		}
	}
	return 0, false
}

// matchSettlementCompound looks for the "населённый пункт" compound: a
// header carrying both stems, in either spelling of ё.
func matchSettlementCompound(g Grid) (int, bool) {
	for i, h := range g.Header {
		lc := strings.ToLower(h)
		if strings.Contains(lc, "насел") && strings.Contains(lc, "пункт") {
			return i, true
		}
		if lc == "населённый пункт" || lc == "населенный пункт" {
			return i, true
		}
	}
	return 0, false
}

// matchNameSynonym accepts the generic "name" headers some tables use.
func matchNameSynonym(g Grid) (int, bool) {
	for i, h := range g.Header {
		switch strings.ToLower(h) {
		case "название", "наименование":
			return i, true
		}
	}
	return 0, false
}

// matchLooseStem is the last text heuristic: any header mentioning
// "пункт" or a "назв" stem.
func matchLooseStem(g Grid) (int, bool) {
	for i, h := range g.Header {
		lc := strings.ToLower(h)
		if strings.Contains(lc, "пункт") || strings.Contains(lc, "назв") {
			return i, true
		}
	}
	return 0, false
}

// matchSecondColumn is positional: with no name-like header at all, the
// second column is the empirical best guess.
func matchSecondColumn(g Grid) (int, bool) {
	if len(g.Header) > FallbackColumn {
		return FallbackColumn, true
	}
	return 0, false
}
