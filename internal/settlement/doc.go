// Package settlement provides the record type and normalization rules for
// extracted settlements.
//
// The settlement package turns raw harvested strings into clean
// (region, district, settlement) records: footnote markers, parenthetical
// annotations and administrative-unit prefixes are stripped, placeholder
// values are dropped. It also merges per-region record sets into the final
// deduplicated, collated result.
package settlement
