package settlement

import (
	"regexp"
	"strings"
)

// Record is one extracted settlement together with the region it was
// harvested from and the district inferred from the nearest document
// heading.
type Record struct {
	Region     string
	District   string
	Settlement string
}

var (
	footnoteRe = regexp.MustCompile(`\[[^\]]*\]`)

	// Trailing "(...)" on a settlement name is a clarifying annotation,
	// e.g. an alternate name. The leading whitespace is required so a name
	// that is nothing but a parenthetical survives.
	nameSuffixRe = regexp.MustCompile(`\s+\(.*\)$`)

	// Trailing "(...)" on a district label names the unit's type.
	unitSuffixRe = regexp.MustCompile(`\s*\(.*\)$`)

	// Leading administrative-unit designators on district headings.
	unitPrefixRe = regexp.MustCompile(`(?i)^\s*(городской округ|город-?курорт|город)\s+`)
)

// StripFootnotes removes bracketed footnote markers: "Сочи[1]" -> "Сочи".
func StripFootnotes(s string) string {
	return footnoteRe.ReplaceAllString(s, "")
}

// CleanName normalizes a raw settlement name: footnote markers and a
// trailing parenthetical annotation are removed, surrounding whitespace is
// trimmed.
func CleanName(s string) string {
	s = StripFootnotes(s)
	s = nameSuffixRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// CleanDistrict normalizes a district heading into a bare unit name:
// footnote markers, the leading designator ("город ", "город-курорт ",
// "городской округ ") and a trailing parenthetical go.
func CleanDistrict(s string) string {
	s = StripFootnotes(s)
	s = unitPrefixRe.ReplaceAllString(s, "")
	s = unitSuffixRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// isPlaceholder reports whether a cleaned name is the explicit "no data"
// dash used in the source tables.
func isPlaceholder(s string) bool {
	return s == "—" || s == "-"
}

// New builds a Record from raw harvested strings. It reports false when
// normalization leaves no usable settlement name or district, in which
// case the record must be dropped.
func New(region, district, name string) (Record, bool) {
	rec := Record{
		Region:     strings.TrimSpace(region),
		District:   CleanDistrict(district),
		Settlement: CleanName(name),
	}
	if rec.Settlement == "" || isPlaceholder(rec.Settlement) || rec.District == "" {
		return Record{}, false
	}
	return rec, true
}
