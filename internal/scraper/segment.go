package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Segment groups the tables and bullet lists that belong to one document
// heading, which names the administrative unit they describe.
type Segment struct {
	Heading string
	Tables  []Grid
	Lists   [][]string
}

// segments partitions the document by its h2/h3 headings. The sibling
// walk runs first; when it attaches no tables or lists at all (current
// Wikipedia markup wraps headings in container divs, so content is no
// longer a heading sibling), the document-order scan takes over.
func segments(doc *goquery.Document) []Segment {
	segs := siblingSegments(doc)
	for _, seg := range segs {
		if len(seg.Tables) > 0 || len(seg.Lists) > 0 {
			return segs
		}
	}
	return scanSegments(doc)
}

// siblingSegments walks each heading's following siblings up to the next
// heading and claims the tables and lists in that span. A table between
// an h2 and its first h3 belongs to the h2; anything after the h3 belongs
// to the h3, so every table is claimed exactly once.
func siblingSegments(doc *goquery.Document) []Segment {
	var segs []Segment
	doc.Find("h2, h3").Each(func(_ int, h *goquery.Selection) {
		heading := headingText(h)
		if heading == "" {
			return
		}
		seg := Segment{Heading: heading}
		h.NextUntil("h2, h3").Each(func(_ int, sel *goquery.Selection) {
			switch goquery.NodeName(sel) {
			case "table":
				if g, ok := parseGrid(sel); ok {
					seg.Tables = append(seg.Tables, g)
				}
			case "ul":
				if items := listItems(sel); len(items) > 0 {
					seg.Lists = append(seg.Lists, items)
				}
			}
		})
		segs = append(segs, seg)
	})
	return segs
}

// scanSegments is the looser strategy: one pass over headings, tables and
// lists in document order, attributing each table/list to the nearest
// heading seen before it. Tables before the first heading cannot be
// attributed and are skipped.
func scanSegments(doc *goquery.Document) []Segment {
	var segs []Segment
	current := -1
	doc.Find("h2, h3, table, ul").Each(func(_ int, sel *goquery.Selection) {
		switch goquery.NodeName(sel) {
		case "h2", "h3":
			if heading := headingText(sel); heading != "" {
				segs = append(segs, Segment{Heading: heading})
				current = len(segs) - 1
			}
		case "table":
			if current < 0 {
				return
			}
			if g, ok := parseGrid(sel); ok {
				segs[current].Tables = append(segs[current].Tables, g)
			}
		case "ul":
			if current < 0 {
				return
			}
			if items := listItems(sel); len(items) > 0 {
				segs[current].Lists = append(segs[current].Lists, items)
			}
		}
	})
	return segs
}

// headingText prefers the span.mw-headline child Wikipedia puts inside
// headings; older markup has the text directly in the heading element.
func headingText(h *goquery.Selection) string {
	if span := h.Find("span.mw-headline").First(); span.Length() > 0 {
		return strings.TrimSpace(span.Text())
	}
	return collapseSpace(h.Text())
}

// listItems returns the text of a list's direct items. Nested lists are
// not flattened; their items belong to their own ul.
func listItems(ul *goquery.Selection) []string {
	var items []string
	ul.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
		if text := collapseSpace(li.Text()); text != "" {
			items = append(items, text)
		}
	})
	return items
}

// collapseSpace trims and squeezes all runs of whitespace (including
// non-breaking spaces, common in Wikipedia cells) to single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
