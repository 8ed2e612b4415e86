package scraper

import (
	"github.com/PuerkitoBio/goquery"
)

// Grid is the tabular form of one parsed HTML table: a header row plus
// data rows of text cells.
type Grid struct {
	Header []string
	Rows   [][]string
}

// parseGrid reads one table element into a Grid. The first non-empty row
// is the header. Tables without a header or without data rows do not
// parse; callers skip them and keep harvesting.
func parseGrid(table *goquery.Selection) (Grid, bool) {
	var g Grid
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		tr.ChildrenFiltered("th, td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, collapseSpace(cell.Text()))
		})
		if len(cells) == 0 {
			return
		}
		if g.Header == nil {
			g.Header = cells
			return
		}
		g.Rows = append(g.Rows, cells)
	})
	if len(g.Header) == 0 || len(g.Rows) == 0 {
		return Grid{}, false
	}
	return g, true
}
