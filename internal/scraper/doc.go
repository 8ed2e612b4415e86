// Package scraper provides HTTP fetching and HTML parsing for the
// settlement lists of Krasnodar Krai and Adygea.
//
// The scraper package loads each region's Wikipedia page (from the network
// or from a local cache directory), partitions the document into segments
// keyed by their nearest preceding heading, and extracts raw settlement
// names from the tables and bullet lists of each segment. Column choice
// inside a table goes through an ordered chain of matcher heuristics with
// a positional fallback.
package scraper
