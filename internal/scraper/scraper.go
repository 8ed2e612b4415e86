package scraper

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/imelnikov/settlements/internal/settlement"
)

const (
	// UserAgent matches a desktop browser; Wikipedia throttles generic
	// client strings.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
	Timeout   = 60 * time.Second
)

// Source identifies one region page to harvest.
type Source struct {
	Region string
	URL    string
}

// Sources lists the fixed region pages, processed in this order.
var Sources = []Source{
	{
		Region: "Краснодарский край",
		URL:    "https://ru.wikipedia.org/wiki/%D0%9D%D0%B0%D1%81%D0%B5%D0%BB%D1%91%D0%BD%D0%BD%D1%8B%D0%B5_%D0%BF%D1%83%D0%BD%D0%BA%D1%82%D1%8B_%D0%9A%D1%80%D0%B0%D1%81%D0%BD%D0%BE%D0%B4%D0%B0%D1%80%D1%81%D0%BA%D0%BE%D0%B3%D0%BE_%D0%BA%D1%80%D0%B0%D1%8F",
	},
	{
		Region: "Республика Адыгея",
		URL:    "https://ru.wikipedia.org/wiki/%D0%9D%D0%B0%D1%81%D0%B5%D0%BB%D1%91%D0%BD%D0%BD%D1%8B%D0%B5_%D0%BF%D1%83%D0%BD%D0%BA%D1%82%D1%8B_%D0%90%D0%B4%D1%8B%D0%B3%D0%B5%D0%B8",
	},
}

// FetchError reports a failed page load in network mode: either the
// request itself failed or the server answered with a non-OK status.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetching %s: unexpected status code %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error { return e.Err }

// CacheReadError reports a missing or unreadable page file in offline
// mode.
type CacheReadError struct {
	Path string
	Err  error
}

func (e *CacheReadError) Error() string {
	return fmt.Sprintf("reading cached page %s: %v", e.Path, e.Err)
}

func (e *CacheReadError) Unwrap() error { return e.Err }

// Scraper loads region pages and extracts settlement records from them.
type Scraper struct {
	client  *http.Client
	htmlDir string
}

// New creates a new Scraper instance. A non-empty htmlDir switches it to
// offline mode, reading pre-fetched pages instead of the network.
func New(htmlDir string) *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		htmlDir: htmlDir,
	}
}

var cacheNameRe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// CacheFileName maps a source URL to its file name inside an offline
// cache directory: the escaped URL path with every run of characters
// outside [A-Za-z0-9._-] replaced by one underscore, plus ".html". The
// transform is deterministic so pre-fetch tooling and the loader agree on
// names.
func CacheFileName(rawURL string) string {
	path := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		path = u.EscapedPath()
	}
	return cacheNameRe.ReplaceAllString(path, "_") + ".html"
}

// HarvestRegion loads one region page and extracts its settlement records
// in document order. Tables with no usable column and tables with no
// preceding heading are skipped, not errors.
func (s *Scraper) HarvestRegion(src Source) ([]settlement.Record, error) {
	markup, err := s.load(src)
	if err != nil {
		return nil, err
	}
	return harvest(strings.NewReader(markup), src.Region)
}

// load returns the raw markup for a source, from the cache directory in
// offline mode or via a single GET otherwise. No retries.
func (s *Scraper) load(src Source) (string, error) {
	if s.htmlDir != "" {
		path := filepath.Join(s.htmlDir, CacheFileName(src.URL))
		data, err := os.ReadFile(path)
		if err != nil {
			return "", &CacheReadError{Path: path, Err: err}
		}
		return string(data), nil
	}

	req, err := http.NewRequest(http.MethodGet, src.URL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", &FetchError{URL: src.URL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &FetchError{URL: src.URL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: src.URL, Err: err}
	}
	return string(body), nil
}

// harvest extracts settlement records from markup. Each segment's heading
// becomes the district of the records found under it.
func harvest(r io.Reader, region string) ([]settlement.Record, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	var records []settlement.Record
	for _, seg := range segments(doc) {
		for _, g := range seg.Tables {
			col, ok := settlementColumn(g)
			if !ok {
				continue
			}
			for _, row := range g.Rows {
				if col >= len(row) {
					continue
				}
				if rec, ok := settlement.New(region, seg.Heading, row[col]); ok {
					records = append(records, rec)
				}
			}
		}
		for _, list := range seg.Lists {
			for _, item := range list {
				candidate := strings.TrimSpace(settlement.StripFootnotes(item))
				if utf8.RuneCountInString(candidate) > MaxListItemLen {
					// Mis-parsed prose, not a settlement name.
					continue
				}
				if rec, ok := settlement.New(region, seg.Heading, candidate); ok {
					records = append(records, rec)
				}
			}
		}
	}
	return records, nil
}
