// Package graph holds the corpus link graph consumed by the PageRank
// estimators, together with the helpers that build it from a directory of
// HTML files and render it with Graphviz.
//
// A Corpus is immutable once built: every page appears exactly once, links
// never point outside the corpus and a page never links to itself.
package graph

import (
	"sort"

	"golang.org/x/xerrors"
)

var (
	// ErrNoPages is returned when a corpus would contain no page at all.
	ErrNoPages = xerrors.New("graph: corpus has no pages")

	// ErrNotDirectory is returned by Crawl when the path is not a directory.
	ErrNotDirectory = xerrors.New("graph: corpus path is not a directory")

	// ErrUnknownFormat is returned by Render for an unsupported output format.
	ErrUnknownFormat = xerrors.New("graph: unknown render format")
)

// Corpus maps every page to the pages it links to.
type Corpus struct {
	pages []string            // sorted page identifiers
	index map[string]int      // page -> position in pages
	links map[string][]string // page -> sorted, deduplicated outlinks
}

// NewCorpus builds a corpus from raw page -> links data.
// Self links, duplicates and links to pages that are not keys of raw are
// dropped. A page without links is kept as a dangling page.
func NewCorpus(raw map[string][]string) (*Corpus, error) {
	if len(raw) == 0 {
		return nil, ErrNoPages
	}
	c := &Corpus{
		pages: make([]string, 0, len(raw)),
		index: make(map[string]int, len(raw)),
		links: make(map[string][]string, len(raw)),
	}
	for page := range raw {
		c.pages = append(c.pages, page)
	}
	sort.Strings(c.pages)
	for i, page := range c.pages {
		c.index[page] = i
	}

	for _, page := range c.pages {
		seen := make(map[string]bool)
		outLinks := []string{}
		for _, link := range raw[page] {
			// Only include links to other pages in the corpus
			if link == page || seen[link] {
				continue
			}
			if _, ok := raw[link]; !ok {
				continue
			}
			seen[link] = true
			outLinks = append(outLinks, link)
		}
		sort.Strings(outLinks)
		c.links[page] = outLinks
	}
	return c, nil
}

// Len returns the number of pages.
func (c *Corpus) Len() int {
	return len(c.pages)
}

// Pages returns the page identifiers in sorted order.
func (c *Corpus) Pages() []string {
	pages := make([]string, len(c.pages))
	copy(pages, c.pages)
	return pages
}

// Has reports whether page belongs to the corpus.
func (c *Corpus) Has(page string) bool {
	_, ok := c.index[page]
	return ok
}

// Index returns the position of page in Pages.
func (c *Corpus) Index(page string) (int, bool) {
	i, ok := c.index[page]
	return i, ok
}

// Links returns the pages linked to by page, as extracted.
// The result is empty for a dangling page.
func (c *Corpus) Links(page string) []string {
	links := make([]string, len(c.links[page]))
	copy(links, c.links[page])
	return links
}

// IsDangling reports whether page has no outgoing links.
func (c *Corpus) IsDangling(page string) bool {
	return len(c.links[page]) == 0
}

// EffectiveLinks returns the pages a random surfer can follow from page.
// A dangling page links to every page in the corpus, itself included.
func (c *Corpus) EffectiveLinks(page string) []string {
	if c.IsDangling(page) {
		return c.Pages()
	}
	return c.Links(page)
}

// Edges returns the number of links in the corpus, dangling pages excluded.
func (c *Corpus) Edges() int {
	total := 0
	for _, links := range c.links {
		total += len(links)
	}
	return total
}
