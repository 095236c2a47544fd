package graph

import (
	"bytes"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/lioia/corpus-pagerank/pkg/utils"
	"golang.org/x/net/html"
	"golang.org/x/xerrors"
)

const pageExtension = ".html"

// Crawl parses every .html file of directory and builds the corpus.
// Subdirectories are not visited; links to files outside the directory are
// discarded.
func Crawl(directory string) (*Corpus, error) {
	info, err := os.Stat(directory)
	if err != nil {
		return nil, xerrors.Errorf("could not open corpus %s: %w", directory, err)
	}
	if !info.IsDir() {
		return nil, xerrors.Errorf("%s: %w", directory, ErrNotDirectory)
	}
	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, xerrors.Errorf("could not list corpus %s: %w", directory, err)
	}

	raw := make(map[string][]string)
	for _, entry := range entries {
		// Skip anything that is not an HTML page
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), pageExtension) {
			utils.ComputeLog("crawl", "Skipping %s", entry.Name())
			continue
		}
		contents, err := os.ReadFile(filepath.Join(directory, entry.Name()))
		if err != nil {
			return nil, xerrors.Errorf("could not read page %s: %w", entry.Name(), err)
		}
		links, err := LoadLinksFromBytes(contents)
		if err != nil {
			return nil, xerrors.Errorf("could not parse page %s: %w", entry.Name(), err)
		}
		raw[entry.Name()] = links
	}
	if len(raw) == 0 {
		return nil, xerrors.Errorf("%s: %w", directory, ErrNoPages)
	}

	c, err := NewCorpus(raw)
	if err != nil {
		return nil, err
	}
	utils.ComputeLog("crawl", "Loaded %d pages with %d links from %s", c.Len(), c.Edges(), directory)
	return c, nil
}

// LoadLinksFromBytes returns the page targets of every anchor in contents.
func LoadLinksFromBytes(contents []byte) ([]string, error) {
	return ExtractLinks(bytes.NewReader(contents))
}

// ExtractLinks parses an HTML document and returns the cleaned href of every
// <a> element, in document order. Absolute URLs, empty and fragment-only
// references are left out.
func ExtractLinks(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var links []string
	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, a := range n.Attr {
				if a.Key != "href" {
					continue
				}
				link, skip := convertHref(a.Val)
				if skip {
					utils.ComputeLog("crawl", "Discarding link %q", a.Val)
					continue
				}
				links = append(links, link)
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			visit(child)
		}
	}
	visit(doc)
	return links, nil
}

// convertHref turns an href into a page identifier.
// skip is true when the reference cannot name a corpus page.
func convertHref(href string) (link string, skip bool) {
	href = strings.TrimSpace(href)
	// Drop fragment and query
	if i := strings.IndexAny(href, "#?"); i >= 0 {
		href = href[:i]
	}
	if href == "" || strings.Contains(href, "://") || strings.HasPrefix(href, "mailto:") {
		return "", true
	}
	cleaned := path.Clean(href)
	// Corpus pages live in a single directory
	if strings.Contains(cleaned, "/") {
		return "", true
	}
	return cleaned, false
}
