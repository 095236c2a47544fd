package graph_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lioia/corpus-pagerank/pkg/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCorpus(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, contents := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	}
	return dir
}

func TestCrawl(t *testing.T) {
	dir := writeCorpus(t, map[string]string{
		"1.html": `<html><body>
			<a href="2.html">two</a>
			<a class="nav" href="./3.html#top">three</a>
			<a href="1.html">self</a>
			<a href="https://example.com/2.html">external</a>
			<a href="missing.html">missing</a>
		</body></html>`,
		"2.html":       `<p>No links <a name="anchor">here</a></p>`,
		"3.html":       `<a href="1.html">one</a><a href="2.html?x=1">two</a>`,
		"notes.txt":    `<a href="1.html">ignored</a>`,
		"sub/4.html":   `<a href="1.html">nested pages are not part of the corpus</a>`,
		"4.html.bak":   `<a href="1.html">ignored</a>`,
		"anchors.html": `<a>no href</a><a href="#only-fragment">fragment</a><a href="sub/4.html">nested</a>`,
	})

	c, err := graph.Crawl(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"1.html", "2.html", "3.html", "anchors.html"}, c.Pages())
	assert.Equal(t, []string{"2.html", "3.html"}, c.Links("1.html"))
	assert.Empty(t, c.Links("2.html"))
	assert.Equal(t, []string{"1.html", "2.html"}, c.Links("3.html"))
	assert.Empty(t, c.Links("anchors.html"))
}

func TestCrawl_Errors(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		_, err := graph.Crawl(filepath.Join(t.TempDir(), "nope"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("file instead of directory", func(t *testing.T) {
		dir := writeCorpus(t, map[string]string{"1.html": ""})
		_, err := graph.Crawl(filepath.Join(dir, "1.html"))
		assert.ErrorIs(t, err, graph.ErrNotDirectory)
	})

	t.Run("no html pages", func(t *testing.T) {
		dir := writeCorpus(t, map[string]string{"readme.md": "# nothing"})
		_, err := graph.Crawl(dir)
		assert.ErrorIs(t, err, graph.ErrNoPages)
	})
}

func TestExtractLinks(t *testing.T) {
	links, err := graph.ExtractLinks(strings.NewReader(`
		<A HREF="upper.html">case</A>
		<div><a id="x" href=" spaced.html ">spaces</a></div>
		<a href="mailto:someone@example.com">mail</a>
		<a href="/rooted.html">rooted</a>
		<a href="../parent.html">parent</a>
		<a href="a.html">first</a><a href="a.html">again</a>`))
	require.NoError(t, err)

	assert.Equal(t, []string{"upper.html", "spaced.html", "a.html", "a.html"}, links)
}
