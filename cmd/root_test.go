package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lioia/corpus-pagerank/pkg/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeCorpus0 creates the four page corpus used across the estimator tests.
func writeCorpus0(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	pages := map[string]string{
		"1.html": `<a href="2.html">2</a>`,
		"2.html": `<a href="1.html">1</a> <a href="3.html">3</a>`,
		"3.html": `<a href="2.html">2</a> <a href="4.html">4</a>`,
		"4.html": `<a href="2.html">2</a>`,
	}
	for name, contents := range pages {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644))
	}
	return dir
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	if args == nil {
		// Keep cobra from falling back to the test binary arguments
		args = []string{}
	}
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCmd_Definition(t *testing.T) {
	root := NewRootCmd()
	assert.Equal(t, "pagerank", root.Name())
	assert.NotEmpty(t, root.Short)

	for _, name := range []string{"config", "damping", "samples", "threshold", "max-iterations", "seed", "precision", "verbose"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), name)
	}
	assert.NotNil(t, root.Flags().ShorthandLookup("o"))
	assert.NotNil(t, root.PersistentFlags().ShorthandLookup("v"))

	sub, _, err := root.Find([]string{"graph"})
	require.NoError(t, err)
	assert.Equal(t, "graph", sub.Name())
	assert.NotNil(t, sub.Flags().Lookup("format"))
}

func TestRootCmd_Rank(t *testing.T) {
	dir := writeCorpus0(t)
	stdout, _, err := execute(t, dir, "--samples", "20000", "--seed", "3", "--threshold", "1e-10")
	require.NoError(t, err)

	parts := strings.SplitN(stdout, "PageRank Results from Iteration", 2)
	require.Len(t, parts, 2)
	assert.Contains(t, parts[0], "PageRank Results from Sampling (n = 20000)")
	assert.Regexp(t, `(?m)^1\.html\s+0\.\d{4}\s*$`, parts[0])

	iteration := parts[1]
	assert.Regexp(t, `1\.html\s+0\.2199`, iteration)
	assert.Regexp(t, `2\.html\s+0\.4292`, iteration)
	assert.Regexp(t, `3\.html\s+0\.2199`, iteration)
	assert.Regexp(t, `4\.html\s+0\.1310`, iteration)
}

func TestRootCmd_Output(t *testing.T) {
	dir := writeCorpus0(t)
	output := filepath.Join(t.TempDir(), "ranks.txt")
	stdout, _, err := execute(t, dir, "--seed", "1", "--precision", "2", "-o", output)
	require.NoError(t, err)

	contents, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, stdout, string(contents))
	assert.Regexp(t, `(?m)^2\.html\s+0\.\d{2}\s*$`, stdout)
}

func TestRootCmd_ConfigLayers(t *testing.T) {
	dir := writeCorpus0(t)
	config := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(config, []byte("samples: 100\nprecision: 3\n"), 0o644))
	t.Setenv("PAGERANK_SAMPLES", "200")

	stdout, _, err := execute(t, dir, "--config", config, "--seed", "5")
	require.NoError(t, err)
	assert.Contains(t, stdout, "(n = 200)", "environment overrides the file")
	assert.Regexp(t, `(?m)^4\.html\s+0\.\d{3}\s*$`, stdout)

	stdout, _, err = execute(t, dir, "--config", config, "--samples", "300")
	require.NoError(t, err)
	assert.Contains(t, stdout, "(n = 300)", "flags override the environment")
}

func TestRootCmd_Verbose(t *testing.T) {
	dir := writeCorpus0(t)
	_, stderr, err := execute(t, dir, "-v", "--seed", "2")
	require.NoError(t, err)
	assert.Contains(t, stderr, "component=iteration")
	assert.Contains(t, stderr, "Convergence check success")
}

func TestRootCmd_Errors(t *testing.T) {
	t.Run("missing argument", func(t *testing.T) {
		_, _, err := execute(t)
		assert.Error(t, err)
	})

	t.Run("invalid parameters", func(t *testing.T) {
		_, _, err := execute(t, writeCorpus0(t), "--damping", "1.5", "--samples", "0")
		require.Error(t, err)
		assert.ErrorContains(t, err, "damping")
		assert.ErrorContains(t, err, "samples")
	})

	t.Run("missing corpus", func(t *testing.T) {
		_, _, err := execute(t, filepath.Join(t.TempDir(), "nope"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("empty corpus", func(t *testing.T) {
		_, _, err := execute(t, t.TempDir())
		assert.ErrorIs(t, err, graph.ErrNoPages)
	})
}

func TestGraphCmd_Dot(t *testing.T) {
	dir := writeCorpus0(t)
	stdout, _, err := execute(t, "graph", dir, "--threshold", "1e-10")
	require.NoError(t, err)

	assert.Contains(t, stdout, "digraph")
	assert.Contains(t, stdout, "0.4292")
	for _, page := range []string{"1.html", "2.html", "3.html", "4.html"} {
		assert.Contains(t, stdout, page)
	}
}

func TestGraphCmd_File(t *testing.T) {
	dir := writeCorpus0(t)
	output := filepath.Join(t.TempDir(), "corpus0.svg")
	stdout, _, err := execute(t, "graph", dir, "-o", output)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	contents, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "<svg")
}

func TestGraphCmd_UnknownFormat(t *testing.T) {
	dir := writeCorpus0(t)
	_, _, err := execute(t, "graph", dir, "--format", "pdf")
	assert.ErrorIs(t, err, graph.ErrUnknownFormat)
}

func TestGraphFormat(t *testing.T) {
	cases := []struct {
		flags graphFlags
		want  string
	}{
		{graphFlags{}, "dot"},
		{graphFlags{output: "out.svg"}, "svg"},
		{graphFlags{output: "out"}, "dot"},
		{graphFlags{output: "out.svg", format: "png"}, "png"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, graphFormat(&c.flags))
	}
}
