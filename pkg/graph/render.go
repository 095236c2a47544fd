package graph

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
	"golang.org/x/xerrors"
)

var formats = map[string]graphviz.Format{
	"dot": graphviz.XDOT,
	"svg": graphviz.SVG,
	"png": graphviz.PNG,
	"jpg": graphviz.JPG,
}

// ParseFormat maps a format name (dot, svg, png, jpg) to a Graphviz format.
func ParseFormat(name string) (graphviz.Format, error) {
	format, ok := formats[strings.ToLower(name)]
	if !ok {
		return "", xerrors.Errorf("%q: %w", name, ErrUnknownFormat)
	}
	return format, nil
}

// Render draws the corpus link graph in the given format to w.
// When ranks is not nil every page is labelled with its rank.
func Render(ctx context.Context, c *Corpus, ranks map[string]float64, format string, w io.Writer) error {
	f, err := ParseFormat(format)
	if err != nil {
		return err
	}

	g, err := graphviz.New(ctx)
	if err != nil {
		return xerrors.Errorf("could not start graphviz: %w", err)
	}
	defer g.Close()
	graph, err := g.Graph()
	if err != nil {
		return xerrors.Errorf("could not create graph: %w", err)
	}
	defer graph.Close()
	graph.SetRankDir(cgraph.LRRank)

	nodes := make(map[string]*cgraph.Node, c.Len())
	for _, page := range c.pages {
		n, err := graph.CreateNodeByName(page)
		if err != nil {
			return xerrors.Errorf("could not create node %s: %w", page, err)
		}
		n.SetShape(cgraph.BoxShape)
		if rank, ok := ranks[page]; ok {
			n.SetLabel(fmt.Sprintf("%s\n%.4f", page, rank))
		}
		nodes[page] = n
	}
	for _, page := range c.pages {
		for _, link := range c.links[page] {
			name := fmt.Sprintf("%s->%s", page, link)
			if _, err := graph.CreateEdgeByName(name, nodes[page], nodes[link]); err != nil {
				return xerrors.Errorf("could not create edge %s: %w", name, err)
			}
		}
	}

	if err := g.Render(ctx, graph, f, w); err != nil {
		return xerrors.Errorf("could not render graph: %w", err)
	}
	return nil
}
