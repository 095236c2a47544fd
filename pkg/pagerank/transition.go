package pagerank

import (
	"fmt"

	"github.com/lioia/corpus-pagerank/pkg/graph"
)

// Transition returns the probability distribution over the page visited
// after page.
//
// Every page receives (1-d)/N for the random jump; each effective link of
// page receives d/|links| on top. A dangling page links to the whole corpus,
// so its distribution is uniform.
//
// Transition panics if page is not in c or d is outside [0, 1].
func Transition(c *graph.Corpus, page string, damping float64) Distribution {
	if err := checkCorpus(c); err != nil {
		panic(err.Error())
	}
	if !c.Has(page) {
		panic(fmt.Sprintf("pagerank: page %q is not in the corpus", page))
	}
	if err := checkDamping(damping); err != nil {
		panic(err.Error())
	}
	return fromVector(c.Pages(), transitionWeights(c, page, damping))
}

// transitionWeights is Transition indexed like c.Pages().
func transitionWeights(c *graph.Corpus, page string, damping float64) []float64 {
	n := float64(c.Len())
	weights := make([]float64, c.Len())
	for i := range weights {
		weights[i] = (1 - damping) / n
	}
	links := c.EffectiveLinks(page)
	share := damping / float64(len(links))
	for _, link := range links {
		i, _ := c.Index(link)
		weights[i] += share
	}
	return weights
}
