package pagerank

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Distribution associates every page with a probability.
// Transition and both estimators return one entry per corpus page.
type Distribution map[string]float64

// Pages returns the pages of d in sorted order.
func (d Distribution) Pages() []string {
	pages := make([]string, 0, len(d))
	for page := range d {
		pages = append(pages, page)
	}
	sort.Strings(pages)
	return pages
}

// Values returns the probabilities of d ordered as Pages.
func (d Distribution) Values() []float64 {
	pages := d.Pages()
	values := make([]float64, len(pages))
	for i, page := range pages {
		values[i] = d[page]
	}
	return values
}

// Sum adds up every probability in page order, so repeated calls agree
// bit for bit.
func (d Distribution) Sum() float64 {
	return floats.Sum(d.Values())
}

// Distance computes the L1 distance between two distributions.
// Pages missing from one side count as zero.
func (d Distribution) Distance(other Distribution) float64 {
	distance := 0.0
	for page := range union(d, other) {
		distance += math.Abs(d[page] - other[page])
	}
	return distance
}

// MaxDelta returns the largest per-page absolute difference.
func (d Distribution) MaxDelta(other Distribution) float64 {
	delta := 0.0
	for page := range union(d, other) {
		delta = math.Max(delta, math.Abs(d[page]-other[page]))
	}
	return delta
}

func union(a, b Distribution) map[string]struct{} {
	pages := make(map[string]struct{}, len(a))
	for page := range a {
		pages[page] = struct{}{}
	}
	for page := range b {
		pages[page] = struct{}{}
	}
	return pages
}

func fromVector(pages []string, vector []float64) Distribution {
	d := make(Distribution, len(pages))
	for i, page := range pages {
		d[page] = vector[i]
	}
	return d
}
