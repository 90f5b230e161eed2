package hka

import (
	"fmt"
	"log"
	"math"

	"github.com/montanaflynn/stats"
)

// Counts are the polymorphic and fixed site totals for one population in
// one region, or genome-wide.
type Counts struct {
	Poly  int64
	Fixed int64
}

func (c Counts) Total() int64 {
	return c.Poly + c.Fixed
}

// Proportions divides by Total without a zero check: an empty population
// gives NaN, which callers let propagate.
func (c Counts) Proportions() (poly, fixed float64) {
	tot := float64(c.Total())
	return float64(c.Poly) / tot, float64(c.Fixed) / tot
}

func sumCalls(calls []bool) int64 {
	var n int64
	for _, c := range calls {
		n += b2i(c)
	}
	return n
}

// GenomeWide sums each population's calls over every merged site.
func GenomeWide(labels []Labels) []Counts {
	out := make([]Counts, 0, len(labels))
	for _, l := range labels {
		out = append(out, Counts{Poly: sumCalls(l.Poly), Fixed: sumCalls(l.Fixed)})
	}
	return out
}

// FreqSummary describes one population's knownEM values over the merged
// sites.
type FreqSummary struct {
	Mean   float64
	Median float64
	Stdev  float64
}

// SummarizeFreqs gives every population's frequency summary. No sites
// gives NaN summaries.
func SummarizeFreqs(sites []Site, npops int) ([]FreqSummary, error) {
	h := handle("SummarizeFreqs: %w")
	out := make([]FreqSummary, npops)
	if len(sites) == 0 {
		for i := range out {
			out[i] = FreqSummary{math.NaN(), math.NaN(), math.NaN()}
		}
		return out, nil
	}

	freqs := make([]float64, len(sites))
	for p := range out {
		for i, s := range sites {
			freqs[i] = s.Freqs[p]
		}
		var e error
		if out[p].Mean, e = stats.Mean(freqs); e != nil {
			return nil, h(e)
		}
		if out[p].Median, e = stats.Median(freqs); e != nil {
			return nil, h(e)
		}
		if out[p].Stdev, e = stats.StandardDeviationPopulation(freqs); e != nil {
			return nil, h(e)
		}
	}
	return out, nil
}

func LogFreqs(lg *log.Logger, pops []string, sums []FreqSummary) {
	for i, s := range sums {
		lg.Printf("Allele frequency mean, median and sd %v: %v %v %v", popName(pops, i), PyFloat(s.Mean), PyFloat(s.Median), PyFloat(s.Stdev))
	}
}

// LogGenomeWide prints the per-population summary shown before the region
// loop starts.
func LogGenomeWide(lg *log.Logger, pops []string, genome []Counts) {
	for i, c := range genome {
		pp, fp := c.Proportions()
		lg.Printf("Proportion of polymorphic and fixed %v: %v %v", popName(pops, i), PyFloat(pp), PyFloat(fp))
	}
	for i, c := range genome {
		lg.Printf("Count of polymorphic and fixed %v: %v %v", popName(pops, i), c.Poly, c.Fixed)
	}
	for i, c := range genome {
		lg.Printf("Total sites %v: %v", popName(pops, i), c.Total())
	}
}

func popName(pops []string, i int) string {
	if i < len(pops) {
		return pops[i]
	}
	return fmt.Sprintf("pop%v", i+1)
}
