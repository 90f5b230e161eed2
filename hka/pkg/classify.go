package hka

import (
	"fmt"
)

type Rule string

const (
	// SimpleRule compares frequencies only.
	SimpleRule Rule = "simple"
	// TriallelicRule also calls a site fixed when both populations are
	// fixed but carry different minor alleles. Two populations only.
	TriallelicRule Rule = "triallelic"
)

// BandWidth is the width of the polymorphic band [1-t, t]; the band is
// empty when this is negative.
func BandWidth(t float64) float64 {
	return t - (1 - t)
}

// InBand reports whether af falls in the polymorphic band [1-t, t].
func InBand(t, af float64) bool {
	return af >= 1-t && af <= t
}

// OutsideBand is the complement of InBand: the population is confidently
// fixed for one allele or the other.
func OutsideBand(t, af float64) bool {
	return af < 1-t || af > t
}

// Fixed reports whether the focal frequency af1 sits above t while every
// other population sits below 1-t, or the reverse. Both bounds are strict.
func Fixed(t, af1 float64, others ...float64) bool {
	hi := af1 > t
	lo := af1 < 1-t
	for _, af := range others {
		hi = hi && af < 1-t
		lo = lo && af > t
	}
	return hi || lo
}

// FixedTriallelic extends Fixed: a site the simple rule leaves unfixed is
// still fixed when both populations sit outside the band and recorded
// different minor alleles. A focal population inside the band is never
// fixed, so Fixed and PolyBiallelic stay exclusive.
func FixedTriallelic(t, af1, af2 float64, minor1, minor2 string) bool {
	simple := Fixed(t, af1, af2)
	tri := !simple && OutsideBand(t, af1) && OutsideBand(t, af2) && minor1 != minor2
	return simple || tri
}

// Poly reports whether af is inside the band, bounds included.
func Poly(t, af float64) bool {
	return InBand(t, af)
}

// PolyBiallelic only calls the focal site polymorphic when the comparator
// population is confidently fixed.
func PolyBiallelic(t, af1, af2 float64) bool {
	return InBand(t, af1) && OutsideBand(t, af2)
}

// Labels holds one population's calls for every merged site.
type Labels struct {
	Fixed []bool
	Poly  []bool
}

func others(freqs []float64, focal int, buf []float64) []float64 {
	buf = buf[:0]
	for i, f := range freqs {
		if i != focal {
			buf = append(buf, f)
		}
	}
	return buf
}

// ClassifyPop labels every site for the focal population.
func ClassifyPop(sites []Site, focal int, rule Rule, t float64) (Labels, error) {
	l := Labels{
		Fixed: make([]bool, len(sites)),
		Poly:  make([]bool, len(sites)),
	}
	var buf []float64

	for i, s := range sites {
		if focal >= len(s.Freqs) {
			return l, fmt.Errorf("ClassifyPop: site %v:%v has %v populations, focal %v", s.Chromo, s.Position, len(s.Freqs), focal)
		}
		af := s.Freqs[focal]
		switch rule {
		case SimpleRule:
			buf = others(s.Freqs, focal, buf)
			l.Fixed[i] = Fixed(t, af, buf...)
			l.Poly[i] = Poly(t, af)
		case TriallelicRule:
			if len(s.Freqs) != 2 {
				return l, fmt.Errorf("ClassifyPop: %w; triallelic rule needs 2, got %v", ErrPopCount, len(s.Freqs))
			}
			other := 1 - focal
			l.Fixed[i] = FixedTriallelic(t, af, s.Freqs[other], s.Minors[focal], s.Minors[other])
			l.Poly[i] = PolyBiallelic(t, af, s.Freqs[other])
		default:
			return l, fmt.Errorf("ClassifyPop: %w: unknown rule %q", ErrBadConfig, rule)
		}
	}
	return l, nil
}

// ClassifyAll runs ClassifyPop once per population.
func ClassifyAll(sites []Site, npops int, rule Rule, t float64) ([]Labels, error) {
	out := make([]Labels, 0, npops)
	for pop := 0; pop < npops; pop++ {
		l, e := ClassifyPop(sites, pop, rule, t)
		if e != nil {
			return nil, e
		}
		out = append(out, l)
	}
	return out, nil
}
