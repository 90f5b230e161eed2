package hka

import (
	"sort"
)

type chromIndex struct {
	Pos      []int64
	PolyCum  [][]int64
	FixedCum [][]int64
}

// SiteIndex answers "how many fixed and polymorphic sites fall in this
// span" for every population, using per-chromosome prefix sums over the
// position-sorted sites.
type SiteIndex struct {
	Chroms  []string
	NPops   int
	byChrom map[string]*chromIndex
}

func NewSiteIndex(sites []Site, labels []Labels) *SiteIndex {
	x := &SiteIndex{NPops: len(labels), byChrom: map[string]*chromIndex{}}

	members := map[string][]int{}
	for i, s := range sites {
		if _, ok := members[s.Chromo]; !ok {
			x.Chroms = append(x.Chroms, s.Chromo)
		}
		members[s.Chromo] = append(members[s.Chromo], i)
	}
	sort.Strings(x.Chroms)

	for _, chrom := range x.Chroms {
		idxs := members[chrom]
		sort.SliceStable(idxs, func(i, j int) bool {
			return sites[idxs[i]].Position < sites[idxs[j]].Position
		})

		ci := &chromIndex{
			Pos:      make([]int64, len(idxs)),
			PolyCum:  make([][]int64, len(labels)),
			FixedCum: make([][]int64, len(labels)),
		}
		for p := range labels {
			ci.PolyCum[p] = make([]int64, len(idxs)+1)
			ci.FixedCum[p] = make([]int64, len(idxs)+1)
		}
		for i, si := range idxs {
			ci.Pos[i] = sites[si].Position
			for p, l := range labels {
				ci.PolyCum[p][i+1] = ci.PolyCum[p][i] + b2i(l.Poly[si])
				ci.FixedCum[p][i+1] = ci.FixedCum[p][i] + b2i(l.Fixed[si])
			}
		}
		x.byChrom[chrom] = ci
	}
	return x
}

func b2i(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// MaxPos is the largest site position on chrom, or 0 if it has no sites.
func (x *SiteIndex) MaxPos(chrom string) int64 {
	ci, ok := x.byChrom[chrom]
	if !ok || len(ci.Pos) == 0 {
		return 0
	}
	return ci.Pos[len(ci.Pos)-1]
}

// Count sums the calls of each population over sites on chrom with
// lo <= position <= hi. Unknown chromosomes and empty spans give zeros.
func (x *SiteIndex) Count(chrom string, lo, hi int64) []Counts {
	out := make([]Counts, x.NPops)
	ci, ok := x.byChrom[chrom]
	if !ok || lo > hi {
		return out
	}
	a := sort.Search(len(ci.Pos), func(i int) bool { return ci.Pos[i] >= lo })
	b := sort.Search(len(ci.Pos), func(i int) bool { return ci.Pos[i] > hi })
	for p := range out {
		out[p].Poly = ci.PolyCum[p][b] - ci.PolyCum[p][a]
		out[p].Fixed = ci.FixedCum[p][b] - ci.FixedCum[p][a]
	}
	return out
}

func (x *SiteIndex) CountRegion(r Region) []Counts {
	return x.Count(r.Chr, r.Start, r.End)
}
