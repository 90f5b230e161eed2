package hka

import (
	"fmt"
	"math"

	"github.com/jgbaldwinbrown/fastats/pkg"
	"github.com/jgbaldwinbrown/iter"
)

type Windowing string

const (
	SlidingWindows    Windowing = "sliding"
	ChromosomeWindows Windowing = "chromosome"
	ExonWindows       Windowing = "exons"
)

// Region is a named span of one chromosome. Start and End are the inclusive
// site bounds used for counting.
type Region struct {
	Name string
	fastats.ChrSpan
}

func (r Region) String() string {
	return fmt.Sprintf("%v\t%v\t%v\t%v", r.Name, r.Chr, r.Start, r.End)
}

// Windows lists the sliding windows on one chromosome. Positions are
// 1-based, so the first window starts at 1; a window is [start,
// start+size] inclusive and windows are generated while start+size <=
// maxpos.
func Windows(chrom string, maxpos, size, slide int64) []Region {
	var out []Region
	if size < 0 || slide <= 0 {
		return out
	}
	for start := int64(1); start+size <= maxpos; start += slide {
		out = append(out, Region{
			Name:    chrom,
			ChrSpan: fastats.ChrSpan{Chr: chrom, Span: fastats.Span{Start: start, End: start + size}},
		})
	}
	return out
}

// SlidingRegions yields the windows of every chromosome, chromosomes in
// sorted order.
func SlidingRegions(x *SiteIndex, size, slide int64) *iter.Iterator[Region] {
	return &iter.Iterator[Region]{Iteratef: func(yield func(Region) error) error {
		for _, chrom := range x.Chroms {
			for _, r := range Windows(chrom, x.MaxPos(chrom), size, slide) {
				if e := yield(r); e != nil {
					return e
				}
			}
		}
		return nil
	}}
}

// ChromosomeRegions yields one region covering each whole chromosome.
func ChromosomeRegions(x *SiteIndex) *iter.Iterator[Region] {
	return &iter.Iterator[Region]{Iteratef: func(yield func(Region) error) error {
		for _, chrom := range x.Chroms {
			r := Region{
				Name:    chrom,
				ChrSpan: fastats.ChrSpan{Chr: chrom, Span: fastats.Span{Start: math.MinInt64, End: math.MaxInt64}},
			}
			if e := yield(r); e != nil {
				return e
			}
		}
		return nil
	}}
}
