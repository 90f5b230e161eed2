package hka

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jgbaldwinbrown/csvh"
	"github.com/jgbaldwinbrown/fastats/pkg"
	"github.com/jgbaldwinbrown/fasttsv"
	"github.com/jgbaldwinbrown/iter"
	"github.com/jgbaldwinbrown/lscan/pkg"
)

const DefaultExonsPath = "./imi_combined_targetedAndflanking_geneid_split.bed"

var contigSplit = lscan.ByByte('_')

// ExonContig drops the last two underscore-separated tokens of a
// region-qualified name: "scaffold_12_exon_3" -> "scaffold_12". Names with
// fewer than three tokens give "".
func ExonContig(chromo string, buf []string) string {
	buf = lscan.SplitByFunc(buf[:0], chromo, contigSplit)
	if len(buf) <= 2 {
		return ""
	}
	return strings.Join(buf[:len(buf)-2], "_")
}

// ParseExon turns one coordinate row (chromo, e_start, e_end) into a region
// over sites with e_start < position <= e_end.
func ParseExon(line []string, buf []string) (Region, error) {
	if len(line) < 3 {
		return Region{}, fmt.Errorf("ParseExon: line %v too short", line)
	}
	start, e := strconv.ParseInt(line[1], 10, 64)
	if e != nil {
		return Region{}, fmt.Errorf("ParseExon: %w", e)
	}
	end, e := strconv.ParseInt(line[2], 10, 64)
	if e != nil {
		return Region{}, fmt.Errorf("ParseExon: %w", e)
	}

	name := strings.Clone(line[0])
	return Region{
		Name:    name,
		ChrSpan: fastats.ChrSpan{Chr: ExonContig(name, buf), Span: fastats.Span{Start: start + 1, End: end}},
	}, nil
}

// ExonRegions streams the coordinate table in file order.
func ExonRegions(r io.Reader) *iter.Iterator[Region] {
	return &iter.Iterator[Region]{Iteratef: func(yield func(Region) error) error {
		var buf []string
		s := fasttsv.NewScanner(r)
		for s.Scan() {
			line := s.Line()
			if len(line) == 0 || (len(line) == 1 && line[0] == "") {
				continue
			}
			reg, e := ParseExon(line, buf)
			if e != nil {
				return e
			}
			if e := yield(reg); e != nil {
				return e
			}
		}
		return nil
	}}
}

func ExonRegionsPath(path string) *iter.Iterator[Region] {
	return &iter.Iterator[Region]{Iteratef: func(yield func(Region) error) (err error) {
		r, e := csvh.OpenMaybeGz(path)
		if e != nil {
			return fmt.Errorf("ExonRegionsPath: %w", e)
		}
		defer func() { csvh.DeferE(&err, r.Close()) }()

		return ExonRegions(r).Iterate(yield)
	}}
}
