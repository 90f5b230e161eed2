package hka

import (
	"encoding/csv"
	"fmt"
	"io"
)

type Layout int

const (
	ExonLayout Layout = iota
	GeneLayout
	WindowLayout
)

var windowPCols = []string{"chi2_p1", "chi2_2", "chi_p3"}

// Header names the output columns. The window layout has one p-value column
// per population.
func Header(l Layout, npops int) []string {
	switch l {
	case ExonLayout:
		return []string{"gene", "chi2", "pvalue", "poly_gene", "fix_gene", "poly_transcriptome", "fix_transcriptome"}
	case GeneLayout:
		return []string{"gene", "chi2", "pvalue", "degrees of freedom", "poly_gene", "fix_gene", "poly_transcriptome", "fix_transcriptome"}
	default:
		if npops > len(windowPCols) {
			npops = len(windowPCols)
		}
		return append([]string{"chromosome", "w_start", "w_end"}, windowPCols[:npops]...)
	}
}

// ReportWriter streams rows to a tab-separated table, one call per region.
type ReportWriter struct {
	cw     *csv.Writer
	layout Layout
	line   []string
}

func NewReportWriter(w io.Writer, l Layout) *ReportWriter {
	cw := csv.NewWriter(w)
	cw.Comma = rune('\t')
	return &ReportWriter{cw: cw, layout: l}
}

func (rw *ReportWriter) WriteHeader(npops int) error {
	if e := rw.cw.Write(Header(rw.layout, npops)); e != nil {
		return fmt.Errorf("WriteHeader: %w", e)
	}
	return nil
}

func (rw *ReportWriter) WriteContingency(name string, c ContingencyResult) error {
	f := c.Fields()
	rw.line = append(rw.line[:0], name)

	switch rw.layout {
	case ExonLayout:
		rw.line = append(rw.line, f[0], f[1])
	case GeneLayout:
		rw.line = append(rw.line, f[0], f[1], f[2])
	default:
		return fmt.Errorf("WriteContingency: %w: layout %v has no contingency columns", ErrBadConfig, rw.layout)
	}
	rw.line = append(rw.line, f[4:]...)

	if e := rw.cw.Write(rw.line); e != nil {
		return fmt.Errorf("WriteContingency: %w", e)
	}
	return nil
}

func (rw *ReportWriter) WriteWindow(r Region, res []GofResult) error {
	rw.line = append(rw.line[:0], r.Chr, itoa(r.Start), itoa(r.End))
	for _, g := range res {
		rw.line = append(rw.line, PyFloat(g.P))
	}

	if e := rw.cw.Write(rw.line); e != nil {
		return fmt.Errorf("WriteWindow: %w", e)
	}
	return nil
}

func (rw *ReportWriter) Flush() error {
	rw.cw.Flush()
	return rw.cw.Error()
}
