package hka

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

var ErrZeroExpected = errors.New("expected frequency table has a zero element")

type TestMode string

const (
	ContingencyTest      TestMode = "contingency"
	ContingencyYatesTest TestMode = "contingency-yates"
	GofTest              TestMode = "gof"
)

// ContingencyResult is one region's 2x2 test against the genome-wide
// baseline. Error marks a region with no classified sites, for which no
// test was run.
type ContingencyResult struct {
	Chi2     float64
	P        float64
	Dof      int64
	Expected [2][2]float64

	WinPoly     int64
	WinFixed    int64
	GenomePoly  int64
	GenomeFixed int64

	Error bool
}

// Fields renders the result as chi2, p, dof, expected, then the four counts.
// An errored result gives "error", 1, 1, "na".
func (c ContingencyResult) Fields() []string {
	counts := []string{itoa(c.WinPoly), itoa(c.WinFixed), itoa(c.GenomePoly), itoa(c.GenomeFixed)}
	if c.Error {
		return append([]string{"error", "1", "1", "na"}, counts...)
	}

	exp := make([]string, 0, 4)
	for _, row := range c.Expected {
		for _, v := range row {
			exp = append(exp, PyFloat(v))
		}
	}
	return append([]string{PyFloat(c.Chi2), PyFloat(c.P), itoa(c.Dof), strings.Join(exp, ",")}, counts...)
}

func chiSurvival(chi2, dof float64) float64 {
	if math.IsNaN(chi2) {
		return math.NaN()
	}
	if math.IsInf(chi2, 1) {
		return 0
	}
	return distuv.ChiSquared{K: dof}.Survival(chi2)
}

// ChiContingency tests the table [[win.Poly, win.Fixed], [genome.Poly,
// genome.Fixed]] for independence. With yates set, each observed cell moves
// half a count toward its expected value first, never past it.
func ChiContingency(win, genome Counts, yates bool) (ContingencyResult, error) {
	res := ContingencyResult{
		WinPoly:     win.Poly,
		WinFixed:    win.Fixed,
		GenomePoly:  genome.Poly,
		GenomeFixed: genome.Fixed,
	}
	if win.Total() == 0 {
		res.Error = true
		res.P = 1
		res.Dof = 1
		return res, nil
	}

	obs := [2][2]float64{
		{float64(win.Poly), float64(win.Fixed)},
		{float64(genome.Poly), float64(genome.Fixed)},
	}
	rows := [2]float64{obs[0][0] + obs[0][1], obs[1][0] + obs[1][1]}
	cols := [2]float64{obs[0][0] + obs[1][0], obs[0][1] + obs[1][1]}
	total := rows[0] + rows[1]

	o := make([]float64, 0, 4)
	x := make([]float64, 0, 4)
	for i := range obs {
		for j := range obs[i] {
			exp := rows[i] * cols[j] / total
			if exp == 0 {
				return res, fmt.Errorf("ChiContingency: %w; table %v", ErrZeroExpected, obs)
			}
			res.Expected[i][j] = exp

			ob := obs[i][j]
			if yates {
				diff := exp - ob
				ob += math.Copysign(math.Min(0.5, math.Abs(diff)), diff)
			}
			o = append(o, ob)
			x = append(x, exp)
		}
	}

	res.Dof = 1
	res.Chi2 = stat.ChiSquare(o, x)
	res.P = chiSurvival(res.Chi2, float64(res.Dof))
	return res, nil
}

type GofResult struct {
	Chi2 float64
	P    float64
}

// ChiGof compares a window's counts to the counts expected from the
// genome-wide proportions, with one degree of freedom. Empty windows are
// not special-cased and come out NaN.
func ChiGof(win Counts, pPoly, pFixed float64) GofResult {
	n := float64(win.Total())
	obs := []float64{float64(win.Poly), float64(win.Fixed)}
	exp := []float64{n * pPoly, n * pFixed}

	for i := range obs {
		// stat.ChiSquare skips 0/0 cells; here they poison the statistic.
		if obs[i] == 0 && exp[i] == 0 {
			return GofResult{Chi2: math.NaN(), P: math.NaN()}
		}
	}
	chi2 := stat.ChiSquare(obs, exp)
	return GofResult{Chi2: chi2, P: chiSurvival(chi2, 1)}
}
