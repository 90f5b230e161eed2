package hka

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestChiContingency(t *testing.T) {
	type test struct {
		name   string
		win    Counts
		genome Counts
		yates  bool
		chi2   float64
		p      float64
	}
	tests := []test{
		test{"yates", Counts{10, 20}, Counts{30, 40}, true, 0.44642857142857145, 0.5040358664525048},
		test{"noyates", Counts{10, 20}, Counts{30, 40}, false, 0.7936507936507936, 0.37299848361348714},
		test{"smallnoyates", Counts{1, 0}, Counts{1, 2}, false, 1.3333333333333333, 0.24821307898992362},
		test{"equal", Counts{1, 2}, Counts{1, 2}, true, 0, 1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res, e := ChiContingency(test.win, test.genome, test.yates)
			if e != nil {
				panic(e)
			}
			if res.Error || res.Dof != 1 {
				t.Errorf("res %v", res)
			}
			if !AeqOrBothNan(res.Chi2, test.chi2, 1e-9) {
				t.Errorf("chi2 %v != %v", res.Chi2, test.chi2)
			}
			if !AeqOrBothNan(res.P, test.p, 1e-6) {
				t.Errorf("p %v != %v", res.P, test.p)
			}
		})
	}
}

func TestChiContingencyExpected(t *testing.T) {
	res, e := ChiContingency(Counts{10, 20}, Counts{30, 40}, false)
	if e != nil {
		panic(e)
	}
	expect := [2][2]float64{{12, 18}, {28, 42}}
	for i := range expect {
		for j := range expect[i] {
			if !AeqOrBothNan(res.Expected[i][j], expect[i][j], 1e-12) {
				t.Errorf("expected %v != %v", res.Expected, expect)
			}
		}
	}
}

func TestChiContingencySentinel(t *testing.T) {
	res, e := ChiContingency(Counts{}, Counts{Poly: 7, Fixed: 9}, true)
	if e != nil {
		panic(e)
	}
	if !res.Error {
		t.Errorf("empty window not flagged")
	}
	expect := []string{"error", "1", "1", "na", "0", "0", "7", "9"}
	if f := res.Fields(); !reflect.DeepEqual(f, expect) {
		t.Errorf("fields %v != %v", f, expect)
	}
}

func TestChiContingencyZeroExpected(t *testing.T) {
	_, e := ChiContingency(Counts{Fixed: 3}, Counts{Fixed: 10}, false)
	if !errors.Is(e, ErrZeroExpected) {
		t.Errorf("error %v is not ErrZeroExpected", e)
	}
}

func TestChiGof(t *testing.T) {
	type test struct {
		name        string
		win         Counts
		pPoly, pFix float64
		chi2, p     float64
	}
	tests := []test{
		test{"match", Counts{5, 5}, 0.5, 0.5, 0, 1},
		test{"skewed", Counts{2, 0}, 0.6, 0.4, 1.3333333333333333, 0.24821307898992362},
		test{"empty", Counts{}, 0.5, 0.5, math.NaN(), math.NaN()},
		test{"noexpectedpoly", Counts{0, 4}, 0, 1, math.NaN(), math.NaN()},
		test{"nanbaseline", Counts{1, 1}, math.NaN(), math.NaN(), math.NaN(), math.NaN()},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res := ChiGof(test.win, test.pPoly, test.pFix)
			if !AeqOrBothNan(res.Chi2, test.chi2, 1e-9) {
				t.Errorf("chi2 %v != %v", res.Chi2, test.chi2)
			}
			if !AeqOrBothNan(res.P, test.p, 1e-6) {
				t.Errorf("p %v != %v", res.P, test.p)
			}
		})
	}
}
