package hka

import (
	"math"
	"testing"
)

func GetAbsBig(x, y float64) (big, small float64) {
	if math.Abs(x) > math.Abs(y) {
		return x, y
	}
	return y, x
}

// AeqOrBothNan compares to a relative tolerance and treats two NaNs as equal.
func AeqOrBothNan(x, y, tol float64) bool {
	if math.IsNaN(x) && math.IsNaN(y) {
		return true
	}
	if x == y {
		return true
	}

	big, small := GetAbsBig(x, y)
	thresh := math.Abs(big) * tol
	return math.Abs(big-small) < thresh
}

func TestPyFloat(t *testing.T) {
	type test struct {
		name string
		in   float64
		out  string
	}
	tests := []test{
		test{"half", 0.5, "0.5"},
		test{"one", 1, "1.0"},
		test{"threshold", 0.9, "0.9"},
		test{"zero", 0, "0.0"},
		test{"negzero", math.Copysign(0, -1), "-0.0"},
		test{"small", 1e-05, "1e-05"},
		test{"smallfixed", 0.0001, "0.0001"},
		test{"third", 1.0 / 3.0, "0.3333333333333333"},
		test{"big", 1e16, "1e+16"},
		test{"bigfixed", 123456789, "123456789.0"},
		test{"neg", -2.5, "-2.5"},
		test{"nan", math.NaN(), "nan"},
		test{"inf", math.Inf(1), "inf"},
		test{"neginf", math.Inf(-1), "-inf"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if out := PyFloat(test.in); out != test.out {
				t.Errorf("PyFloat(%v) %q != %q", test.in, out, test.out)
			}
		})
	}
}
