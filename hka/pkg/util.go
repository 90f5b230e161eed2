package hka

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

func handle(format string) func(...any) error {
	return func(args ...any) error {
		return fmt.Errorf(format, args...)
	}
}

// PyFloat formats f like Python's repr: shortest round-trip digits, ".0" on
// integral values, exponent form outside [1e-4, 1e16).
func PyFloat(f float64) string {
	if math.IsNaN(f) {
		return "nan"
	}
	if math.IsInf(f, 1) {
		return "inf"
	}
	if math.IsInf(f, -1) {
		return "-inf"
	}
	if f == 0 {
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	_, expstr, _ := strings.Cut(sci, "e")
	exp, e := strconv.Atoi(expstr)
	if e != nil {
		panic(e)
	}
	if exp < -4 || exp >= 16 {
		return sci
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func itoa(i int64) string {
	return strconv.FormatInt(i, 10)
}
