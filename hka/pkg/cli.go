package hka

import (
	"fmt"
	"strconv"
)

type PairArgs struct {
	FixedAF float64
	Pop1    string
	Pop2    string
}

// ParsePairArgs reads the positionals "fixed_af pop1 pop2".
func ParsePairArgs(args []string) (PairArgs, error) {
	var a PairArgs
	if len(args) != 3 {
		return a, fmt.Errorf("ParsePairArgs: want fixed_af pop1 pop2, got %v", args)
	}
	f, e := strconv.ParseFloat(args[0], 64)
	if e != nil {
		return a, fmt.Errorf("ParsePairArgs: fixed_af: %w", e)
	}
	a.FixedAF = f
	a.Pop1 = args[1]
	a.Pop2 = args[2]
	return a, nil
}

type WindowArgs struct {
	FixedAF    float64
	Pops       [3]string
	WindowSize int64
	Slide      int64
}

// ParseWindowArgs reads "fixed_af pop1 pop2 pop3 window_size slide".
func ParseWindowArgs(args []string) (WindowArgs, error) {
	h := handle("ParseWindowArgs: %w")
	var a WindowArgs
	if len(args) != 6 {
		return a, h(fmt.Errorf("want fixed_af pop1 pop2 pop3 window_size slide, got %v", args))
	}

	var e error
	if a.FixedAF, e = strconv.ParseFloat(args[0], 64); e != nil {
		return a, h(e)
	}
	copy(a.Pops[:], args[1:4])
	if a.WindowSize, e = strconv.ParseInt(args[4], 10, 64); e != nil {
		return a, h(e)
	}
	if a.Slide, e = strconv.ParseInt(args[5], 10, 64); e != nil {
		return a, h(e)
	}
	return a, nil
}

func (a WindowArgs) Config() Config {
	return WindowConfig(a.FixedAF, a.Pops[0], a.Pops[1], a.Pops[2], a.WindowSize, a.Slide)
}
