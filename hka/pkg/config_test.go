package hka

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestDefaultOutpath(t *testing.T) {
	type test struct {
		name string
		cfg  Config
		out  string
	}
	tests := []test{
		test{"exons", ExonConfig(0.9, "north", "south", false), "north.south.fa0.9HKAallexons_noYates_format.tab"},
		test{"genes", GeneConfig(1, "north", "south", true), "north.south.fa1.0.HKAgene_test"},
		test{"genestri", GeneTriallelicConfig(0.95, "a", "b", false), "a.b.fa0.95.HKAgene_test"},
		test{"windows", WindowConfig(0.9, "a", "b", "c", 100, 50), "a.b.c.HKA_test"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := test.cfg.WithDefaults()
			if cfg.Outpath != test.out {
				t.Errorf("outpath %q != %q", cfg.Outpath, test.out)
			}
			if e := cfg.Validate(); e != nil {
				t.Errorf("preset invalid: %v", e)
			}
		})
	}
}

func TestMafPaths(t *testing.T) {
	cfg := GeneConfig(0.9, "dir/north", "south", true).WithDefaults()
	if p := cfg.MafPaths(); !reflect.DeepEqual(p, []string{"dir/north.mafs", "south.mafs"}) {
		t.Errorf("paths %v", p)
	}
	if cfg.NeedMinor() {
		t.Errorf("simple gene run should not need minor")
	}
	if !GeneTriallelicConfig(0.9, "a", "b", false).NeedMinor() {
		t.Errorf("triallelic run should need minor")
	}
}

func TestValidate(t *testing.T) {
	type test struct {
		name string
		cfg  Config
		err  error
	}
	gof := GeneConfig(0.9, "a", "b", true)
	gof.Test = GofTest
	sliding := GeneConfig(0.9, "a", "b", true)
	sliding.Windowing = SlidingWindows
	tri := WindowConfig(0.9, "a", "b", "c", 10, 10)
	tri.Rule = TriallelicRule
	noslide := WindowConfig(0.9, "a", "b", "c", 10, 0)
	threecont := ExonConfig(0.9, "a", "b", false)
	threecont.Pops = append(threecont.Pops, "c")
	onepop := ExonConfig(0.9, "a", "b", false)
	onepop.Pops = onepop.Pops[:1]
	badrule := GeneConfig(0.9, "a", "b", true)
	badrule.Rule = "fancy"

	tests := []test{
		test{"gofgenes", gof, ErrBadConfig},
		test{"slidingcontingency", sliding, ErrBadConfig},
		test{"trithree", tri, ErrBadConfig},
		test{"noslide", noslide, ErrBadConfig},
		test{"threecontingency", threecont, ErrBadConfig},
		test{"onepop", onepop, ErrPopCount},
		test{"badrule", badrule, ErrBadConfig},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if e := test.cfg.Validate(); !errors.Is(e, test.err) {
				t.Errorf("error %v is not %v", e, test.err)
			}
		})
	}
}

const jobsIn = `
{
	"FixedAF": 0.9,
	"Pops": ["north", "south"],
	"Rule": "triallelic",
	"Windowing": "chromosome",
	"Test": "contingency"
}
{
	"FixedAF": 0.8,
	"Pops": ["a", "b", "c"],
	"Rule": "simple",
	"Windowing": "sliding",
	"Test": "gof",
	"JoinMinor": true,
	"WindowSize": 1000,
	"Slide": 500,
	"Outpath": "out.txt.gz"
}
`

func TestGetJobs(t *testing.T) {
	jobs, e := GetJobs(strings.NewReader(jobsIn))
	if e != nil {
		panic(e)
	}
	if len(jobs) != 2 {
		t.Fatalf("len(jobs) %v != 2", len(jobs))
	}

	expect := GeneTriallelicConfig(0.9, "north", "south", false)
	if !reflect.DeepEqual(jobs[0], expect) {
		t.Errorf("job 0 %#v != %#v", jobs[0], expect)
	}

	expect = WindowConfig(0.8, "a", "b", "c", 1000, 500)
	expect.Outpath = "out.txt.gz"
	if !reflect.DeepEqual(jobs[1], expect) {
		t.Errorf("job 1 %#v != %#v", jobs[1], expect)
	}
	for _, j := range jobs {
		if e := j.Validate(); e != nil {
			t.Errorf("job %v invalid: %v", j, e)
		}
	}
}

func TestGetConfigFromReader(t *testing.T) {
	_, e := GetConfigFromReader(strings.NewReader(`{"FixedAF": "high"}`))
	if e == nil {
		t.Errorf("bad FixedAF decoded without error")
	}
}

func TestParseArgs(t *testing.T) {
	p, e := ParsePairArgs([]string{"0.9", "north", "south"})
	if e != nil {
		panic(e)
	}
	if p != (PairArgs{0.9, "north", "south"}) {
		t.Errorf("pair args %v", p)
	}
	if _, e := ParsePairArgs([]string{"0.9", "north"}); e == nil {
		t.Errorf("two positionals accepted")
	}

	w, e := ParseWindowArgs([]string{"0.9", "a", "b", "c", "100", "50"})
	if e != nil {
		panic(e)
	}
	if cfg := w.Config(); !reflect.DeepEqual(cfg, WindowConfig(0.9, "a", "b", "c", 100, 50)) {
		t.Errorf("window config %v", cfg)
	}
	if _, e := ParseWindowArgs([]string{"0.9", "a", "b", "c", "100", "half"}); e == nil {
		t.Errorf("bad slide accepted")
	}
}
