package hka

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var ErrBadConfig = errors.New("bad config")

// Config selects one HKA run: which populations to load, how sites are
// classified, how they are grouped into regions and which test is run per
// region.
type Config struct {
	FixedAF   float64
	Pops      []string
	MafSuffix string

	Rule      Rule
	Windowing Windowing
	Test      TestMode
	JoinMinor bool

	WindowSize int64
	Slide      int64
	ExonsPath  string

	Outpath       string
	ProgressEvery int
}

func ExonConfig(fixedAF float64, pop1, pop2 string, yates bool) Config {
	c := Config{
		FixedAF:       fixedAF,
		Pops:          []string{pop1, pop2},
		Rule:          SimpleRule,
		Windowing:     ExonWindows,
		Test:          ContingencyTest,
		ExonsPath:     DefaultExonsPath,
		ProgressEvery: 1000,
	}
	if yates {
		c.Test = ContingencyYatesTest
	}
	return c
}

func GeneConfig(fixedAF float64, pop1, pop2 string, yates bool) Config {
	c := Config{
		FixedAF:   fixedAF,
		Pops:      []string{pop1, pop2},
		Rule:      SimpleRule,
		Windowing: ChromosomeWindows,
		Test:      ContingencyTest,
	}
	if yates {
		c.Test = ContingencyYatesTest
	}
	return c
}

func GeneTriallelicConfig(fixedAF float64, pop1, pop2 string, yates bool) Config {
	c := GeneConfig(fixedAF, pop1, pop2, yates)
	c.Rule = TriallelicRule
	return c
}

func WindowConfig(fixedAF float64, pop1, pop2, pop3 string, size, slide int64) Config {
	return Config{
		FixedAF:    fixedAF,
		Pops:       []string{pop1, pop2, pop3},
		Rule:       SimpleRule,
		Windowing:  SlidingWindows,
		Test:       GofTest,
		JoinMinor:  true,
		WindowSize: size,
		Slide:      slide,
	}
}

// WithDefaults fills the suffix, exon table and output path when unset.
func (c Config) WithDefaults() Config {
	if c.MafSuffix == "" {
		c.MafSuffix = ".mafs"
	}
	if c.Windowing == ExonWindows && c.ExonsPath == "" {
		c.ExonsPath = DefaultExonsPath
	}
	if c.Outpath == "" {
		c.Outpath = c.DefaultOutpath()
	}
	return c
}

func (c Config) DefaultOutpath() string {
	switch c.Windowing {
	case ExonWindows:
		return fmt.Sprintf("%v.fa%vHKAallexons_noYates_format.tab", strings.Join(c.Pops, "."), PyFloat(c.FixedAF))
	case ChromosomeWindows:
		return fmt.Sprintf("%v.fa%v.HKAgene_test", strings.Join(c.Pops, "."), PyFloat(c.FixedAF))
	default:
		return strings.Join(c.Pops, ".") + ".HKA_test"
	}
}

func (c Config) MafPaths() []string {
	out := make([]string, 0, len(c.Pops))
	for _, pop := range c.Pops {
		out = append(out, pop+c.MafSuffix)
	}
	return out
}

func (c Config) NeedMinor() bool {
	return c.JoinMinor || c.Rule == TriallelicRule
}

func (c Config) Layout() Layout {
	switch c.Windowing {
	case ExonWindows:
		return ExonLayout
	case ChromosomeWindows:
		return GeneLayout
	default:
		return WindowLayout
	}
}

// Validate checks that the strategies fit together. The threshold itself
// is not range-checked.
func (c Config) Validate() error {
	h := func(format string, args ...any) error {
		return fmt.Errorf("Validate: %w: "+format, append([]any{ErrBadConfig}, args...)...)
	}

	if len(c.Pops) < 2 || len(c.Pops) > 3 {
		return fmt.Errorf("Validate: %w; got %v", ErrPopCount, len(c.Pops))
	}
	switch c.Rule {
	case SimpleRule:
	case TriallelicRule:
		if len(c.Pops) != 2 {
			return h("triallelic rule needs 2 populations, got %v", len(c.Pops))
		}
	default:
		return h("unknown rule %q", c.Rule)
	}

	switch c.Test {
	case ContingencyTest, ContingencyYatesTest:
		if len(c.Pops) != 2 {
			return h("contingency test needs 2 populations, got %v", len(c.Pops))
		}
		if c.Windowing == SlidingWindows {
			return h("sliding windows need the gof test")
		}
	case GofTest:
		if c.Windowing != SlidingWindows {
			return h("gof test needs sliding windows")
		}
	default:
		return h("unknown test %q", c.Test)
	}

	switch c.Windowing {
	case SlidingWindows:
		if c.WindowSize <= 0 || c.Slide <= 0 {
			return h("window size %v and slide %v must be positive", c.WindowSize, c.Slide)
		}
	case ExonWindows:
		if c.ExonsPath == "" {
			return h("missing ExonsPath")
		}
	case ChromosomeWindows:
	default:
		return h("unknown windowing %q", c.Windowing)
	}
	return nil
}

func GetConfigFromReader(r io.Reader) (Config, error) {
	h := handle("GetConfigFromReader: %w")
	var c Config

	dec := json.NewDecoder(r)
	e := dec.Decode(&c)
	if e != nil {
		return c, h(e)
	}

	return c, nil
}

func GetConfigFromPath(path string) (Config, error) {
	h := handle("GetConfigFromPath: %w")

	r, e := os.Open(path)
	if e != nil {
		return Config{}, h(e)
	}
	defer r.Close()

	return GetConfigFromReader(r)
}
