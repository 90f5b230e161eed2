package hka

import (
	"bufio"
	"fmt"
	"io"
	"log"

	"github.com/jgbaldwinbrown/csvh"
	"github.com/jgbaldwinbrown/iter"
)

// LoadSites reads every population's table and joins them.
func LoadSites(cfg Config) ([]Site, error) {
	h := handle("LoadSites: %w")

	pops := make([][]Maf, 0, len(cfg.Pops))
	for _, path := range cfg.MafPaths() {
		mafs, e := ReadMafsPath(path, cfg.NeedMinor())
		if e != nil {
			return nil, h(e)
		}
		pops = append(pops, mafs)
	}

	sites, e := Merge(cfg.JoinMinor, pops...)
	if e != nil {
		return nil, h(e)
	}
	return sites, nil
}

// Regions picks the region stream for cfg's windowing.
func Regions(cfg Config, x *SiteIndex) (iter.Iter[Region], error) {
	switch cfg.Windowing {
	case SlidingWindows:
		return SlidingRegions(x, cfg.WindowSize, cfg.Slide), nil
	case ChromosomeWindows:
		return ChromosomeRegions(x), nil
	case ExonWindows:
		return ExonRegionsPath(cfg.ExonsPath), nil
	default:
		return nil, fmt.Errorf("Regions: %w: unknown windowing %q", ErrBadConfig, cfg.Windowing)
	}
}

// RunSites classifies the merged sites, logs the genome-wide summary, then
// tests every region and writes one row per region to w.
func RunSites(cfg Config, sites []Site, w io.Writer, lg *log.Logger) error {
	h := handle("RunSites: %w")

	if e := cfg.Validate(); e != nil {
		return h(e)
	}

	lg.Printf("Analyzing %v sites found in all %v populations", len(sites), len(cfg.Pops))

	freqs, e := SummarizeFreqs(sites, len(cfg.Pops))
	if e != nil {
		return h(e)
	}
	LogFreqs(lg, cfg.Pops, freqs)

	labels, e := ClassifyAll(sites, len(cfg.Pops), cfg.Rule, cfg.FixedAF)
	if e != nil {
		return h(e)
	}
	genome := GenomeWide(labels)
	LogGenomeWide(lg, cfg.Pops, genome)

	x := NewSiteIndex(sites, labels)
	regions, e := Regions(cfg, x)
	if e != nil {
		return h(e)
	}

	rw := NewReportWriter(w, cfg.Layout())
	if e := rw.WriteHeader(len(cfg.Pops)); e != nil {
		return h(e)
	}

	props := make([][2]float64, len(genome))
	for i, c := range genome {
		props[i][0], props[i][1] = c.Proportions()
	}
	yates := cfg.Test == ContingencyYatesTest
	gofs := make([]GofResult, len(genome))

	count := 0
	e = regions.Iterate(func(r Region) error {
		counts := x.CountRegion(r)

		count++
		if cfg.ProgressEvery > 0 && count%cfg.ProgressEvery == 0 {
			lg.Println(count)
		}

		if cfg.Test == GofTest {
			for i, c := range counts {
				gofs[i] = ChiGof(c, props[i][0], props[i][1])
			}
			return rw.WriteWindow(r, gofs)
		}

		if genome[0].Total() == 0 {
			return nil
		}
		res, e := ChiContingency(counts[0], genome[0], yates)
		if e != nil {
			return fmt.Errorf("region %v: %w", r.Name, e)
		}
		return rw.WriteContingency(r.Name, res)
	})
	if e != nil {
		return h(e)
	}

	if e := rw.Flush(); e != nil {
		return h(e)
	}
	return nil
}

// Run fills in cfg's defaults, loads its tables and writes the report to
// cfg.Outpath.
func Run(cfg Config) (err error) {
	h := handle("Run: %w")

	cfg = cfg.WithDefaults()
	if e := cfg.Validate(); e != nil {
		return h(e)
	}

	sites, e := LoadSites(cfg)
	if e != nil {
		return h(e)
	}

	w, e := csvh.CreateMaybeGz(cfg.Outpath)
	if e != nil {
		return h(e)
	}
	defer func() { csvh.DeferE(&err, w.Close()) }()

	bw := bufio.NewWriter(w)
	defer func() { csvh.DeferE(&err, bw.Flush()) }()

	if e := RunSites(cfg, sites, bw, log.Default()); e != nil {
		return h(e)
	}
	return nil
}
