package main

import (
	"flag"
	"log"

	"github.com/jgbaldwinbrown/hkatest/hka/pkg"
)

type Flags struct {
	Yates   bool
	Outpath string
}

// Like hkagenes, but a site is also fixed when both populations are fixed
// for different minor alleles.
func main() {
	var f Flags
	flag.BoolVar(&f.Yates, "yates", false, "Apply Yates' continuity correction")
	flag.StringVar(&f.Outpath, "o", "", "Output path (default derived from populations and fixed_af)")
	flag.Parse()

	args, e := hka.ParsePairArgs(flag.Args())
	if e != nil {
		log.Fatal(e)
	}

	cfg := hka.GeneTriallelicConfig(args.FixedAF, args.Pop1, args.Pop2, f.Yates)
	cfg.Outpath = f.Outpath

	if e := hka.Run(cfg); e != nil {
		log.Fatal(e)
	}
}
