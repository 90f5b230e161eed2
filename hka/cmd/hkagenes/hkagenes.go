package main

import (
	"flag"
	"log"

	"github.com/jgbaldwinbrown/hkatest/hka/pkg"
)

type Flags struct {
	NoYates bool
	Outpath string
}

func main() {
	var f Flags
	flag.BoolVar(&f.NoYates, "noyates", false, "Skip Yates' continuity correction")
	flag.StringVar(&f.Outpath, "o", "", "Output path (default derived from populations and fixed_af)")
	flag.Parse()

	args, e := hka.ParsePairArgs(flag.Args())
	if e != nil {
		log.Fatal(e)
	}

	cfg := hka.GeneConfig(args.FixedAF, args.Pop1, args.Pop2, !f.NoYates)
	cfg.Outpath = f.Outpath

	if e := hka.Run(cfg); e != nil {
		log.Fatal(e)
	}
}
