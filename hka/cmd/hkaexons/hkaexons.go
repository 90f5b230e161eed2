package main

import (
	"flag"
	"log"

	"github.com/jgbaldwinbrown/hkatest/hka/pkg"
)

type Flags struct {
	Exons   string
	NoYates bool
	Outpath string
}

func main() {
	var f Flags
	flag.StringVar(&f.Exons, "e", hka.DefaultExonsPath, "Exon coordinate table (chromo, e_start, e_end)")
	flag.BoolVar(&f.NoYates, "noyates", false, "Skip Yates' continuity correction")
	flag.StringVar(&f.Outpath, "o", "", "Output path (default derived from populations and fixed_af)")
	flag.Parse()

	args, e := hka.ParsePairArgs(flag.Args())
	if e != nil {
		log.Fatal(e)
	}

	cfg := hka.ExonConfig(args.FixedAF, args.Pop1, args.Pop2, !f.NoYates)
	cfg.ExonsPath = f.Exons
	cfg.Outpath = f.Outpath

	if e := hka.Run(cfg); e != nil {
		log.Fatal(e)
	}
}
