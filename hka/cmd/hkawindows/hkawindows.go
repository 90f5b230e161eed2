package main

import (
	"flag"
	"log"

	"github.com/jgbaldwinbrown/hkatest/hka/pkg"
)

func main() {
	outpathp := flag.String("o", "", "Output path (default pop1.pop2.pop3.HKA_test)")
	flag.Parse()

	args, e := hka.ParseWindowArgs(flag.Args())
	if e != nil {
		log.Fatal(e)
	}

	cfg := args.Config()
	cfg.Outpath = *outpathp

	if e := hka.Run(cfg); e != nil {
		log.Fatal(e)
	}
}
