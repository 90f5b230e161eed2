package main

import (
	"flag"
	"log"
	"os"

	"github.com/jgbaldwinbrown/hkatest/hka/pkg"
)

type Flags struct {
	Argpath string
}

func main() {
	var f Flags
	flag.StringVar(&f.Argpath, "a", "", "JSON config file (default: read one or more configs from stdin)")
	flag.Parse()

	var jobs []hka.Config
	if f.Argpath != "" {
		cfg, e := hka.GetConfigFromPath(f.Argpath)
		if e != nil {
			log.Fatal(e)
		}
		jobs = append(jobs, cfg)
	} else {
		var e error
		jobs, e = hka.GetJobs(os.Stdin)
		if e != nil {
			log.Fatal(e)
		}
	}

	if e := hka.RunJobs(jobs...); e != nil {
		log.Fatal(e)
	}
}
