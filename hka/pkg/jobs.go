package hka

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
)

// GetJobs decodes a stream of JSON configs, one value per job.
func GetJobs(r io.Reader) ([]Config, error) {
	dec := json.NewDecoder(r)
	var jobs []Config
	for {
		var c Config
		e := dec.Decode(&c)
		if e == io.EOF {
			break
		}
		if e != nil {
			return nil, fmt.Errorf("GetJobs: job %v: %w", len(jobs), e)
		}
		jobs = append(jobs, c)
	}
	return jobs, nil
}

// RunJobs runs each job in order and stops at the first failure.
func RunJobs(jobs ...Config) error {
	for i, j := range jobs {
		log.Printf("job %v: %v -> %v", i, j.Pops, j.WithDefaults().Outpath)
		if e := Run(j); e != nil {
			return fmt.Errorf("RunJobs: job %v: %w", i, e)
		}
	}
	return nil
}
