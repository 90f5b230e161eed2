package hka

import (
	"errors"
	"fmt"
)

var ErrPopCount = errors.New("need two or three populations")

// Site is one position present in every population after the join. Minors
// and Freqs are indexed by population, in the order the tables were given.
type Site struct {
	Chromo   string
	Position int64
	Major    string
	Ref      string
	Minors   []string
	Freqs    []float64
}

type siteKey struct {
	Chromo   string
	Position int64
	Major    string
	Ref      string
	Minor    string
}

func mafKey(m Maf, joinMinor bool) siteKey {
	k := siteKey{Chromo: m.Chromo, Position: m.Position, Major: m.Major, Ref: m.Ref}
	if joinMinor {
		k.Minor = m.Minor
	}
	return k
}

func siteKeyOf(s Site, joinMinor bool) siteKey {
	k := siteKey{Chromo: s.Chromo, Position: s.Position, Major: s.Major, Ref: s.Ref}
	if joinMinor {
		k.Minor = s.Minors[0]
	}
	return k
}

func indexMafs(mafs []Maf, joinMinor bool) map[siteKey][]int {
	idx := make(map[siteKey][]int, len(mafs))
	for i, m := range mafs {
		k := mafKey(m, joinMinor)
		idx[k] = append(idx[k], i)
	}
	return idx
}

// Merge inner-joins the population tables on chromosome, position, major
// and reference allele, and also on the minor allele if joinMinor is set.
// Output order follows the first table; a key repeated in several tables
// yields every combination, as a relational join would.
func Merge(joinMinor bool, pops ...[]Maf) ([]Site, error) {
	if len(pops) < 2 || len(pops) > 3 {
		return nil, fmt.Errorf("Merge: %w; got %v", ErrPopCount, len(pops))
	}

	sites := make([]Site, 0, len(pops[0]))
	for _, m := range pops[0] {
		sites = append(sites, Site{
			Chromo:   m.Chromo,
			Position: m.Position,
			Major:    m.Major,
			Ref:      m.Ref,
			Minors:   []string{m.Minor},
			Freqs:    []float64{m.KnownEM},
		})
	}

	for _, pop := range pops[1:] {
		idx := indexMafs(pop, joinMinor)
		joined := make([]Site, 0, len(sites))
		for _, s := range sites {
			for _, i := range idx[siteKeyOf(s, joinMinor)] {
				m := pop[i]
				j := s
				j.Minors = append(append(make([]string, 0, len(s.Minors)+1), s.Minors...), m.Minor)
				j.Freqs = append(append(make([]float64, 0, len(s.Freqs)+1), s.Freqs...), m.KnownEM)
				joined = append(joined, j)
			}
		}
		sites = joined
	}
	return sites, nil
}
