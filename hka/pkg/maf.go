package hka

import (
	"errors"
	"fmt"
	"io"

	"github.com/jgbaldwinbrown/csvh"
)

var ErrMissingColumn = errors.New("missing column")

// Maf is one row of an ANGSD .mafs table.
type Maf struct {
	Chromo   string
	Position int64
	Major    string
	Ref      string
	Minor    string
	KnownEM  float64
}

type mafCols struct {
	Chromo   int
	Position int
	Major    int
	Ref      int
	Minor    int
	KnownEM  int
}

func (c mafCols) width() int {
	w := 0
	for _, i := range []int{c.Chromo, c.Position, c.Major, c.Ref, c.Minor, c.KnownEM} {
		if i+1 > w {
			w = i + 1
		}
	}
	return w
}

func findMafCols(header []string, needMinor bool) (mafCols, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	col := func(name string) (int, error) {
		i, ok := idx[name]
		if !ok {
			return -1, fmt.Errorf("%w %q", ErrMissingColumn, name)
		}
		return i, nil
	}

	var c mafCols
	var e error
	if c.Chromo, e = col("chromo"); e != nil {
		return c, e
	}
	if c.Position, e = col("position"); e != nil {
		return c, e
	}
	if c.Major, e = col("major"); e != nil {
		return c, e
	}
	if c.Ref, e = col("ref"); e != nil {
		return c, e
	}
	if c.KnownEM, e = col("knownEM"); e != nil {
		return c, e
	}
	if c.Minor, e = col("minor"); e != nil {
		if needMinor {
			return c, e
		}
		c.Minor = -1
	}
	return c, nil
}

// ReadMafs reads a tab-separated .mafs table with a header row. The minor
// column is only required when needMinor is set; other extra columns are
// ignored.
func ReadMafs(r io.Reader, needMinor bool) ([]Maf, error) {
	h := handle("ReadMafs: %w")

	cr := csvh.CsvIn(r)
	header, e := cr.Read()
	if e != nil {
		return nil, h(e)
	}
	cols, e := findMafCols(header, needMinor)
	if e != nil {
		return nil, h(e)
	}

	var mafs []Maf
	fields := make([]string, 5)
	for l, e := cr.Read(); e != io.EOF; l, e = cr.Read() {
		if e != nil {
			return nil, h(e)
		}

		if len(l) < cols.width() {
			return nil, h(fmt.Errorf("line %v: %v fields, want %v", len(mafs)+2, len(l), cols.width()))
		}

		var m Maf
		fields = append(fields[:0], l[cols.Chromo], l[cols.Position], l[cols.Major], l[cols.Ref], l[cols.KnownEM])
		if _, e := csvh.Scan(fields, &m.Chromo, &m.Position, &m.Major, &m.Ref, &m.KnownEM); e != nil {
			return nil, h(fmt.Errorf("line %v: %w", len(mafs)+2, e))
		}
		if cols.Minor >= 0 {
			m.Minor = l[cols.Minor]
		}
		mafs = append(mafs, m)
	}
	return mafs, nil
}

func ReadMafsPath(path string, needMinor bool) ([]Maf, error) {
	r, e := csvh.OpenMaybeGz(path)
	if e != nil {
		return nil, fmt.Errorf("ReadMafsPath: %w", e)
	}
	defer r.Close()

	mafs, e := ReadMafs(r, needMinor)
	if e != nil {
		return nil, fmt.Errorf("ReadMafsPath: %v: %w", path, e)
	}
	return mafs, nil
}
