package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Year is a two-digit election year suffix, e.g. 12 for 2012.
type Year int

// County is a numeric county code used by the Statewide Database.
type County int

// Default archive layout.
const (
	DefaultSource Template = "https://statewidedatabase.org/pub/data/G{year}/c0{county}/c0{county}_g{year}_sov_data_by_g{year}_srprec.csv"
	DefaultDest   Template = "/data/processed/c0{county}_g{year}_sov_data_by_g{year}_srprec.csv"
)

// DefaultYears and DefaultCounties are the fetched general elections and counties.
var (
	DefaultYears    = []Year{12, 14, 16, 18, 20}
	DefaultCounties = []County{79, 83}
)

// Pair identifies one file in the catalog.
type Pair struct {
	Year   Year
	County County
}

func (p Pair) String() string {
	return fmt.Sprintf("g%d/c0%d", p.Year, p.County)
}

// Template is a string with {year} and {county} slots.
type Template string

// Expand substitutes p into the template. No escaping is performed.
func (t Template) Expand(p Pair) string {
	r := strings.NewReplacer(
		"{year}", strconv.Itoa(int(p.Year)),
		"{county}", strconv.Itoa(int(p.County)),
	)
	return r.Replace(string(t))
}

// Entry is a pair with its expanded source and destination.
type Entry struct {
	Pair
	URL  string
	Path string
}

// Catalog describes the full set of files to fetch.
type Catalog struct {
	Years    []Year
	Counties []County
	Source   Template
	Dest     Template
}

// Default returns the catalog of the Statewide Database files this tool was
// written for: five general elections for two counties.
func Default() Catalog {
	return Catalog{
		Years:    append([]Year(nil), DefaultYears...),
		Counties: append([]County(nil), DefaultCounties...),
		Source:   DefaultSource,
		Dest:     DefaultDest,
	}
}

// Pairs returns every (year, county) pair, years outer and counties inner.
func (c Catalog) Pairs() []Pair {
	pairs := make([]Pair, 0, c.Len())
	for _, y := range c.Years {
		for _, county := range c.Counties {
			pairs = append(pairs, Pair{Year: y, County: county})
		}
	}
	return pairs
}

// URL returns the source URL for p.
func (c Catalog) URL(p Pair) string {
	return c.Source.Expand(p)
}

// Path returns the destination path for p.
func (c Catalog) Path(p Pair) string {
	return c.Dest.Expand(p)
}

// Entries expands every pair in iteration order.
func (c Catalog) Entries() []Entry {
	pairs := c.Pairs()
	entries := make([]Entry, len(pairs))
	for i, p := range pairs {
		entries[i] = Entry{Pair: p, URL: c.URL(p), Path: c.Path(p)}
	}
	return entries
}

// Len returns the number of files in the catalog.
func (c Catalog) Len() int {
	return len(c.Years) * len(c.Counties)
}
