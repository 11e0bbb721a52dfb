// Package catalog enumerates the Statement of Vote files to fetch.
//
// A Catalog is the Cartesian product of a year list and a county list.
// Each (year, county) pair expands into one source URL and one destination
// path by plain substitution into a Template:
//
//	cat := catalog.Default()
//	for _, e := range cat.Entries() {
//	    // e.URL  = https://statewidedatabase.org/pub/data/G12/c079/...
//	    // e.Path = /data/processed/c079_g12_sov_data_by_g12_srprec.csv
//	}
//
// Years iterate in the outer position and counties in the inner one, both in
// list order.
package catalog
