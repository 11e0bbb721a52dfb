// Package progress reports fetch progress to the operator.
//
// Output is one line per event, written to stderr by default:
//
//	[sovfetch] Fetching 10 files
//	[sovfetch] GET https://statewidedatabase.org/pub/data/G12/c079/c079_g12_sov_data_by_g12_srprec.csv
//	[sovfetch] Wrote 1.21 MB to /data/processed/c079_g12_sov_data_by_g12_srprec.csv (200 OK)
//	[sovfetch] Done: 10/10 files | 11.80 MB | 14s
//
// A nil *Reporter is valid and discards everything.
package progress
