// Package fetcher downloads every file in a catalog, one at a time.
//
// For each entry, in catalog order, the fetcher issues one GET for the
// source URL and writes the raw response body to the destination, replacing
// whatever was there. The status code is not checked. The first network or
// storage failure stops the run; files written before it are left in place.
//
// # Usage
//
//	f := fetcher.New(catalog.Default(), client, store.NewFileStore(), reporter)
//	result, err := f.Run(ctx)
package fetcher
