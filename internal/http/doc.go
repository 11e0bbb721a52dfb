// Package http provides the HTTP client used to fetch archive files.
//
// The client issues exactly one GET per call. It does not retry and it does
// not interpret the status code: the caller receives the response body for
// any status and decides what to do with it.
//
// # Usage
//
//	client := http.NewClient(http.DefaultOptions())
//	resp, err := client.Get(ctx, url)
//	if err != nil {
//	    // transport failure: DNS, refused connection, TLS, timeout
//	}
//	defer resp.Body.Close()
//	// resp.StatusCode, resp.Body
package http
