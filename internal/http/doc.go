// Package http provides the HTTP client used to talk to the 3GPP spec
// archive.
//
// The Client in this package handles:
//   - User-Agent and timeout configuration
//   - Listing page fetches
//   - Archive size retrieval via HEAD requests
//   - Streaming downloads with progress tracking
//
// The ProgressWriter type can wrap any io.Writer for progress tracking:
//
//	pw := &http.ProgressWriter{
//	    Writer:   file,
//	    Total:    contentLength,
//	    OnUpdate: func(written, total int64) { /* update UI */ },
//	}
package http
