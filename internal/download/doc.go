// Package download provides the orchestration logic for fetching spec
// archives from the 3GPP archive site.
//
// # Manager
//
// The Manager coordinates the whole flow:
//
//  1. Parse the spec number
//  2. Fetch the listing page and apply the release/date filters
//  3. Download the first, the latest, or all matching archives
//
// Basic usage:
//
//	manager := download.NewManager(settings, func(event download.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	if err := manager.Initialize(ctx, "23.501", &release, nil); err != nil {
//	    log.Fatal(err)
//	}
//	dest, err := manager.DownloadFirst(ctx)
//
// # Concurrency and retries
//
// DownloadAll downloads archives in parallel, bounded by
// settings.MaxConcurrentDownloads. Failed downloads are retried with
// exponential backoff (settings.DownloadMaxRetries and
// settings.DownloadRetryCooldown); files already on disk whose size is
// within settings.AllowedFileSizeDifference of the remote size are
// kept. The listing fetch itself is performed exactly once and never
// retried.
//
// # Progress tracking
//
// Progress is reported via a callback receiving ProgressEvent values
// with a message and a level (Info, Verbose, Warning, Error, Success).
package download
