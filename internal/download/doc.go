// Package download provides the orchestration logic for one sequential
// download run against the sok-media portal.
//
// # Manager
//
// The Manager drives the whole pipeline:
//
//  1. Resolve the requested conference names against the catalog
//  2. Log in once (a failure aborts the run)
//  3. Per conference: create the output subdirectory, fetch the playlist
//  4. Per video: download with up to 3 attempts, pausing after every attempt
//
// # Basic Usage
//
//	client := sokmedia.NewClient(sokmedia.DefaultBaseURL)
//	manager := download.NewManager(settings, client, func(e download.ProgressEvent) {
//	    fmt.Println(e.Message)
//	})
//	if err := manager.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Ordering
//
// Everything is strictly sequential: conferences in the order requested,
// videos in playlist order, all retries for a video before the next video.
// The delay between attempts applies even after a success or a skip.
//
// # Failure policy
//
// A playlist fetch failure skips that conference only. A video that still
// fails after the last attempt is abandoned and the run continues; nothing
// elevates per-video failures into a run failure.
package download
