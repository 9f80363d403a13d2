// Package sokmedia implements the client for the sok-media.com portal.
//
// The portal is session-authenticated: Login performs the form handshake
// and captures the session cookies, after which GetPlaylist enumerates a
// conference's videos and DownloadVideo resolves each video's short-lived
// signed streaming URL and writes the stream to disk.
//
// # Usage
//
//	client := sokmedia.NewClient(sokmedia.DefaultBaseURL)
//	if err := client.Login(ctx, username, password); err != nil {
//	    log.Fatal(err)
//	}
//
//	videos, raw, err := client.GetPlaylist(ctx, conf)
//	for _, v := range videos {
//	    path, skipped, err := client.DownloadVideo(ctx, v, dir)
//	    ...
//	}
//
// # Errors
//
// Precondition and authentication failures are sentinel errors
// (ErrNotLoggedIn, ErrLoginFailed) and are fatal to a run. Per-video
// failures wrap ErrResolveVideo or ErrFetchStream and are retried by the
// download orchestrator. Non-200 responses on page and playlist fetches
// are reported as *StatusError.
package sokmedia
