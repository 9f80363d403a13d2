// Package config holds the run settings for sok-downloader.
//
// Settings are normally assembled from command line arguments, optionally
// seeded from a JSON file:
//
//	settings, err := config.Load("~/.config/sok-downloader.json")
//	settings.Conferences = []string{"DEFCON27"}
//	if err := settings.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
// Validate runs entirely offline; unknown conference names are rejected
// before any network activity.
package config
