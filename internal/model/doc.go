// Package model defines the core data structures used throughout
// sok-downloader.
//
// # Conference
//
// Conferences come from a fixed catalog mapping names to the portal's
// numeric ids:
//
//	conf, err := model.LookupConference("DEFCON27")
//	fmt.Println(conf.ID) // 71
//
// # Video
//
// Video represents one playlist entry and derives the local filename for
// the download:
//
//	v := model.Video{ID: "123", Name: "Opening Keynote"}
//	fmt.Println(v.FileName()) // "Opening Keynote.mp4"
package model
