package model

import (
	"fmt"
	"sort"
	"strings"
)

// Conference identifies one conference catalog entry on sok-media.
//
// Conferences are not discovered dynamically; the portal keys its playlist
// endpoint by an opaque numeric id, so the known conferences are kept in a
// fixed catalog. A Conference is immutable once looked up.
type Conference struct {
	// ID is the portal's numeric identifier for the conference.
	ID int

	// Name is the catalog name, also used as the output subdirectory.
	Name string
}

// conferenceIDs maps catalog names to the portal's conference ids.
var conferenceIDs = map[string]int{
	"DEFCON24":         32,
	"DEFCON25":         41,
	"DEFCON26":         54,
	"DEFCON27":         71,
	"DEFCON27-VILLAGE": 72,
	"DEFCON26-VILLAGE": 67,
	"BSidesLV2016":     39,
	"BlackHatUSA2017":  40,
	"BlackHatUSA2018":  53,
	"BlackHatUSA2019":  70,
}

// LookupConference resolves a catalog name to a Conference.
//
// Unknown names return an error listing the allowed choices, so callers can
// reject bad input before any network activity.
func LookupConference(name string) (Conference, error) {
	id, ok := conferenceIDs[name]
	if !ok {
		return Conference{}, fmt.Errorf("unknown conference %q (choose from: %s)",
			name, strings.Join(ConferenceNames(), ", "))
	}
	return Conference{ID: id, Name: name}, nil
}

// ConferenceNames returns the catalog names in sorted order.
func ConferenceNames() []string {
	names := make([]string, 0, len(conferenceIDs))
	for name := range conferenceIDs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
