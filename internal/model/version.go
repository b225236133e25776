package model

import (
	"fmt"
	"time"
)

// Version is a 3GPP spec version triplet.
//
// Versions order lexicographically by (Major, Minor, Editorial). The
// Major component doubles as the release number used by the release
// filter. Versions are derived from archive filenames (see the threegpp
// package) and never hand-constructed elsewhere.
type Version struct {
	Major     int
	Minor     int
	Editorial int
}

// Compare returns -1, 0 or 1 ordering v against other by
// (Major, Minor, Editorial).
func (v Version) Compare(other Version) int {
	pairs := [3][2]int{
		{v.Major, other.Major},
		{v.Minor, other.Minor},
		{v.Editorial, other.Editorial},
	}
	for _, p := range pairs {
		switch {
		case p[0] < p[1]:
			return -1
		case p[0] > p[1]:
			return 1
		}
	}
	return 0
}

// Less reports whether v orders before other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// String renders "major.minor.editorial", e.g. "17.2.0".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Editorial)
}

// SpecItem is one archive file from a listing page that passed all
// filters: its decoded version, the publication timestamp from the date
// column (UTC), and the download URL from the name column's link.
type SpecItem struct {
	Version Version
	Date    time.Time
	URL     string
}
