package threegpp

import (
	"path"
	"strings"

	"github.com/handiism/3gpp-downloader/internal/model"
)

// ParseVersion decodes the version triplet encoded at the end of a spec
// archive filename.
//
// The directory part and one trailing ".zip" suffix (case-sensitive) are
// stripped, the remaining stem is split on '-', and the last segment is
// taken as the version token. Archives were published under two naming
// eras, told apart purely by token length:
//
//   - 3 characters: each character is one base-36 digit (0-9, then a-z
//     or A-Z for 10-35), giving major, minor and editorial in order.
//     "h20" decodes to 17.2.0.
//   - 6 characters: three consecutive base-10 pairs, "170200" decodes
//     to 17.2.0.
//
// Any other token length, or any character outside the expected
// alphabet, reports ok == false. Absence is not an error: listing rows
// whose filename carries no version (directory links, decorative rows)
// are expected and simply skipped by the caller.
func ParseVersion(filename string) (v model.Version, ok bool) {
	stem := strings.TrimSuffix(path.Base(filename), ".zip")
	segments := strings.Split(stem, "-")
	token := segments[len(segments)-1]

	switch len(token) {
	case 3:
		major, okMajor := base36Digit(token[0])
		minor, okMinor := base36Digit(token[1])
		editorial, okEditorial := base36Digit(token[2])
		if !okMajor || !okMinor || !okEditorial {
			return model.Version{}, false
		}
		return model.Version{Major: major, Minor: minor, Editorial: editorial}, true

	case 6:
		major, okMajor := decimalPair(token[0:2])
		minor, okMinor := decimalPair(token[2:4])
		editorial, okEditorial := decimalPair(token[4:6])
		if !okMajor || !okMinor || !okEditorial {
			return model.Version{}, false
		}
		return model.Version{Major: major, Minor: minor, Editorial: editorial}, true
	}

	return model.Version{}, false
}

// base36Digit decodes a single case-insensitive base-36 character to its
// value 0-35.
func base36Digit(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10, true
	}
	return 0, false
}

// decimalPair decodes a two-character base-10 group, 00 through 99.
func decimalPair(s string) (int, bool) {
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}
