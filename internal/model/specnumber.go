package model

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidSpecNumber is returned when an input does not match the
// spec-number grammar.
var ErrInvalidSpecNumber = errors.New("invalid spec number")

// specNumberRe is the full grammar: two digits, an optional dot, then at
// least one alphanumeric character, with nothing before or after.
var specNumberRe = regexp.MustCompile(`^\d{2}\.?[A-Za-z0-9]+$`)

// SpecNumber identifies a 3GPP technical specification.
//
// A spec number like "23.501" splits into the two-digit series ("23"),
// which doubles as a URL path segment on the archive site, and the
// remaining number part ("501"). The number part may contain letters,
// e.g. "45B6".
//
// SpecNumber values are only produced by ParseSpecNumber and are
// immutable afterwards.
type SpecNumber struct {
	// Series is the two-digit series prefix, e.g. "23".
	Series string

	// Number is the non-empty alphanumeric part after the series,
	// e.g. "501".
	Number string
}

// ParseSpecNumber parses an identifier like "23.501" or "23501".
//
// The input must start with exactly two digits, optionally followed by a
// literal dot, followed by at least one alphanumeric character. Anything
// else fails with ErrInvalidSpecNumber, wrapped with the offending input
// and the grammar so callers can show the message directly to users.
func ParseSpecNumber(input string) (SpecNumber, error) {
	if !specNumberRe.MatchString(input) {
		return SpecNumber{}, fmt.Errorf(
			"%w %q: must start with two digits, optionally a dot, then at least one alphanumeric character",
			ErrInvalidSpecNumber, input)
	}

	return SpecNumber{
		Series: input[:2],
		Number: strings.TrimPrefix(input[2:], "."),
	}, nil
}

// String renders the canonical "series.number" form, e.g. "23.501".
func (s SpecNumber) String() string {
	return s.Series + "." + s.Number
}
