// Package model defines the core data structures for the 3GPP spec
// downloader: spec numbers, date filters, version triplets, and listing
// items.
//
// # Spec Numbers
//
// Parse user input like "23.501" (or "23501") into its series and
// number parts:
//
//	spec, err := model.ParseSpecNumber("23.501")
//	// spec.Series == "23", spec.Number == "501"
//
// # Date Filters
//
// Parse a "YYYY-MM" filter; a malformed string and an out-of-range
// month fail with distinct errors:
//
//	filter, err := model.ParseDateFilter("2023-07")
//	errors.Is(err, model.ErrInvalidDateFormat)
//	errors.Is(err, model.ErrInvalidMonth)
//
// # Versions
//
// Version triplets order by (Major, Minor, Editorial); Major is the
// release number. They are decoded from archive filenames by the
// threegpp package.
package model
