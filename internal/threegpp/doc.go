// Package threegpp turns 3GPP archive listing pages into filtered sets
// of downloadable spec items.
//
// The archive at https://www.3gpp.org/ftp/Specs/archive/ serves one
// HTML directory-index page per spec number. This package knows that
// page's shape:
//
//  1. FindHeaderIndexes discovers which header columns hold the file
//     name and date (the site lets visitors resort the table, so the
//     order varies).
//  2. ParseVersion decodes the version triplet from an archive
//     filename, supporting both the compact 3-character base-36 era
//     and the verbose 6-digit era.
//  3. Lister.List fetches the page once, walks the body rows, and
//     applies the optional release and date filters.
//
// Example:
//
//	lister := threegpp.NewLister(client, "")
//	spec, _ := model.ParseSpecNumber("23.501")
//	items, err := lister.List(ctx, spec, threegpp.Filters{})
package threegpp
