// Package xlsx serializes the final settlement list to a spreadsheet.
//
// The xlsx package writes a single sheet named "Населенные пункты" with a
// localized header row (Регион | Район | Населенный пункт) followed by one
// row per record. Parent directories of the output path are created as
// needed; the file is written in one shot with no partial-write recovery.
package xlsx
