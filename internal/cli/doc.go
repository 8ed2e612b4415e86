// Package cli implements the command-line interface for settlements.
//
// The cli package provides the Cobra-based command that drives the full
// export: each region page is harvested in fixed order, the per-region
// records are merged, deduplicated and sorted, and the result lands in a
// single xlsx sheet. Any fatal error (fetch failure, missing cache file,
// empty result) aborts the run with a non-zero exit status before an
// output file is produced.
package cli
