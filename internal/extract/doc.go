// Package extract drives the end-to-end extraction run: submit a search,
// dismiss any consent interstitial, open the first result, and mine its
// detail sections for filing, publication, and grant dates.
//
// Stage-local misses (a chain exhausting, a section yielding nothing) are
// absorbed and the run degrades to a partial result. Only two conditions
// end a run early: no usable search term, and no resolvable result entry.
// The page session is owned exclusively for the run and released by the
// caller on every exit path.
package extract
