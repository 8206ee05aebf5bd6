// Package dates provides parsing, formatting, and day-difference arithmetic
// for the ISO-like dates the extractor mines from patent pages.
//
// A date that failed to parse is represented by the time.Time zero value,
// never by a default such as the current time. Formatting a missing date
// yields the "N/A" marker, and a difference involving a missing date is
// reported as not computable rather than zero.
package dates
