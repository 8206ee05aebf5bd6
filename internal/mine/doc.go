// Package mine recovers typed date findings from unstructured section text.
//
// The miner works per discrete text unit (a table row or a block-level
// division), never on a whole section as one string: a keyword and a date
// that appear in unrelated parts of a large block must not pair up. For
// each semantic slot it matches a case-insensitive keyword set against the
// unit, then takes the first date-shaped token in the same unit. The first
// unit to fill a slot wins; later units may fill the remaining slots but
// never overwrite one that is set.
package mine
