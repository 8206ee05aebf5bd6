// Package cli provides the patentdates command line interface.
//
// The command takes one optional positional argument, the search term;
// when omitted, the term is derived from the search input's placeholder
// text. The report on stdout lists the publication, grant, and filing
// dates (N/A when missing) followed by the three pairwise day differences.
package cli
