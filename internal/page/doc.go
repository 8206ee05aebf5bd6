// Package page defines the contract between the extraction logic and the
// browser that renders the document: candidate descriptors, resolved
// targets, the provider capability surface, and the ordered fallback
// resolver that probes descriptor chains.
//
// Descriptors in a chain are tried most-specific-first; the first one whose
// referent becomes observable within its bounded wait wins. A chain that
// exhausts without a match yields ErrNotFound, which callers treat as a
// branch, not an abort.
package page
