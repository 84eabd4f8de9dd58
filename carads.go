// Package carads turns raw vehicle classified-ad pages into normalized
// listing records. It extracts candidate fields from each page, resolves
// free-text make and model strings against a known catalog, and flags
// records that still need a more expensive enrichment pass.
//
// This package contains domain types, the pure normalization and matching
// logic, and the interfaces of the collaborators that feed documents in and
// take records out. Implementations live in subdirectories named after
// their primary dependency (e.g., goquery/, sqlite/, levenshtein/).
package carads
