// Package ficread reads fanfiction from a remote archive in the terminal.
// It searches the archive, extracts work listings from search pages,
// reconstructs chapter text from markup and lays both out as fixed-width
// plain text, presented page by page.
//
// This package contains domain types, interfaces and the pure formatting
// and pagination logic. Implementations live in subdirectories named after
// their primary dependency (e.g., goquery/, http/, liner/).
package ficread
