// Package docsplit splits a monolithic API documentation page into
// per-article files grouped by category. Categories are delimited by
// heading elements; each category's articles are either fetched from a
// help-center service or embedded from the table rows that describe them.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, http/).
package docsplit
