// Package render produces the final Markdown document from the loaded
// repository index, the discovered star lists and their membership.
//
// Output is a fixed external contract: one table per list plus an
// "Uncategorized Repositories" table, preceded by a table of contents
// whose anchor slugs mirror the rendering platform's own collision
// behavior. Rendering is pure: the same inputs always produce the same
// bytes, and loaded records are never mutated. Category tables claim
// keys into an explicit set and the uncategorized table is derived from
// the unclaimed remainder.
package render
