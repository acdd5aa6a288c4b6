// Package jsonl is the file-based StarStore adapter.
//
// The store is newline-delimited JSON: one starred-repo record per line
// with the fields full_name, html_url, description, listed, stars. A
// fetch pass truncates the file and appends page by page; a load pass
// reads it back in file order. The format is an external contract.
package jsonl
