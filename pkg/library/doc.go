// Package library loads a directory tree of recipe files into an in-memory
// collection keyed by recipe id, and writes edits back to the files they came
// from.
package library
