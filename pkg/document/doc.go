// Package document holds the validated recipe tree: Recipe -> Step ->
// {Ingredient, Equipment}.
//
// Every measured field is an exact unit-typed quantity. Ingredient amounts
// are a tagged union (count, mass, or volume) so "exactly one variant set"
// is structural rather than a runtime check. Edit operations validate on
// mutation: an invalid shape is rejected immediately with a ValidationError
// naming the offending entity path, never stored transiently.
//
// Entities own their children exclusively; UUIDs exist only for correlation
// with external stores, never for in-document references.
package document
