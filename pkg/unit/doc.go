// Package unit provides the closed catalog of supported measurement units
// and the category-tagged Quantity type built on exact rational arithmetic.
//
// Units are grouped into disjoint categories (mass, volume, count, time,
// temperature). Each unit carries an exact affine mapping to its category
// base unit; conversion goes value -> base -> target entirely in rational
// arithmetic, so round trips reproduce the original value bit for bit.
//
// The catalog is immutable after construction. Build it once with NewCatalog
// (or use the shared Default instance) and inject it wherever conversion is
// needed; concurrent readers require no locking.
package unit
