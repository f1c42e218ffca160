// Package rational implements exact fraction arithmetic for measured
// quantities.
//
// Every measured value in a recipe document is carried as a Rational rather
// than a float, so unit conversion and scaling never accumulate rounding
// error. Values are normalized (lowest terms, positive denominator) at
// construction and are immutable afterwards; arithmetic produces new values.
//
// # Overflow behavior
//
// Arithmetic runs on a fixed-width int64 fast path. When an intermediate
// result would exceed the representable range, the value is transparently
// promoted to an arbitrary-precision representation (math/big.Rat). Results
// are demoted back to the fast path whenever they fit. Callers observe exact
// results in all cases; wraparound can not occur.
//
// # Wire form
//
// Rationals serialize to an explicit [numerator, denominator] integer pair
// in both YAML and JSON. Decimal literals are rejected on input since they
// cannot express the stored value exactly.
package rational
