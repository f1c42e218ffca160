package unit

import (
	"fmt"

	"github.com/cookbook-dev/cookbook/pkg/rational"
)

// Quantity pairs an exact rational value with a unit. Quantities are
// immutable: conversion and arithmetic return new values.
type Quantity struct {
	value rational.Rational
	unit  *Unit
}

// NewQuantity constructs a Quantity from a value and unit.
func NewQuantity(v rational.Rational, u *Unit) Quantity {
	return Quantity{value: v, unit: u}
}

// Value returns the exact value in the quantity's own unit.
func (q Quantity) Value() rational.Rational { return q.value }

// Unit returns the quantity's unit.
func (q Quantity) Unit() *Unit { return q.unit }

// Category returns the category of the quantity's unit.
func (q Quantity) Category() Category {
	if q.unit == nil {
		return ""
	}
	return q.unit.Category()
}

// In re-expresses the quantity in the target unit. Conversion goes through
// the category base unit using exact rational arithmetic, so chains of
// conversions compose without error accumulation. Converting across
// categories fails with ErrCategoryMismatch.
func (q Quantity) In(target *Unit) (Quantity, error) {
	if q.unit == nil || target == nil {
		return Quantity{}, fmt.Errorf("%w: quantity has no unit", ErrCategoryMismatch)
	}
	if q.unit.Category() != target.Category() {
		return Quantity{}, fmt.Errorf("%w: cannot convert %s (%s) to %s (%s)",
			ErrCategoryMismatch, q.unit.Abbr(), q.unit.Category(), target.Abbr(), target.Category())
	}
	return Quantity{value: target.fromBase(q.unit.toBase(q.value)), unit: target}, nil
}

// Cmp orders two quantities of the same category after converting the other
// value into q's unit. Ordering across categories is meaningless and fails
// with ErrCategoryMismatch.
func (q Quantity) Cmp(o Quantity) (int, error) {
	converted, err := o.In(q.unit)
	if err != nil {
		return 0, err
	}
	return q.value.Cmp(converted.value), nil
}

// Equal reports whether two quantities represent the same measurement once
// expressed in a common unit. Unlike Cmp, Equal is total: quantities of
// different categories are unequal rather than erroring.
func (q Quantity) Equal(o Quantity) bool {
	cmp, err := q.Cmp(o)
	if err != nil {
		return false
	}
	return cmp == 0
}

// Add returns q + o expressed in q's unit, failing with ErrCategoryMismatch
// when the categories differ.
func (q Quantity) Add(o Quantity) (Quantity, error) {
	converted, err := o.In(q.unit)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{value: q.value.Add(converted.value), unit: q.unit}, nil
}

// Scale multiplies the value by an exact factor, e.g. doubling a recipe.
func (q Quantity) Scale(factor rational.Rational) Quantity {
	return Quantity{value: q.value.Mul(factor), unit: q.unit}
}

// String renders the exact value followed by the unit abbreviation,
// e.g. "1/2 cup". Count quantities render without a suffix.
func (q Quantity) String() string {
	if q.unit == nil || q.unit.Category() == CategoryCount {
		return q.value.String()
	}
	return q.value.String() + " " + q.unit.Abbr()
}

// Decimal renders a display-only decimal approximation with the given number
// of fractional digits, e.g. "0.50 cup". The stored value is never rounded.
func (q Quantity) Decimal(digits int) string {
	if q.unit == nil || q.unit.Category() == CategoryCount {
		return q.value.Decimal(digits)
	}
	return q.value.Decimal(digits) + " " + q.unit.Abbr()
}
