// Copyright (c) 2025, Cookbook Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package unit

import (
	"errors"

	"github.com/cookbook-dev/cookbook/pkg/rational"
)

var (
	// ErrUnknownUnit indicates an abbreviation that is not in the catalog.
	ErrUnknownUnit = errors.New("unknown unit")

	// ErrCategoryMismatch indicates an operation mixing units from
	// different categories.
	ErrCategoryMismatch = errors.New("unit category mismatch")
)

// Unit describes a single unit of measure and its exact affine mapping to
// the base unit of its category: base = value*factor + offset. The offset is
// zero for every category except temperature. Units are immutable once the
// catalog is built.
type Unit struct {
	abbr     string
	name     string
	category Category
	factor   rational.Rational
	offset   rational.Rational
}

// Abbr returns the unit abbreviation, e.g. "mL" or "°C". Abbreviations are
// unique across the whole catalog.
func (u *Unit) Abbr() string { return u.abbr }

// Name returns the human-readable unit name, e.g. "milliliter".
func (u *Unit) Name() string { return u.name }

// Category returns the category the unit belongs to.
func (u *Unit) Category() Category { return u.category }

// toBase converts a value expressed in this unit to the category base unit.
func (u *Unit) toBase(v rational.Rational) rational.Rational {
	return v.Mul(u.factor).Add(u.offset)
}

// fromBase converts a value expressed in the category base unit to this
// unit. Factors are nonzero by construction so the division cannot fail.
func (u *Unit) fromBase(v rational.Rational) rational.Rational {
	out, err := v.Sub(u.offset).Div(u.factor)
	if err != nil {
		panic("unit: zero conversion factor in catalog")
	}
	return out
}
