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
	"fmt"
	"math/big"
	"sync"

	"github.com/cookbook-dev/cookbook/pkg/rational"
)

// Catalog is the closed registry of supported units. It is built once and
// read-only afterwards, so concurrent readers need no synchronization.
//
// Base units per category: gram (mass), liter (volume), second (time),
// kelvin (temperature), count (count).
type Catalog struct {
	byAbbr map[string]*Unit
	byCat  map[Category][]*Unit
}

var defaultCatalog = sync.OnceValue(NewCatalog)

// Default returns the process-wide catalog, built on first use.
func Default() *Catalog {
	return defaultCatalog()
}

// Lookup resolves a unit abbreviation, failing with ErrUnknownUnit when the
// abbreviation is not in the catalog. Matching is exact and case-sensitive:
// "mL" and "ML" are different units.
func (c *Catalog) Lookup(abbr string) (*Unit, error) {
	u, ok := c.byAbbr[abbr]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownUnit, abbr)
	}
	return u, nil
}

// Convert re-expresses q in the unit named by the target abbreviation.
// It fails with ErrUnknownUnit for an unregistered abbreviation and with
// ErrCategoryMismatch when the target belongs to a different category.
func (c *Catalog) Convert(q Quantity, targetAbbr string) (Quantity, error) {
	target, err := c.Lookup(targetAbbr)
	if err != nil {
		return Quantity{}, err
	}
	return q.In(target)
}

// Quantity constructs a Quantity from a value and a unit abbreviation.
func (c *Catalog) Quantity(v rational.Rational, abbr string) (Quantity, error) {
	u, err := c.Lookup(abbr)
	if err != nil {
		return Quantity{}, err
	}
	return NewQuantity(v, u), nil
}

// UnitsIn lists the units of a category in definition order.
func (c *Catalog) UnitsIn(cat Category) []*Unit {
	units := c.byCat[cat]
	out := make([]*Unit, len(units))
	copy(out, units)
	return out
}

// Len returns the number of registered units.
func (c *Catalog) Len() int {
	return len(c.byAbbr)
}

// add registers a unit, panicking on abbreviation collisions. The catalog is
// closed: collisions are construction bugs, not runtime conditions.
func (c *Catalog) add(abbr, name string, cat Category, factor, offset rational.Rational) {
	if _, exists := c.byAbbr[abbr]; exists {
		panic(fmt.Sprintf("unit: duplicate abbreviation %q", abbr))
	}
	u := &Unit{abbr: abbr, name: name, category: cat, factor: factor, offset: offset}
	c.byAbbr[abbr] = u
	c.byCat[cat] = append(c.byCat[cat], u)
}

func (c *Catalog) scaled(abbr, name string, cat Category, factor rational.Rational) {
	c.add(abbr, name, cat, factor, rational.Rational{})
}

// pow10 returns 10^n as an exact rational, n may be negative.
func pow10(n int) rational.Rational {
	exp := n
	if exp < 0 {
		exp = -exp
	}
	p := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp)), nil)
	var r rational.Rational
	var err error
	if n < 0 {
		r, err = rational.FromBigInts(big.NewInt(1), p)
	} else {
		r, err = rational.FromBigInts(p, big.NewInt(1))
	}
	if err != nil {
		panic(err)
	}
	return r
}

// NewCatalog builds the full unit catalog. Factors are exact by definition;
// customary units derive from their legal metric definitions (1 gal =
// 3.785411784 L, 1 in³ = 16.387064 mL, 1 lb = 453.59237 g).
func NewCatalog() *Catalog {
	c := &Catalog{
		byAbbr: make(map[string]*Unit),
		byCat:  make(map[Category][]*Unit),
	}

	one := rational.FromInt(1)

	// mass, base gram
	c.scaled("Tg", "teragram", CategoryMass, pow10(12))
	c.scaled("Gg", "gigagram", CategoryMass, pow10(9))
	c.scaled("Mg", "megagram", CategoryMass, pow10(6))
	c.scaled("kg", "kilogram", CategoryMass, pow10(3))
	c.scaled("hg", "hectogram", CategoryMass, pow10(2))
	c.scaled("dag", "decagram", CategoryMass, pow10(1))
	c.scaled("g", "gram", CategoryMass, one)
	c.scaled("dg", "decigram", CategoryMass, pow10(-1))
	c.scaled("cg", "centigram", CategoryMass, pow10(-2))
	c.scaled("mg", "milligram", CategoryMass, pow10(-3))
	c.scaled("µg", "microgram", CategoryMass, pow10(-6))
	c.scaled("ng", "nanogram", CategoryMass, pow10(-9))
	c.scaled("pg", "picogram", CategoryMass, pow10(-12))
	pound := rational.MustNew(45359237, 100000)
	c.scaled("oz", "ounce", CategoryMass, pound.Mul(rational.MustNew(1, 16)))
	c.scaled("lb", "pound", CategoryMass, pound)

	// volume, base liter
	c.scaled("TL", "teraliter", CategoryVolume, pow10(12))
	c.scaled("GL", "gigaliter", CategoryVolume, pow10(9))
	c.scaled("ML", "megaliter", CategoryVolume, pow10(6))
	c.scaled("kL", "kiloliter", CategoryVolume, pow10(3))
	c.scaled("hL", "hectoliter", CategoryVolume, pow10(2))
	c.scaled("daL", "decaliter", CategoryVolume, pow10(1))
	c.scaled("L", "liter", CategoryVolume, one)
	c.scaled("dL", "deciliter", CategoryVolume, pow10(-1))
	c.scaled("cL", "centiliter", CategoryVolume, pow10(-2))
	c.scaled("mL", "milliliter", CategoryVolume, pow10(-3))
	c.scaled("µL", "microliter", CategoryVolume, pow10(-6))
	c.scaled("nL", "nanoliter", CategoryVolume, pow10(-9))
	c.scaled("pL", "picoliter", CategoryVolume, pow10(-12))

	c.scaled("Tm³", "cubic terameter", CategoryVolume, pow10(39))
	c.scaled("Gm³", "cubic gigameter", CategoryVolume, pow10(30))
	c.scaled("Mm³", "cubic megameter", CategoryVolume, pow10(21))
	c.scaled("km³", "cubic kilometer", CategoryVolume, pow10(12))
	c.scaled("hm³", "cubic hectometer", CategoryVolume, pow10(9))
	c.scaled("dam³", "cubic decameter", CategoryVolume, pow10(6))
	c.scaled("m³", "cubic meter", CategoryVolume, pow10(3))
	c.scaled("dm³", "cubic decimeter", CategoryVolume, one)
	c.scaled("cm³", "cubic centimeter", CategoryVolume, pow10(-3))
	c.scaled("mm³", "cubic millimeter", CategoryVolume, pow10(-6))
	c.scaled("µm³", "cubic micrometer", CategoryVolume, pow10(-15))
	c.scaled("nm³", "cubic nanometer", CategoryVolume, pow10(-24))
	c.scaled("pm³", "cubic picometer", CategoryVolume, pow10(-33))

	gallon := rational.MustNew(3785411784, 1000000000)
	c.scaled("gal", "gallon", CategoryVolume, gallon)
	c.scaled("liq qt", "liquid quart", CategoryVolume, gallon.Mul(rational.MustNew(1, 4)))
	c.scaled("liq pt", "liquid pint", CategoryVolume, gallon.Mul(rational.MustNew(1, 8)))
	c.scaled("cup", "cup", CategoryVolume, gallon.Mul(rational.MustNew(1, 16)))
	c.scaled("gi", "gill", CategoryVolume, gallon.Mul(rational.MustNew(1, 32)))
	c.scaled("fl oz", "fluid ounce", CategoryVolume, gallon.Mul(rational.MustNew(1, 128)))
	c.scaled("tbsp", "tablespoon", CategoryVolume, gallon.Mul(rational.MustNew(1, 256)))
	c.scaled("tsp", "teaspoon", CategoryVolume, gallon.Mul(rational.MustNew(1, 768)))

	cubicInch := rational.MustNew(16387064, 1000000000)
	c.scaled("in³", "cubic inch", CategoryVolume, cubicInch)
	c.scaled("ft³", "cubic foot", CategoryVolume, cubicInch.Mul(rational.FromInt(1728)))
	c.scaled("yd³", "cubic yard", CategoryVolume, cubicInch.Mul(rational.FromInt(46656)))
	c.scaled("mi³", "cubic mile", CategoryVolume, cubicInch.Mul(rational.FromInt(254358061056000)))
	c.scaled("ac · ft", "acre-foot", CategoryVolume, cubicInch.Mul(rational.FromInt(75271680)))
	c.scaled("cords", "cord", CategoryVolume, cubicInch.Mul(rational.FromInt(221184)))
	c.scaled("bu", "bushel", CategoryVolume, cubicInch.Mul(rational.MustNew(107521, 50)))
	c.scaled("pk", "peck", CategoryVolume, cubicInch.Mul(rational.MustNew(107521, 200)))
	c.scaled("dry qt", "dry quart", CategoryVolume, cubicInch.Mul(rational.MustNew(107521, 1600)))
	c.scaled("dry pt", "dry pint", CategoryVolume, cubicInch.Mul(rational.MustNew(107521, 3200)))
	c.scaled("bbl", "barrel", CategoryVolume, gallon.Mul(rational.FromInt(42)))

	imperialGallon := rational.MustNew(454609, 100000)
	c.scaled("gal (UK)", "imperial gallon", CategoryVolume, imperialGallon)
	c.scaled("fl oz (UK)", "imperial fluid ounce", CategoryVolume, imperialGallon.Mul(rational.MustNew(1, 160)))
	c.scaled("gi (UK)", "imperial gill", CategoryVolume, imperialGallon.Mul(rational.MustNew(1, 32)))

	// count, dimensionless
	c.scaled("ct", "count", CategoryCount, one)

	// time, base second
	c.scaled("Ts", "terasecond", CategoryTime, pow10(12))
	c.scaled("Gs", "gigasecond", CategoryTime, pow10(9))
	c.scaled("Ms", "megasecond", CategoryTime, pow10(6))
	c.scaled("ks", "kilosecond", CategoryTime, pow10(3))
	c.scaled("hs", "hectosecond", CategoryTime, pow10(2))
	c.scaled("das", "decasecond", CategoryTime, pow10(1))
	c.scaled("s", "second", CategoryTime, one)
	c.scaled("ds", "decisecond", CategoryTime, pow10(-1))
	c.scaled("cs", "centisecond", CategoryTime, pow10(-2))
	c.scaled("ms", "millisecond", CategoryTime, pow10(-3))
	c.scaled("µs", "microsecond", CategoryTime, pow10(-6))
	c.scaled("ns", "nanosecond", CategoryTime, pow10(-9))
	c.scaled("ps", "picosecond", CategoryTime, pow10(-12))
	c.scaled("min", "minute", CategoryTime, rational.FromInt(60))
	c.scaled("h", "hour", CategoryTime, rational.FromInt(3600))
	c.scaled("d", "day", CategoryTime, rational.FromInt(86400))
	c.scaled("a", "year", CategoryTime, rational.FromInt(31557600))

	// temperature, base kelvin; Celsius and Fahrenheit are affine
	c.scaled("TK", "terakelvin", CategoryTemperature, pow10(12))
	c.scaled("GK", "gigakelvin", CategoryTemperature, pow10(9))
	c.scaled("MK", "megakelvin", CategoryTemperature, pow10(6))
	c.scaled("kK", "kilokelvin", CategoryTemperature, pow10(3))
	c.scaled("hK", "hectokelvin", CategoryTemperature, pow10(2))
	c.scaled("daK", "decakelvin", CategoryTemperature, pow10(1))
	c.scaled("K", "kelvin", CategoryTemperature, one)
	c.scaled("dK", "decikelvin", CategoryTemperature, pow10(-1))
	c.scaled("cK", "centikelvin", CategoryTemperature, pow10(-2))
	c.scaled("mK", "millikelvin", CategoryTemperature, pow10(-3))
	c.scaled("µK", "microkelvin", CategoryTemperature, pow10(-6))
	c.scaled("nK", "nanokelvin", CategoryTemperature, pow10(-9))
	c.scaled("pK", "picokelvin", CategoryTemperature, pow10(-12))
	c.add("°C", "degree Celsius", CategoryTemperature, one, rational.MustNew(5463, 20))
	c.add("°F", "degree Fahrenheit", CategoryTemperature, rational.MustNew(5, 9), rational.MustNew(45967, 180))
	c.add("°R", "degree Rankine", CategoryTemperature, rational.MustNew(5, 9), rational.Rational{})

	return c
}
