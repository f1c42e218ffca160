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

package rational

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

var (
	// ErrMalformedRational indicates a rational could not be constructed or
	// parsed, e.g. a zero denominator or a non-integer component.
	ErrMalformedRational = errors.New("malformed rational")

	// ErrDivisionByZero indicates division or inversion by a zero value.
	ErrDivisionByZero = errors.New("division by zero")
)

// Rational is an exact fraction. Values are immutable and always held in
// lowest terms with a positive denominator. Arithmetic that would overflow
// the int64 fast path is transparently promoted to an arbitrary-precision
// representation, so results never wrap or truncate.
//
// The zero value is 0.
type Rational struct {
	// fast path, valid when wide == nil; den > 0 except for the zero value
	num int64
	den int64

	// promoted representation, authoritative when non-nil; never mutated
	wide *big.Rat
}

// New constructs a Rational from a numerator and denominator pair.
// A zero denominator fails with ErrMalformedRational.
func New(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, fmt.Errorf("%w: zero denominator", ErrMalformedRational)
	}
	// MinInt64 cannot be negated or absoluted in int64
	if num == math.MinInt64 || den == math.MinInt64 {
		return fromBigRat(new(big.Rat).SetFrac(big.NewInt(num), big.NewInt(den))), nil
	}
	if den < 0 {
		num, den = -num, -den
	}
	if g := gcd(abs(num), den); g > 1 {
		num /= g
		den /= g
	}
	return Rational{num: num, den: den}, nil
}

// MustNew is like New but panics on error. Intended for static catalog
// definitions and tests.
func MustNew(num, den int64) Rational {
	r, err := New(num, den)
	if err != nil {
		panic(err)
	}
	return r
}

// FromInt constructs the Rational n/1.
func FromInt(n int64) Rational {
	return Rational{num: n, den: 1}
}

// FromBigInts constructs a Rational from arbitrary-precision numerator and
// denominator. A zero denominator fails with ErrMalformedRational.
func FromBigInts(num, den *big.Int) (Rational, error) {
	if den.Sign() == 0 {
		return Rational{}, fmt.Errorf("%w: zero denominator", ErrMalformedRational)
	}
	return fromBigRat(new(big.Rat).SetFrac(num, den)), nil
}

// Parse reads a rational from a string of the form "n" or "n/d" with integer
// components. Decimal literals are rejected: they cannot represent the stored
// value exactly.
func Parse(s string) (Rational, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Rational{}, fmt.Errorf("%w: empty input", ErrMalformedRational)
	}
	numStr, denStr, found := strings.Cut(s, "/")
	num, ok := new(big.Int).SetString(strings.TrimSpace(numStr), 10)
	if !ok {
		return Rational{}, fmt.Errorf("%w: numerator %q is not an integer", ErrMalformedRational, numStr)
	}
	if !found {
		return fromBigRat(new(big.Rat).SetInt(num)), nil
	}
	den, ok := new(big.Int).SetString(strings.TrimSpace(denStr), 10)
	if !ok {
		return Rational{}, fmt.Errorf("%w: denominator %q is not an integer", ErrMalformedRational, denStr)
	}
	return FromBigInts(num, den)
}

// fromBigRat normalizes a big.Rat into a Rational, demoting back to the
// int64 representation when both components fit.
func fromBigRat(r *big.Rat) Rational {
	if r.Num().IsInt64() && r.Denom().IsInt64() {
		num, den := r.Num().Int64(), r.Denom().Int64()
		if num != math.MinInt64 && den != math.MinInt64 {
			return Rational{num: num, den: den}
		}
	}
	return Rational{wide: r}
}

// ratio returns the fast-path components, mapping the zero value to 0/1.
func (r Rational) ratio() (int64, int64) {
	if r.den == 0 {
		return 0, 1
	}
	return r.num, r.den
}

// Rat returns the value as a newly allocated big.Rat.
func (r Rational) Rat() *big.Rat {
	if r.wide != nil {
		return new(big.Rat).Set(r.wide)
	}
	num, den := r.ratio()
	return new(big.Rat).SetFrac64(num, den)
}

// Num returns the numerator in lowest terms.
func (r Rational) Num() *big.Int {
	if r.wide != nil {
		return new(big.Int).Set(r.wide.Num())
	}
	num, _ := r.ratio()
	return big.NewInt(num)
}

// Den returns the denominator in lowest terms. Always positive.
func (r Rational) Den() *big.Int {
	if r.wide != nil {
		return new(big.Int).Set(r.wide.Denom())
	}
	_, den := r.ratio()
	return big.NewInt(den)
}

// Int64Ratio reports the numerator/denominator pair when the value fits the
// fixed-width representation.
func (r Rational) Int64Ratio() (num, den int64, ok bool) {
	if r.wide != nil {
		return 0, 0, false
	}
	num, den = r.ratio()
	return num, den, true
}

// Sign returns -1, 0, or 1 depending on the sign of the value.
func (r Rational) Sign() int {
	if r.wide != nil {
		return r.wide.Sign()
	}
	num, _ := r.ratio()
	switch {
	case num < 0:
		return -1
	case num > 0:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether the value is exactly zero.
func (r Rational) IsZero() bool { return r.Sign() == 0 }

// IsInt reports whether the value is a whole number.
func (r Rational) IsInt() bool {
	if r.wide != nil {
		return r.wide.IsInt()
	}
	_, den := r.ratio()
	return den == 1
}

// Add returns r + o.
func (r Rational) Add(o Rational) Rational {
	if r.wide == nil && o.wide == nil {
		an, ad := r.ratio()
		bn, bd := o.ratio()
		// a/b + c/d = (ad' + cb') / bd'
		p1, ok1 := mul64(an, bd)
		p2, ok2 := mul64(bn, ad)
		den, ok3 := mul64(ad, bd)
		if ok1 && ok2 && ok3 {
			if sum, ok := add64(p1, p2); ok {
				return reduced(sum, den)
			}
		}
	}
	return fromBigRat(new(big.Rat).Add(r.Rat(), o.Rat()))
}

// Sub returns r - o.
func (r Rational) Sub(o Rational) Rational {
	return r.Add(o.Neg())
}

// Mul returns r * o.
func (r Rational) Mul(o Rational) Rational {
	if r.wide == nil && o.wide == nil {
		an, ad := r.ratio()
		bn, bd := o.ratio()
		num, ok1 := mul64(an, bn)
		den, ok2 := mul64(ad, bd)
		if ok1 && ok2 {
			return reduced(num, den)
		}
	}
	return fromBigRat(new(big.Rat).Mul(r.Rat(), o.Rat()))
}

// Div returns r / o, failing with ErrDivisionByZero when o is zero.
func (r Rational) Div(o Rational) (Rational, error) {
	inv, err := o.Inv()
	if err != nil {
		return Rational{}, err
	}
	return r.Mul(inv), nil
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	if r.wide != nil {
		return fromBigRat(new(big.Rat).Neg(r.wide))
	}
	num, den := r.ratio()
	if num == math.MinInt64 {
		return fromBigRat(new(big.Rat).Neg(r.Rat()))
	}
	return Rational{num: -num, den: den}
}

// Abs returns the absolute value of r.
func (r Rational) Abs() Rational {
	if r.Sign() < 0 {
		return r.Neg()
	}
	return r
}

// Inv returns 1/r, failing with ErrDivisionByZero when r is zero.
func (r Rational) Inv() (Rational, error) {
	if r.IsZero() {
		return Rational{}, ErrDivisionByZero
	}
	if r.wide != nil {
		return fromBigRat(new(big.Rat).Inv(r.wide)), nil
	}
	num, den := r.ratio()
	if num < 0 {
		if num == math.MinInt64 {
			return fromBigRat(new(big.Rat).Inv(r.Rat())), nil
		}
		return Rational{num: -den, den: -num}, nil
	}
	return Rational{num: den, den: num}, nil
}

// Cmp compares r and o, returning -1, 0, or 1. The order is total and exact.
func (r Rational) Cmp(o Rational) int {
	if r.wide == nil && o.wide == nil {
		an, ad := r.ratio()
		bn, bd := o.ratio()
		l, ok1 := mul64(an, bd)
		g, ok2 := mul64(bn, ad)
		if ok1 && ok2 {
			switch {
			case l < g:
				return -1
			case l > g:
				return 1
			default:
				return 0
			}
		}
	}
	return r.Rat().Cmp(o.Rat())
}

// Equal reports exact equality. No epsilon is involved.
func (r Rational) Equal(o Rational) bool { return r.Cmp(o) == 0 }

// String renders the exact value, "3" for whole numbers and "3/4" otherwise.
func (r Rational) String() string {
	if r.wide != nil {
		if r.wide.IsInt() {
			return r.wide.Num().String()
		}
		return r.wide.Num().String() + "/" + r.wide.Denom().String()
	}
	num, den := r.ratio()
	if den == 1 {
		return strconv.FormatInt(num, 10)
	}
	return strconv.FormatInt(num, 10) + "/" + strconv.FormatInt(den, 10)
}

// Decimal renders the value as a decimal string with the given number of
// fractional digits. The result is for display only and may be lossy; the
// stored value is never replaced by it.
func (r Rational) Decimal(digits int) string {
	if digits < 0 {
		digits = 0
	}
	return r.Rat().FloatString(digits)
}

// reduced builds a Rational from an unreduced int64 pair with den > 0.
func reduced(num, den int64) Rational {
	if num == math.MinInt64 || den == math.MinInt64 {
		return fromBigRat(new(big.Rat).SetFrac(big.NewInt(num), big.NewInt(den)))
	}
	if g := gcd(abs(num), den); g > 1 {
		num /= g
		den /= g
	}
	return Rational{num: num, den: den}
}

// add64 adds two int64 values, reporting false on overflow.
func add64(a, b int64) (int64, bool) {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		return 0, false
	}
	return s, true
}

// mul64 multiplies two int64 values, reporting false on overflow.
func mul64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a == math.MinInt64 || b == math.MinInt64 {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
