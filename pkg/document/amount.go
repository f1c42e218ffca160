package document

import (
	"fmt"

	"github.com/cookbook-dev/cookbook/pkg/rational"
	"github.com/cookbook-dev/cookbook/pkg/unit"
)

// MeasureKind tags which variant of an ingredient amount is set.
type MeasureKind string

// Supported measure kinds.
const (
	MeasureCount  MeasureKind = "count"
	MeasureMass   MeasureKind = "mass"
	MeasureVolume MeasureKind = "volume"
)

// Amount is the quantity of an ingredient: a count, a mass, or a volume.
// Exactly one variant is set, enforced structurally by the constructors
// rather than by checks scattered across call sites. The zero Amount is
// invalid and rejected by validation.
type Amount struct {
	kind  MeasureKind
	count rational.Rational // kind == MeasureCount
	qty   unit.Quantity     // kind == MeasureMass or MeasureVolume
}

// NewCountAmount builds a dimensionless count amount, e.g. 30 chocolate
// chips or 5 bananas.
func NewCountAmount(v rational.Rational) Amount {
	return Amount{kind: MeasureCount, count: v}
}

// NewMassAmount builds a mass amount. The quantity's unit must belong to the
// mass category.
func NewMassAmount(q unit.Quantity) (Amount, error) {
	if q.Category() != unit.CategoryMass {
		return Amount{}, fmt.Errorf("%w: %s is not a mass unit", unit.ErrCategoryMismatch, q.Unit().Abbr())
	}
	return Amount{kind: MeasureMass, qty: q}, nil
}

// NewVolumeAmount builds a volume amount. The quantity's unit must belong to
// the volume category.
func NewVolumeAmount(q unit.Quantity) (Amount, error) {
	if q.Category() != unit.CategoryVolume {
		return Amount{}, fmt.Errorf("%w: %s is not a volume unit", unit.ErrCategoryMismatch, q.Unit().Abbr())
	}
	return Amount{kind: MeasureVolume, qty: q}, nil
}

// Kind returns which variant is set, or "" for the invalid zero Amount.
func (a Amount) Kind() MeasureKind { return a.kind }

// Count returns the count value when the count variant is set.
func (a Amount) Count() (rational.Rational, bool) {
	return a.count, a.kind == MeasureCount
}

// Quantity returns the unit-typed quantity when the mass or volume variant
// is set.
func (a Amount) Quantity() (unit.Quantity, bool) {
	return a.qty, a.kind == MeasureMass || a.kind == MeasureVolume
}

// Add sums two amounts of the same kind, converting units as needed. Mixing
// kinds fails with ErrCategoryMismatch.
func (a Amount) Add(o Amount) (Amount, error) {
	if a.kind != o.kind {
		return Amount{}, fmt.Errorf("%w: cannot add %s to %s", unit.ErrCategoryMismatch, o.kind, a.kind)
	}
	if a.kind == MeasureCount {
		return NewCountAmount(a.count.Add(o.count)), nil
	}
	sum, err := a.qty.Add(o.qty)
	if err != nil {
		return Amount{}, err
	}
	return Amount{kind: a.kind, qty: sum}, nil
}

// Scale multiplies the amount by an exact factor.
func (a Amount) Scale(factor rational.Rational) Amount {
	if a.kind == MeasureCount {
		return NewCountAmount(a.count.Mul(factor))
	}
	return Amount{kind: a.kind, qty: a.qty.Scale(factor)}
}

// Equal reports whether two amounts represent the same measurement. Amounts
// of different kinds are unequal.
func (a Amount) Equal(o Amount) bool {
	if a.kind != o.kind {
		return false
	}
	if a.kind == MeasureCount {
		return a.count.Equal(o.count)
	}
	return a.qty.Equal(o.qty)
}

// String renders the amount for display, e.g. "30", "250 g", or "1/2 cup".
func (a Amount) String() string {
	if a.kind == MeasureCount {
		return a.count.String()
	}
	return a.qty.String()
}

// validate checks the exactly-one-variant invariant for the given entity
// path.
func (a Amount) validate(path string) error {
	switch a.kind {
	case MeasureCount:
		return nil
	case MeasureMass:
		if a.qty.Category() != unit.CategoryMass {
			return validationErr(path, "amount", "mass amount carries a non-mass unit")
		}
	case MeasureVolume:
		if a.qty.Category() != unit.CategoryVolume {
			return validationErr(path, "amount", "volume amount carries a non-volume unit")
		}
	default:
		return validationErr(path, "amount", "no quantity variant set")
	}
	return nil
}
