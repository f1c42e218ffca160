package document

import "github.com/google/uuid"

// Ingredient is a single ingredient with the amount used in one step.
type Ingredient struct {
	// ID is the stable identifier used to correlate with an external
	// inventory store. Assigned on first save when absent.
	ID uuid.UUID
	// Name is the ingredient short name.
	Name string
	// Description is optional.
	Description string
	// Amount is the count, mass, or volume used. Exactly one variant is
	// set; see Amount.
	Amount Amount
}

// Equal reports field-for-field equality.
func (i Ingredient) Equal(o Ingredient) bool {
	return i.ID == o.ID &&
		i.Name == o.Name &&
		i.Description == o.Description &&
		i.Amount.Equal(o.Amount) &&
		sameUnitAbbr(i.Amount, o.Amount)
}

// sameUnitAbbr distinguishes 90 min from 3/2 h: document equality is
// structural, equal measurements in different units are different documents.
func sameUnitAbbr(a, b Amount) bool {
	qa, aok := a.Quantity()
	qb, bok := b.Quantity()
	if !aok || !bok {
		return aok == bok
	}
	return qa.Unit().Abbr() == qb.Unit().Abbr()
}

func (i Ingredient) validate(path string) error {
	if i.Name == "" {
		return validationErr(path, "name", "ingredient name is required")
	}
	return i.Amount.validate(path)
}
