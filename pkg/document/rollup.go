package document

import "github.com/cookbook-dev/cookbook/pkg/unit"

// Rollups aggregate information across all steps of a recipe for display
// and planning surfaces: total durations, a combined shopping-style
// ingredient list, and the overall equipment list.

// StepTimeTotals sums the time needed per step type. Steps without a
// duration contribute nothing; step types with no timed steps are absent
// from the result. Each total is expressed in the unit of the first timed
// step of that type.
func (r *Recipe) StepTimeTotals() (map[StepType]unit.Quantity, error) {
	totals := make(map[StepType]unit.Quantity)
	for _, s := range r.Steps {
		if s.TimeNeeded == nil {
			continue
		}
		cur, ok := totals[s.Type]
		if !ok {
			totals[s.Type] = *s.TimeNeeded
			continue
		}
		sum, err := cur.Add(*s.TimeNeeded)
		if err != nil {
			return nil, err
		}
		totals[s.Type] = sum
	}
	return totals, nil
}

// TotalTime sums the durations of all timed steps, expressed in the unit of
// the first timed step. The second return is false when no step has a
// duration.
func (r *Recipe) TotalTime() (unit.Quantity, bool, error) {
	var total unit.Quantity
	found := false
	for _, s := range r.Steps {
		if s.TimeNeeded == nil {
			continue
		}
		if !found {
			total = *s.TimeNeeded
			found = true
			continue
		}
		sum, err := total.Add(*s.TimeNeeded)
		if err != nil {
			return unit.Quantity{}, false, err
		}
		total = sum
	}
	return total, found, nil
}

// IngredientList combines the ingredients of all steps into one list,
// summing amounts for ingredients with the same name whenever the amounts
// are addable (same kind, convertible units). Unaddable duplicates stay as
// separate entries rather than failing the whole rollup.
func (r *Recipe) IngredientList() []Ingredient {
	var out []Ingredient
	for _, s := range r.Steps {
		for _, ing := range s.Ingredients {
			merged := false
			for i := range out {
				if out[i].Name != ing.Name {
					continue
				}
				if sum, err := out[i].Amount.Add(ing.Amount); err == nil {
					out[i].Amount = sum
					merged = true
					break
				}
			}
			if !merged {
				out = append(out, ing)
			}
		}
	}
	return out
}

// EquipmentList returns the distinct equipment needed across all steps,
// deduplicated by name in first-use order.
func (r *Recipe) EquipmentList() []Equipment {
	var out []Equipment
	seen := make(map[string]bool)
	for _, s := range r.Steps {
		for _, eq := range s.Equipment {
			if seen[eq.Name] {
				continue
			}
			seen[eq.Name] = true
			out = append(out, eq)
		}
	}
	return out
}

// AllEquipmentOwned reports whether every piece of equipment in every step
// is owned.
func (r *Recipe) AllEquipmentOwned() bool {
	for _, s := range r.Steps {
		for _, eq := range s.Equipment {
			if !eq.IsOwned {
				return false
			}
		}
	}
	return true
}
