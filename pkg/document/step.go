package document

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cookbook-dev/cookbook/pkg/unit"
)

// StepType buckets steps for duration rollups.
type StepType string

// Supported step types.
const (
	StepTypePrep  StepType = "Prep"
	StepTypeCook  StepType = "Cook"
	StepTypeWait  StepType = "Wait"
	StepTypeOther StepType = "Other"
)

// String returns the string representation of the step type.
func (s StepType) String() string {
	return string(s)
}

// IsValid reports whether the step type is one of the supported values.
func (s StepType) IsValid() bool {
	switch s {
	case StepTypePrep, StepTypeCook, StepTypeWait, StepTypeOther:
		return true
	default:
		return false
	}
}

// ParseStepType converts a string to a StepType.
func ParseStepType(s string) (StepType, error) {
	t := StepType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("unsupported step type: %q", s)
	}
	return t, nil
}

// SupportedStepTypes returns all supported step types.
func SupportedStepTypes() []StepType {
	return []StepType{StepTypePrep, StepTypeCook, StepTypeWait, StepTypeOther}
}

// Step is a discrete step within a recipe. It exclusively owns its
// ingredients and equipment.
type Step struct {
	// ID is assigned on first save when absent.
	ID uuid.UUID
	// TimeNeeded is how long the step takes. Optional for informational
	// steps or steps without a traditional duration. Always a time-category
	// quantity when present.
	TimeNeeded *unit.Quantity
	// Temperature is the cook temperature. Optional for steps that don't
	// involve heat. Always a temperature-category quantity when present.
	Temperature *unit.Quantity
	// Instructions for the step.
	Instructions string
	// Type buckets the step for duration totals.
	Type StepType
	// Ingredients used in this step, in document order.
	Ingredients []Ingredient
	// Equipment used in this step, in document order.
	Equipment []Equipment
}

// SetTimeNeeded sets or clears the step duration, rejecting quantities
// outside the time category.
func (s *Step) SetTimeNeeded(q *unit.Quantity) error {
	if q != nil && q.Category() != unit.CategoryTime {
		return validationErr("", "time_needed",
			fmt.Sprintf("unit %s is not a time unit", q.Unit().Abbr()))
	}
	s.TimeNeeded = q
	return nil
}

// SetTemperature sets or clears the cook temperature, rejecting quantities
// outside the temperature category.
func (s *Step) SetTemperature(q *unit.Quantity) error {
	if q != nil && q.Category() != unit.CategoryTemperature {
		return validationErr("", "temperature",
			fmt.Sprintf("unit %s is not a temperature unit", q.Unit().Abbr()))
	}
	s.Temperature = q
	return nil
}

// AddIngredient appends an ingredient after validating it.
func (s *Step) AddIngredient(ing Ingredient) error {
	if err := ing.validate(""); err != nil {
		return err
	}
	s.Ingredients = append(s.Ingredients, ing)
	return nil
}

// RemoveIngredient removes the ingredient at index i.
func (s *Step) RemoveIngredient(i int) error {
	if i < 0 || i >= len(s.Ingredients) {
		return fmt.Errorf("ingredient index %d out of range [0,%d)", i, len(s.Ingredients))
	}
	s.Ingredients = append(s.Ingredients[:i], s.Ingredients[i+1:]...)
	return nil
}

// AddEquipment appends an equipment item after validating it.
func (s *Step) AddEquipment(eq Equipment) error {
	if err := eq.validate(""); err != nil {
		return err
	}
	s.Equipment = append(s.Equipment, eq)
	return nil
}

// RemoveEquipment removes the equipment item at index i.
func (s *Step) RemoveEquipment(i int) error {
	if i < 0 || i >= len(s.Equipment) {
		return fmt.Errorf("equipment index %d out of range [0,%d)", i, len(s.Equipment))
	}
	s.Equipment = append(s.Equipment[:i], s.Equipment[i+1:]...)
	return nil
}

// Equal reports deep structural equality.
func (s Step) Equal(o Step) bool {
	if s.ID != o.ID ||
		s.Instructions != o.Instructions ||
		s.Type != o.Type ||
		!quantityPtrEqual(s.TimeNeeded, o.TimeNeeded) ||
		!quantityPtrEqual(s.Temperature, o.Temperature) ||
		len(s.Ingredients) != len(o.Ingredients) ||
		len(s.Equipment) != len(o.Equipment) {
		return false
	}
	for i := range s.Ingredients {
		if !s.Ingredients[i].Equal(o.Ingredients[i]) {
			return false
		}
	}
	for i := range s.Equipment {
		if !s.Equipment[i].Equal(o.Equipment[i]) {
			return false
		}
	}
	return true
}

func quantityPtrEqual(a, b *unit.Quantity) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Unit().Abbr() == b.Unit().Abbr() && a.Value().Equal(b.Value())
}

func (s Step) validate(path string) error {
	if !s.Type.IsValid() {
		return validationErr(path, "step_type", fmt.Sprintf("unsupported step type %q", string(s.Type)))
	}
	if s.TimeNeeded != nil && s.TimeNeeded.Category() != unit.CategoryTime {
		return validationErr(path, "time_needed", "quantity is not in the time category")
	}
	if s.Temperature != nil && s.Temperature.Category() != unit.CategoryTemperature {
		return validationErr(path, "temperature", "quantity is not in the temperature category")
	}
	for i, ing := range s.Ingredients {
		if err := ing.validate(fmt.Sprintf("%s.ingredients[%d]", path, i)); err != nil {
			return err
		}
	}
	for i, eq := range s.Equipment {
		if err := eq.validate(fmt.Sprintf("%s.equipment[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}
