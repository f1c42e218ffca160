package recipefile

import "github.com/cookbook-dev/cookbook/pkg/rational"

// Wire representation of a recipe file. Field names are the stable on-disk
// schema; renaming one is a format change. Rationals serialize as exact
// two-integer [numerator, denominator] pairs, never as decimals.
//
// Ids are optional in source files. A decoded recipe gets fresh ids for
// anything missing one, and the next encode persists them, so hand-written
// files converge to fully identified ones after a single round trip.

type recipeFile struct {
	ID             string            `json:"id,omitempty" yaml:"id,omitempty"`
	Name           string            `json:"name" yaml:"name" validate:"required"`
	Description    string            `json:"description,omitempty" yaml:"description,omitempty"`
	Comments       string            `json:"comments,omitempty" yaml:"comments,omitempty"`
	Source         string            `json:"source" yaml:"source" validate:"required"`
	Author         string            `json:"author" yaml:"author" validate:"required"`
	AmountMade     rational.Rational `json:"amount_made" yaml:"amount_made"`
	AmountMadeUnit string            `json:"amount_made_unit,omitempty" yaml:"amount_made_unit,omitempty"`
	Tags           []string          `json:"tags,omitempty" yaml:"tags,omitempty"`
	Steps          []stepFile        `json:"steps,omitempty" yaml:"steps,omitempty" validate:"dive"`
}

type stepFile struct {
	ID              string             `json:"id,omitempty" yaml:"id,omitempty"`
	TimeNeeded      *rational.Rational `json:"time_needed,omitempty" yaml:"time_needed,omitempty"`
	TimeNeededUnit  string             `json:"time_needed_unit,omitempty" yaml:"time_needed_unit,omitempty"`
	Temperature     *rational.Rational `json:"temperature,omitempty" yaml:"temperature,omitempty"`
	TemperatureUnit string             `json:"temperature_unit,omitempty" yaml:"temperature_unit,omitempty"`
	Instructions    string             `json:"instructions" yaml:"instructions" validate:"required"`
	Type            string             `json:"step_type" yaml:"step_type" validate:"required"`
	Ingredients     []ingredientFile   `json:"ingredients,omitempty" yaml:"ingredients,omitempty" validate:"dive"`
	Equipment       []equipmentFile    `json:"equipment,omitempty" yaml:"equipment,omitempty" validate:"dive"`
}

type ingredientFile struct {
	ID          string             `json:"id,omitempty" yaml:"id,omitempty"`
	Name        string             `json:"name" yaml:"name" validate:"required"`
	Description string             `json:"description,omitempty" yaml:"description,omitempty"`
	Quantity    *rational.Rational `json:"quantity,omitempty" yaml:"quantity,omitempty"`
	Mass        *measureFile       `json:"mass,omitempty" yaml:"mass,omitempty"`
	Volume      *measureFile       `json:"volume,omitempty" yaml:"volume,omitempty"`
}

type measureFile struct {
	Value rational.Rational `json:"value" yaml:"value"`
	Unit  string            `json:"unit" yaml:"unit" validate:"required"`
}

type equipmentFile struct {
	ID          string `json:"id,omitempty" yaml:"id,omitempty"`
	Name        string `json:"name" yaml:"name" validate:"required"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	IsOwned     bool   `json:"is_owned" yaml:"is_owned"`
}
