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

package document

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/cookbook-dev/cookbook/pkg/rational"
)

// Recipe represents one recipe from start to finish. It exclusively owns its
// steps; nothing in a document is shared by reference across recipes.
type Recipe struct {
	// ID is unique within a collection. Generated at parse time when the
	// source file has none, and persisted on the next save so a later load
	// sees the same id.
	ID uuid.UUID
	// Name is the short name of the recipe.
	Name string
	// Description is optional.
	Description string
	// Comments are optional free-form notes.
	Comments string
	// Source records where the recipe came from.
	Source string
	// Author is the recipe author.
	Author string
	// AmountMade is the finished quantity the recipe makes, like 24
	// cookies or 6 portions.
	AmountMade rational.Rational
	// AmountMadeUnit labels AmountMade for display. It is an opaque label,
	// deliberately not resolved against the unit catalog.
	AmountMadeUnit string
	// Tags, in document order.
	Tags []string
	// Steps, in document order.
	Steps []Step
}

// New creates a Recipe with a freshly allocated id.
func New(name, source, author string) *Recipe {
	return &Recipe{
		ID:     uuid.New(),
		Name:   name,
		Source: source,
		Author: author,
	}
}

// AddStep validates the step and appends it.
func (r *Recipe) AddStep(s Step) error {
	return r.InsertStep(len(r.Steps), s)
}

// InsertStep validates the step and inserts it at index i.
func (r *Recipe) InsertStep(i int, s Step) error {
	if i < 0 || i > len(r.Steps) {
		return fmt.Errorf("step index %d out of range [0,%d]", i, len(r.Steps))
	}
	if err := s.validate(fmt.Sprintf("steps[%d]", i)); err != nil {
		return err
	}
	r.Steps = slices.Insert(r.Steps, i, s)
	return nil
}

// RemoveStep removes the step at index i.
func (r *Recipe) RemoveStep(i int) error {
	if i < 0 || i >= len(r.Steps) {
		return fmt.Errorf("step index %d out of range [0,%d)", i, len(r.Steps))
	}
	r.Steps = append(r.Steps[:i], r.Steps[i+1:]...)
	return nil
}

// MoveStep reorders the step at index from to index to, shifting the steps
// in between.
func (r *Recipe) MoveStep(from, to int) error {
	if from < 0 || from >= len(r.Steps) {
		return fmt.Errorf("step index %d out of range [0,%d)", from, len(r.Steps))
	}
	if to < 0 || to >= len(r.Steps) {
		return fmt.Errorf("step index %d out of range [0,%d)", to, len(r.Steps))
	}
	s := r.Steps[from]
	r.Steps = append(r.Steps[:from], r.Steps[from+1:]...)
	r.Steps = slices.Insert(r.Steps, to, s)
	return nil
}

// SetAmountMade sets the finished quantity and its display label. The label
// is not validated against the unit catalog.
func (r *Recipe) SetAmountMade(v rational.Rational, unitLabel string) error {
	if v.Sign() < 0 {
		return validationErr("", "amount_made", "amount made cannot be negative")
	}
	r.AmountMade = v
	r.AmountMadeUnit = unitLabel
	return nil
}

// EnsureIDs assigns a fresh UUID to the recipe and to every step,
// ingredient, and equipment item that has none. Existing ids are never
// regenerated.
func (r *Recipe) EnsureIDs() {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	for i := range r.Steps {
		s := &r.Steps[i]
		if s.ID == uuid.Nil {
			s.ID = uuid.New()
		}
		for j := range s.Ingredients {
			if s.Ingredients[j].ID == uuid.Nil {
				s.Ingredients[j].ID = uuid.New()
			}
		}
		for j := range s.Equipment {
			if s.Equipment[j].ID == uuid.Nil {
				s.Equipment[j].ID = uuid.New()
			}
		}
	}
}

// Validate checks every invariant of the whole tree, returning a
// ValidationError with the path of the first offending entity. Edit
// operations validate on mutation, so a recipe assembled through them is
// already valid; Validate is the backstop for recipes built field by field.
func (r *Recipe) Validate() error {
	if r.Name == "" {
		return validationErr("", "name", "recipe name is required")
	}
	if r.Source == "" {
		return validationErr("", "source", "recipe source is required")
	}
	if r.Author == "" {
		return validationErr("", "author", "recipe author is required")
	}
	if r.AmountMade.Sign() < 0 {
		return validationErr("", "amount_made", "amount made cannot be negative")
	}
	for i, s := range r.Steps {
		if err := s.validate(fmt.Sprintf("steps[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

// Equal reports deep structural equality, the relation the serialization
// round-trip law is stated in. Equal measurements expressed in different
// units are not equal documents.
func (r *Recipe) Equal(o *Recipe) bool {
	if r == nil || o == nil {
		return r == o
	}
	if r.ID != o.ID ||
		r.Name != o.Name ||
		r.Description != o.Description ||
		r.Comments != o.Comments ||
		r.Source != o.Source ||
		r.Author != o.Author ||
		!r.AmountMade.Equal(o.AmountMade) ||
		r.AmountMadeUnit != o.AmountMadeUnit ||
		!slices.Equal(r.Tags, o.Tags) ||
		len(r.Steps) != len(o.Steps) {
		return false
	}
	for i := range r.Steps {
		if !r.Steps[i].Equal(o.Steps[i]) {
			return false
		}
	}
	return true
}
