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

package recipefile

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/cookbook-dev/cookbook/pkg/document"
	"github.com/cookbook-dev/cookbook/pkg/rational"
	"github.com/cookbook-dev/cookbook/pkg/serializer"
	"github.com/cookbook-dev/cookbook/pkg/unit"
)

// ParseError wraps any decode failure with the file path it came from.
type ParseError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying error for errors.Is and errors.As.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Codec decodes and encodes recipe files. Unit abbreviations are resolved
// against the catalog the codec was built with, so a codec is only as
// permissive as its catalog.
type Codec struct {
	catalog  *unit.Catalog
	validate *validator.Validate
}

// NewCodec creates a Codec bound to the given unit catalog. Passing nil uses
// the default catalog.
func NewCodec(catalog *unit.Catalog) *Codec {
	if catalog == nil {
		catalog = unit.Default()
	}
	return &Codec{
		catalog:  catalog,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Decode reads one recipe in the given format. Recipes and nested entities
// missing an id get a fresh one assigned, so the decoded document is always
// fully identified; persist it with Encode to make the ids stick.
func (c *Codec) Decode(r io.Reader, format serializer.Format) (*document.Recipe, error) {
	reader, err := serializer.NewReader(format, r)
	if err != nil {
		return nil, err
	}
	return c.decode(reader)
}

// DecodeFile reads one recipe from a file path or an http:// or https:// URL,
// detecting the format from the extension. Failures are wrapped in a
// ParseError carrying the path.
func (c *Codec) DecodeFile(path string) (*document.Recipe, error) {
	reader, err := serializer.NewFileReaderAuto(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer reader.Close()

	rec, err := c.decode(reader)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	slog.Debug("loaded recipe file",
		slog.String("path", path),
		slog.String("recipe", rec.Name),
	)
	return rec, nil
}

func (c *Codec) decode(reader *serializer.Reader) (*document.Recipe, error) {
	var rf recipeFile
	if err := reader.Deserialize(&rf); err != nil {
		return nil, err
	}
	if err := c.validate.Struct(&rf); err != nil {
		return nil, wireValidationError(err)
	}

	rec, err := c.toDocument(&rf)
	if err != nil {
		return nil, err
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	rec.EnsureIDs()
	return rec, nil
}

// Encode writes the recipe in the given format. Missing ids are assigned
// before writing, which mutates the recipe, so a load after a save always
// sees the same ids. Output is deterministic: encoding the same document
// twice yields identical bytes.
func (c *Codec) Encode(ctx context.Context, w io.Writer, format serializer.Format, rec *document.Recipe) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	rec.EnsureIDs()
	return c.EncodeView(ctx, w, format, rec)
}

// EncodeView writes the recipe like Encode but never assigns ids, leaving the
// document untouched. Read paths serving a recipe shared across goroutines
// use it to stay mutation free.
func (c *Codec) EncodeView(ctx context.Context, w io.Writer, format serializer.Format, rec *document.Recipe) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	return serializer.NewWriter(format, w).Serialize(ctx, fromDocument(rec))
}

// EncodeFile writes the recipe to a file, detecting the format from the
// extension.
func (c *Codec) EncodeFile(ctx context.Context, path string, rec *document.Recipe) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create recipe file: %w", err)
	}
	defer f.Close()

	if err := c.Encode(ctx, f, serializer.FormatFromPath(path), rec); err != nil {
		return &ParseError{Path: path, Err: err}
	}

	slog.Debug("wrote recipe file",
		slog.String("path", path),
		slog.String("recipe", rec.Name),
	)
	return nil
}

func (c *Codec) toDocument(rf *recipeFile) (*document.Recipe, error) {
	id, err := parseID(rf.ID, "", "id")
	if err != nil {
		return nil, err
	}

	rec := &document.Recipe{
		ID:             id,
		Name:           rf.Name,
		Description:    rf.Description,
		Comments:       rf.Comments,
		Source:         rf.Source,
		Author:         rf.Author,
		AmountMade:     rf.AmountMade,
		AmountMadeUnit: rf.AmountMadeUnit,
		Tags:           rf.Tags,
	}

	for i, sf := range rf.Steps {
		path := fmt.Sprintf("steps[%d]", i)
		step, err := c.toStep(&sf, path)
		if err != nil {
			return nil, err
		}
		rec.Steps = append(rec.Steps, step)
	}
	return rec, nil
}

func (c *Codec) toStep(sf *stepFile, path string) (document.Step, error) {
	id, err := parseID(sf.ID, path, "id")
	if err != nil {
		return document.Step{}, err
	}

	stepType, err := document.ParseStepType(sf.Type)
	if err != nil {
		return document.Step{}, &document.ValidationError{
			Path: path, Field: "step_type", Reason: err.Error(),
		}
	}

	step := document.Step{
		ID:           id,
		Instructions: sf.Instructions,
		Type:         stepType,
	}

	step.TimeNeeded, err = c.pairedQuantity(sf.TimeNeeded, sf.TimeNeededUnit, path, "time_needed")
	if err != nil {
		return document.Step{}, err
	}
	step.Temperature, err = c.pairedQuantity(sf.Temperature, sf.TemperatureUnit, path, "temperature")
	if err != nil {
		return document.Step{}, err
	}

	for i, f := range sf.Ingredients {
		ing, err := c.toIngredient(&f, fmt.Sprintf("%s.ingredients[%d]", path, i))
		if err != nil {
			return document.Step{}, err
		}
		step.Ingredients = append(step.Ingredients, ing)
	}
	for i, f := range sf.Equipment {
		eqPath := fmt.Sprintf("%s.equipment[%d]", path, i)
		eqID, err := parseID(f.ID, eqPath, "id")
		if err != nil {
			return document.Step{}, err
		}
		step.Equipment = append(step.Equipment, document.Equipment{
			ID:          eqID,
			Name:        f.Name,
			Description: f.Description,
			IsOwned:     f.IsOwned,
		})
	}
	return step, nil
}

func (c *Codec) toIngredient(f *ingredientFile, path string) (document.Ingredient, error) {
	id, err := parseID(f.ID, path, "id")
	if err != nil {
		return document.Ingredient{}, err
	}

	set := 0
	for _, present := range []bool{f.Quantity != nil, f.Mass != nil, f.Volume != nil} {
		if present {
			set++
		}
	}
	if set != 1 {
		return document.Ingredient{}, &document.ValidationError{
			Path: path, Field: "amount",
			Reason: "exactly one of quantity, mass, volume must be set",
		}
	}

	var amount document.Amount
	switch {
	case f.Quantity != nil:
		amount = document.NewCountAmount(*f.Quantity)
	case f.Mass != nil:
		q, err := c.catalog.Quantity(f.Mass.Value, f.Mass.Unit)
		if err != nil {
			return document.Ingredient{}, fmt.Errorf("%s.mass: %w", path, err)
		}
		if amount, err = document.NewMassAmount(q); err != nil {
			return document.Ingredient{}, fmt.Errorf("%s.mass: %w", path, err)
		}
	case f.Volume != nil:
		q, err := c.catalog.Quantity(f.Volume.Value, f.Volume.Unit)
		if err != nil {
			return document.Ingredient{}, fmt.Errorf("%s.volume: %w", path, err)
		}
		if amount, err = document.NewVolumeAmount(q); err != nil {
			return document.Ingredient{}, fmt.Errorf("%s.volume: %w", path, err)
		}
	}

	return document.Ingredient{
		ID:          id,
		Name:        f.Name,
		Description: f.Description,
		Amount:      amount,
	}, nil
}

// pairedQuantity builds an optional quantity from a value field and a unit
// field that must be present together or not at all.
func (c *Codec) pairedQuantity(v *rational.Rational, abbr, path, field string) (*unit.Quantity, error) {
	if v == nil && abbr == "" {
		return nil, nil
	}
	if v == nil || abbr == "" {
		return nil, &document.ValidationError{
			Path: path, Field: field,
			Reason: "value and unit must be set together",
		}
	}
	q, err := c.catalog.Quantity(*v, abbr)
	if err != nil {
		return nil, fmt.Errorf("%s.%s: %w", path, field, err)
	}
	return &q, nil
}

func parseID(s, path, field string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, &document.ValidationError{
			Path: path, Field: field, Reason: fmt.Sprintf("invalid uuid %q", s),
		}
	}
	return id, nil
}

func fromDocument(rec *document.Recipe) *recipeFile {
	rf := &recipeFile{
		ID:             rec.ID.String(),
		Name:           rec.Name,
		Description:    rec.Description,
		Comments:       rec.Comments,
		Source:         rec.Source,
		Author:         rec.Author,
		AmountMade:     rec.AmountMade,
		AmountMadeUnit: rec.AmountMadeUnit,
		Tags:           rec.Tags,
	}
	for _, s := range rec.Steps {
		rf.Steps = append(rf.Steps, fromStep(s))
	}
	return rf
}

func fromStep(s document.Step) stepFile {
	sf := stepFile{
		ID:           s.ID.String(),
		Instructions: s.Instructions,
		Type:         s.Type.String(),
	}
	if s.TimeNeeded != nil {
		v := s.TimeNeeded.Value()
		sf.TimeNeeded = &v
		sf.TimeNeededUnit = s.TimeNeeded.Unit().Abbr()
	}
	if s.Temperature != nil {
		v := s.Temperature.Value()
		sf.Temperature = &v
		sf.TemperatureUnit = s.Temperature.Unit().Abbr()
	}
	for _, ing := range s.Ingredients {
		sf.Ingredients = append(sf.Ingredients, fromIngredient(ing))
	}
	for _, eq := range s.Equipment {
		sf.Equipment = append(sf.Equipment, equipmentFile{
			ID:          eq.ID.String(),
			Name:        eq.Name,
			Description: eq.Description,
			IsOwned:     eq.IsOwned,
		})
	}
	return sf
}

func fromIngredient(ing document.Ingredient) ingredientFile {
	f := ingredientFile{
		ID:          ing.ID.String(),
		Name:        ing.Name,
		Description: ing.Description,
	}
	switch ing.Amount.Kind() {
	case document.MeasureCount:
		v, _ := ing.Amount.Count()
		f.Quantity = &v
	case document.MeasureMass:
		q, _ := ing.Amount.Quantity()
		f.Mass = &measureFile{Value: q.Value(), Unit: q.Unit().Abbr()}
	case document.MeasureVolume:
		q, _ := ing.Amount.Quantity()
		f.Volume = &measureFile{Value: q.Value(), Unit: q.Unit().Abbr()}
	}
	return f
}

// wireValidationError translates the first validator failure into a
// ValidationError so decode callers see one error shape regardless of which
// layer rejected the input.
func wireValidationError(err error) error {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return err
	}
	fe := errs[0]
	return &document.ValidationError{
		Field:  strings.ToLower(fe.Field()),
		Reason: fmt.Sprintf("failed %q validation", fe.Tag()),
	}
}
