package document

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/cookbook-dev/cookbook/pkg/rational"
	"github.com/cookbook-dev/cookbook/pkg/unit"
)

func quantity(t *testing.T, value, abbr string) unit.Quantity {
	t.Helper()
	v, err := rational.Parse(value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	q, err := unit.Default().Quantity(v, abbr)
	if err != nil {
		t.Fatalf("quantity %s %s: %v", value, abbr, err)
	}
	return q
}

func flourIngredient(t *testing.T) Ingredient {
	t.Helper()
	amount, err := NewMassAmount(quantity(t, "500", "g"))
	if err != nil {
		t.Fatalf("NewMassAmount failed: %v", err)
	}
	return Ingredient{Name: "flour", Amount: amount}
}

func TestAmountVariants(t *testing.T) {
	count := NewCountAmount(rational.FromInt(30))
	if count.Kind() != MeasureCount {
		t.Fatalf("kind = %s, want count", count.Kind())
	}
	if got := count.String(); got != "30" {
		t.Fatalf("String() = %q, want 30", got)
	}

	if _, err := NewMassAmount(quantity(t, "1", "mL")); !errors.Is(err, unit.ErrCategoryMismatch) {
		t.Fatalf("mass amount with volume unit error = %v, want ErrCategoryMismatch", err)
	}
	if _, err := NewVolumeAmount(quantity(t, "1", "g")); !errors.Is(err, unit.ErrCategoryMismatch) {
		t.Fatalf("volume amount with mass unit error = %v, want ErrCategoryMismatch", err)
	}
}

func TestAmountAdd(t *testing.T) {
	cup, err := NewVolumeAmount(quantity(t, "1/2", "cup"))
	if err != nil {
		t.Fatalf("NewVolumeAmount failed: %v", err)
	}
	tbsp, err := NewVolumeAmount(quantity(t, "8", "tbsp"))
	if err != nil {
		t.Fatalf("NewVolumeAmount failed: %v", err)
	}

	// 8 tbsp is exactly 1/2 cup
	sum, err := cup.Add(tbsp)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	q, _ := sum.Quantity()
	if !q.Value().Equal(rational.FromInt(1)) || q.Unit().Abbr() != "cup" {
		t.Fatalf("1/2 cup + 8 tbsp = %s, want 1 cup", q)
	}

	count := NewCountAmount(rational.FromInt(2))
	if _, err := cup.Add(count); !errors.Is(err, unit.ErrCategoryMismatch) {
		t.Fatalf("adding count to volume error = %v, want ErrCategoryMismatch", err)
	}
}

func TestZeroAmountInvalid(t *testing.T) {
	ing := Ingredient{Name: "salt"}
	step := Step{Instructions: "season", Type: StepTypeCook}
	if err := step.AddIngredient(ing); !errors.Is(err, ErrValidation) {
		t.Fatalf("ingredient without amount error = %v, want ErrValidation", err)
	}
}

func TestStepQuantityCategories(t *testing.T) {
	var s Step

	tq := quantity(t, "30", "min")
	if err := s.SetTimeNeeded(&tq); err != nil {
		t.Fatalf("SetTimeNeeded failed: %v", err)
	}

	wrong := quantity(t, "30", "g")
	if err := s.SetTimeNeeded(&wrong); !errors.Is(err, ErrValidation) {
		t.Fatalf("mass as duration error = %v, want ErrValidation", err)
	}
	// the failed set must not have clobbered the valid value
	if s.TimeNeeded == nil || !s.TimeNeeded.Value().Equal(rational.FromInt(30)) {
		t.Fatal("failed SetTimeNeeded must leave the previous value intact")
	}

	temp := quantity(t, "2001/5", "°C")
	if err := s.SetTemperature(&temp); err != nil {
		t.Fatalf("SetTemperature failed: %v", err)
	}
	if err := s.SetTemperature(&tq); !errors.Is(err, ErrValidation) {
		t.Fatalf("duration as temperature error = %v, want ErrValidation", err)
	}
}

func TestValidationErrorPath(t *testing.T) {
	r := New("bread", "grandma", "me")
	step := Step{Instructions: "mix", Type: StepTypePrep}
	if err := step.AddIngredient(flourIngredient(t)); err != nil {
		t.Fatalf("AddIngredient failed: %v", err)
	}
	if err := r.AddStep(step); err != nil {
		t.Fatalf("AddStep failed: %v", err)
	}

	// sneak an invalid ingredient past the edit operations
	r.Steps[0].Ingredients = append(r.Steps[0].Ingredients, Ingredient{Name: "mystery"})

	err := r.Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() = %v, want *ValidationError", err)
	}
	if verr.Path != "steps[0].ingredients[1]" {
		t.Fatalf("path = %q, want steps[0].ingredients[1]", verr.Path)
	}
	if verr.Field != "amount" {
		t.Fatalf("field = %q, want amount", verr.Field)
	}
}

func TestStepEditOperations(t *testing.T) {
	r := New("stew", "family", "me")
	for _, instructions := range []string{"chop", "brown", "simmer"} {
		if err := r.AddStep(Step{Instructions: instructions, Type: StepTypeCook}); err != nil {
			t.Fatalf("AddStep failed: %v", err)
		}
	}

	if err := r.MoveStep(2, 0); err != nil {
		t.Fatalf("MoveStep failed: %v", err)
	}
	if r.Steps[0].Instructions != "simmer" || r.Steps[1].Instructions != "chop" {
		t.Fatalf("unexpected order after move: %q, %q", r.Steps[0].Instructions, r.Steps[1].Instructions)
	}

	if err := r.RemoveStep(1); err != nil {
		t.Fatalf("RemoveStep failed: %v", err)
	}
	if len(r.Steps) != 2 {
		t.Fatalf("len(steps) = %d, want 2", len(r.Steps))
	}

	if err := r.RemoveStep(5); err == nil {
		t.Fatal("RemoveStep out of range must fail")
	}
	if err := r.AddStep(Step{Instructions: "bad", Type: StepType("Fry")}); !errors.Is(err, ErrValidation) {
		t.Fatalf("invalid step type error = %v, want ErrValidation", err)
	}
}

func TestEnsureIDs(t *testing.T) {
	r := &Recipe{Name: "toast", Source: "none", Author: "me"}
	step := Step{Instructions: "toast it", Type: StepTypeCook}
	if err := step.AddIngredient(flourIngredient(t)); err != nil {
		t.Fatalf("AddIngredient failed: %v", err)
	}
	r.Steps = append(r.Steps, step)

	r.EnsureIDs()
	if r.ID == uuid.Nil || r.Steps[0].ID == uuid.Nil || r.Steps[0].Ingredients[0].ID == uuid.Nil {
		t.Fatal("EnsureIDs must assign all missing ids")
	}

	id, stepID := r.ID, r.Steps[0].ID
	r.EnsureIDs()
	if r.ID != id || r.Steps[0].ID != stepID {
		t.Fatal("EnsureIDs must never regenerate existing ids")
	}
}

func TestStepTimeTotals(t *testing.T) {
	r := New("roast", "book", "me")
	prep := quantity(t, "10", "min")
	cook1 := quantity(t, "1/2", "h")
	cook2 := quantity(t, "45", "min")

	steps := []Step{
		{Instructions: "prep", Type: StepTypePrep, TimeNeeded: &prep},
		{Instructions: "roast", Type: StepTypeCook, TimeNeeded: &cook1},
		{Instructions: "rest", Type: StepTypeCook, TimeNeeded: &cook2},
		{Instructions: "serve", Type: StepTypeOther},
	}
	for _, s := range steps {
		if err := r.AddStep(s); err != nil {
			t.Fatalf("AddStep failed: %v", err)
		}
	}

	totals, err := r.StepTimeTotals()
	if err != nil {
		t.Fatalf("StepTimeTotals failed: %v", err)
	}
	// 1/2 h + 45 min = 5/4 h, in the first timed cook step's unit
	cookTotal := totals[StepTypeCook]
	if !cookTotal.Value().Equal(rational.MustNew(5, 4)) || cookTotal.Unit().Abbr() != "h" {
		t.Fatalf("cook total = %s, want 5/4 h", cookTotal)
	}
	if _, ok := totals[StepTypeOther]; ok {
		t.Fatal("untimed step types must be absent from totals")
	}

	total, ok, err := r.TotalTime()
	if err != nil || !ok {
		t.Fatalf("TotalTime = %v, %v", ok, err)
	}
	// 10 min + 30 min + 45 min = 85 min
	if !total.Value().Equal(rational.FromInt(85)) || total.Unit().Abbr() != "min" {
		t.Fatalf("total = %s, want 85 min", total)
	}
}

func TestIngredientList(t *testing.T) {
	r := New("dough", "book", "me")

	halfCup, _ := NewVolumeAmount(quantity(t, "1/2", "cup"))
	tbsp, _ := NewVolumeAmount(quantity(t, "8", "tbsp"))
	grams, _ := NewMassAmount(quantity(t, "100", "g"))

	s1 := Step{Instructions: "mix", Type: StepTypePrep}
	_ = s1.AddIngredient(Ingredient{Name: "water", Amount: halfCup})
	_ = s1.AddIngredient(Ingredient{Name: "sugar", Amount: grams})
	s2 := Step{Instructions: "knead", Type: StepTypePrep}
	_ = s2.AddIngredient(Ingredient{Name: "water", Amount: tbsp})
	_ = s2.AddIngredient(Ingredient{Name: "sugar", Amount: NewCountAmount(rational.FromInt(3))})

	_ = r.AddStep(s1)
	_ = r.AddStep(s2)

	list := r.IngredientList()
	if len(list) != 3 {
		t.Fatalf("len(list) = %d, want 3 (water merged, sugar kinds kept apart)", len(list))
	}
	water := list[0]
	q, _ := water.Amount.Quantity()
	if water.Name != "water" || !q.Value().Equal(rational.FromInt(1)) {
		t.Fatalf("water total = %s, want 1 cup", q)
	}
}

func TestEquipmentRollups(t *testing.T) {
	r := New("cake", "box", "me")
	s1 := Step{Instructions: "mix", Type: StepTypePrep}
	_ = s1.AddEquipment(Equipment{Name: "bowl", IsOwned: true})
	_ = s1.AddEquipment(Equipment{Name: "mixer", IsOwned: true})
	s2 := Step{Instructions: "bake", Type: StepTypeCook}
	_ = s2.AddEquipment(Equipment{Name: "bowl", IsOwned: true})
	_ = s2.AddEquipment(Equipment{Name: "oven", IsOwned: false})
	_ = r.AddStep(s1)
	_ = r.AddStep(s2)

	list := r.EquipmentList()
	if len(list) != 3 {
		t.Fatalf("len(list) = %d, want 3", len(list))
	}
	if r.AllEquipmentOwned() {
		t.Fatal("AllEquipmentOwned must be false, the oven is not owned")
	}
}

func TestRecipeEqual(t *testing.T) {
	build := func() *Recipe {
		r := &Recipe{
			ID:             uuid.MustParse("6d9576eb-78a1-43f8-a478-6a0e0f11b0d6"),
			Name:           "bread",
			Source:         "grandma",
			Author:         "me",
			AmountMade:     rational.FromInt(2),
			AmountMadeUnit: "loaves",
			Tags:           []string{"baking", "bread"},
		}
		tq := quantity(t, "90", "min")
		r.Steps = []Step{{
			ID:           uuid.MustParse("a807afa6-a3ef-4977-af7a-2f4e6331cbd9"),
			Instructions: "bake",
			Type:         StepTypeCook,
			TimeNeeded:   &tq,
		}}
		return r
	}

	a, b := build(), build()
	if !a.Equal(b) {
		t.Fatal("identical recipes must be equal")
	}

	// same duration in a different unit is a different document
	other := quantity(t, "3/2", "h")
	b.Steps[0].TimeNeeded = &other
	if a.Equal(b) {
		t.Fatal("90 min and 3/2 h are equal quantities but different documents")
	}
}
