package document

import "github.com/google/uuid"

// Equipment is any implement used to prepare a recipe, from a stove to a
// stand mixer to a potato peeler.
type Equipment struct {
	// ID is the stable identifier used to correlate with an external
	// inventory store. Assigned on first save when absent.
	ID uuid.UUID
	// Name is the short name of the item.
	Name string
	// Description is an optional longer description.
	Description string
	// IsOwned records whether the item is owned. Lets a browser filter out
	// recipes needing equipment you would only discover missing halfway
	// through cooking.
	IsOwned bool
}

// Equal reports field-for-field equality.
func (e Equipment) Equal(o Equipment) bool {
	return e.ID == o.ID &&
		e.Name == o.Name &&
		e.Description == o.Description &&
		e.IsOwned == o.IsOwned
}

func (e Equipment) validate(path string) error {
	if e.Name == "" {
		return validationErr(path, "name", "equipment name is required")
	}
	return nil
}
