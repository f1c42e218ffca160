package unit

// Category classifies units into disjoint measurement families. Units never
// convert across categories.
type Category string

// Supported unit categories.
const (
	CategoryMass        Category = "mass"
	CategoryVolume      Category = "volume"
	CategoryCount       Category = "count"
	CategoryTime        Category = "time"
	CategoryTemperature Category = "temperature"
)

// String returns the string representation of the category.
func (c Category) String() string {
	return string(c)
}

// IsValid reports whether the category is one of the supported values.
func (c Category) IsValid() bool {
	switch c {
	case CategoryMass, CategoryVolume, CategoryCount, CategoryTime, CategoryTemperature:
		return true
	default:
		return false
	}
}

// SupportedCategories returns all supported categories in display order.
func SupportedCategories() []Category {
	return []Category{
		CategoryMass,
		CategoryVolume,
		CategoryCount,
		CategoryTime,
		CategoryTemperature,
	}
}
