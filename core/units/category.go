package units

// Category is a measurement category tag.
type Category string

const (
	Length      Category = "length"
	Weight      Category = "weight"
	Volume      Category = "volume"
	Temperature Category = "temperature"
	Area        Category = "area"
)

// categories is the display order of the catalog.
var categories = []Category{Length, Weight, Volume, Temperature, Area}

// Categories returns every supported category in catalog order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory validates a raw category name.
func ParseCategory(name string) (Category, error) {
	switch c := Category(name); c {
	case Length, Weight, Volume, Temperature, Area:
		return c, nil
	default:
		return "", &ValidationError{Field: "category", Value: name, Err: ErrUnknownCategory}
	}
}

// IsValid reports whether c is one of the supported categories.
func (c Category) IsValid() bool {
	_, err := ParseCategory(string(c))
	return err == nil
}

func (c Category) String() string {
	return string(c)
}
