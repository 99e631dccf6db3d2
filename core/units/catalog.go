package units

import "github.com/samber/lo"

// Unit is one entry of the catalog.
type Unit struct {
	// ID is the identifier accepted as from_unit / to_unit.
	ID string `json:"value"`
	// Label is for presentation only.
	Label string `json:"label"`
	// Factor is the multiplier against the category base unit.
	// Zero for temperature scales.
	Factor float64 `json:"-"`
}

// table is the immutable unit set of one category.
type table struct {
	base  string
	units []Unit
	index map[string]float64
}

func newTable(base string, units ...Unit) *table {
	t := &table{
		base:  base,
		units: units,
		index: make(map[string]float64, len(units)),
	}
	for _, u := range units {
		t.index[u.ID] = u.Factor
	}
	return t
}

func (t *table) factor(id string) (float64, bool) {
	f, ok := t.index[id]
	return f, ok
}

var (
	lengthTable = newTable("meter",
		Unit{ID: "meter", Label: "Meter (m)", Factor: 1},
		Unit{ID: "kilometer", Label: "Kilometer (km)", Factor: 1000},
		Unit{ID: "centimeter", Label: "Centimeter (cm)", Factor: 0.01},
		Unit{ID: "millimeter", Label: "Millimeter (mm)", Factor: 0.001},
		Unit{ID: "mile", Label: "Mile (mi)", Factor: 1609.34},
		Unit{ID: "yard", Label: "Yard (yd)", Factor: 0.9144},
		Unit{ID: "foot", Label: "Foot (ft)", Factor: 0.3048},
		Unit{ID: "inch", Label: "Inch (in)", Factor: 0.0254},
	)

	weightTable = newTable("gram",
		Unit{ID: "gram", Label: "Gram (g)", Factor: 1},
		Unit{ID: "kilogram", Label: "Kilogram (kg)", Factor: 1000},
		Unit{ID: "milligram", Label: "Milligram (mg)", Factor: 0.001},
		Unit{ID: "metric_ton", Label: "Metric Ton (t)", Factor: 1000000},
		Unit{ID: "pound", Label: "Pound (lb)", Factor: 453.592},
		Unit{ID: "ounce", Label: "Ounce (oz)", Factor: 28.3495},
		Unit{ID: "stone", Label: "Stone (st)", Factor: 6350.29},
		Unit{ID: "us_ton", Label: "US Ton", Factor: 907185},
	)

	volumeTable = newTable("liter",
		Unit{ID: "liter", Label: "Liter (L)", Factor: 1},
		Unit{ID: "milliliter", Label: "Milliliter (mL)", Factor: 0.001},
		Unit{ID: "cubic_meter", Label: "Cubic Meter (m³)", Factor: 1000},
		Unit{ID: "us_gallon", Label: "US Gallon (gal)", Factor: 3.78541},
		Unit{ID: "us_quart", Label: "US Quart (qt)", Factor: 0.946353},
		Unit{ID: "us_pint", Label: "US Pint (pt)", Factor: 0.473176},
		Unit{ID: "us_cup", Label: "US Cup", Factor: 0.236588},
		Unit{ID: "us_fluid_ounce", Label: "US Fluid Ounce (fl oz)", Factor: 0.0295735},
		Unit{ID: "imperial_gallon", Label: "Imperial Gallon (gal)", Factor: 4.54609},
	)

	// Temperature scales carry no factor; see temperature.go.
	temperatureTable = newTable("",
		Unit{ID: Celsius, Label: "Celsius (°C)"},
		Unit{ID: Fahrenheit, Label: "Fahrenheit (°F)"},
		Unit{ID: Kelvin, Label: "Kelvin (K)"},
	)

	areaTable = newTable("square_meter",
		Unit{ID: "square_meter", Label: "Square Meter (m²)", Factor: 1},
		Unit{ID: "square_kilometer", Label: "Square Kilometer (km²)", Factor: 1000000},
		Unit{ID: "square_centimeter", Label: "Square Centimeter (cm²)", Factor: 0.0001},
		Unit{ID: "hectare", Label: "Hectare (ha)", Factor: 10000},
		Unit{ID: "square_mile", Label: "Square Mile (mi²)", Factor: 2589988.11},
		Unit{ID: "acre", Label: "Acre", Factor: 4046.86},
		Unit{ID: "square_yard", Label: "Square Yard (yd²)", Factor: 0.836127},
		Unit{ID: "square_foot", Label: "Square Foot (ft²)", Factor: 0.092903},
		Unit{ID: "square_inch", Label: "Square Inch (in²)", Factor: 0.00064516},
	)
)

func tableFor(c Category) (*table, bool) {
	switch c {
	case Length:
		return lengthTable, true
	case Weight:
		return weightTable, true
	case Volume:
		return volumeTable, true
	case Temperature:
		return temperatureTable, true
	case Area:
		return areaTable, true
	default:
		return nil, false
	}
}

// UnitsOf returns the ordered unit list of a category.
// The returned slice is a copy and may be modified by the caller.
func UnitsOf(c Category) ([]Unit, error) {
	t, ok := tableFor(c)
	if !ok {
		return nil, &ValidationError{Field: "category", Value: string(c), Err: ErrUnknownCategory}
	}
	out := make([]Unit, len(t.units))
	copy(out, t.units)
	return out, nil
}

// UnitIDs returns the identifiers of a category in catalog order.
func UnitIDs(c Category) ([]string, error) {
	list, err := UnitsOf(c)
	if err != nil {
		return nil, err
	}
	return lo.Map(list, func(u Unit, _ int) string { return u.ID }), nil
}

// BaseUnit returns the reference unit of a linear category.
// Temperature has none and reports false.
func BaseUnit(c Category) (string, bool) {
	t, ok := tableFor(c)
	if !ok || t.base == "" {
		return "", false
	}
	return t.base, true
}

// Supports reports whether unit belongs to category c.
func Supports(c Category, unit string) bool {
	t, ok := tableFor(c)
	if !ok {
		return false
	}
	return t.has(unit)
}

// Catalog returns every category with its ordered unit list.
func Catalog() map[Category][]Unit {
	return lo.SliceToMap(categories, func(c Category) (Category, []Unit) {
		list, _ := UnitsOf(c)
		return c, list
	})
}
