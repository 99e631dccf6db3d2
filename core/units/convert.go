package units

import "math"

// Convert routes a conversion to the engine function of its category.
func Convert(c Category, value float64, from, to string) (float64, error) {
	switch c {
	case Length:
		return ConvertLength(value, from, to)
	case Weight:
		return ConvertWeight(value, from, to)
	case Volume:
		return ConvertVolume(value, from, to)
	case Temperature:
		return ConvertTemperature(value, from, to)
	case Area:
		return ConvertArea(value, from, to)
	default:
		return 0, &ValidationError{Field: "category", Value: string(c), Err: ErrUnknownCategory}
	}
}

// ConvertByName parses the category name before dispatching.
func ConvertByName(category string, value float64, from, to string) (float64, error) {
	c, err := ParseCategory(category)
	if err != nil {
		return 0, err
	}
	return Convert(c, value, from, to)
}

// ConvertLength converts between length units through meters.
func ConvertLength(value float64, from, to string) (float64, error) {
	return convertLinear(Length, lengthTable, value, from, to)
}

// ConvertWeight converts between mass units through grams.
func ConvertWeight(value float64, from, to string) (float64, error) {
	return convertLinear(Weight, weightTable, value, from, to)
}

// ConvertVolume converts between volume units through liters.
func ConvertVolume(value float64, from, to string) (float64, error) {
	return convertLinear(Volume, volumeTable, value, from, to)
}

// ConvertArea converts between area units through square meters.
func ConvertArea(value float64, from, to string) (float64, error) {
	return convertLinear(Area, areaTable, value, from, to)
}

// convertLinear applies value * factor[from] / factor[to].
// Both units are checked before any arithmetic. When the base value overflows
// the stages run in reverse order; a result that still overflows is rejected.
func convertLinear(c Category, t *table, value float64, from, to string) (float64, error) {
	fromFactor, ok := t.factor(from)
	if !ok {
		return 0, unknownUnit(c, "from_unit", from)
	}
	toFactor, ok := t.factor(to)
	if !ok {
		return 0, unknownUnit(c, "to_unit", to)
	}

	base := value * fromFactor
	result := base / toFactor
	if math.IsInf(base, 0) {
		result = value / toFactor * fromFactor
	}
	return checkFinite(c, value, result)
}
