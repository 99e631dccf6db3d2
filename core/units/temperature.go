package units

// Temperature scale identifiers.
const (
	Celsius    = "celsius"
	Fahrenheit = "fahrenheit"
	Kelvin     = "kelvin"
)

const (
	kelvinOffset     = 273.15
	fahrenheitOffset = 32.0
)

// ConvertTemperature converts between celsius, fahrenheit and kelvin using the
// closed-form formula of each pair. Celsius is the anchor of every formula.
func ConvertTemperature(value float64, from, to string) (float64, error) {
	if !temperatureTable.has(from) {
		return 0, unknownUnit(Temperature, "from_unit", from)
	}
	if !temperatureTable.has(to) {
		return 0, unknownUnit(Temperature, "to_unit", to)
	}
	if from == to {
		return value, nil
	}
	return checkFinite(Temperature, value, temperatureFormula(value, from, to))
}

func temperatureFormula(value float64, from, to string) float64 {
	switch from {
	case Celsius:
		if to == Fahrenheit {
			return value*9/5 + fahrenheitOffset
		}
		return value + kelvinOffset
	case Fahrenheit:
		if to == Celsius {
			return (value - fahrenheitOffset) * 5 / 9
		}
		return (value-fahrenheitOffset)*5/9 + kelvinOffset
	default: // Kelvin
		if to == Celsius {
			return value - kelvinOffset
		}
		return (value-kelvinOffset)*9/5 + fahrenheitOffset
	}
}

func (t *table) has(id string) bool {
	_, ok := t.index[id]
	return ok
}
