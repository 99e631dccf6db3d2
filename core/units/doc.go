// Package units is the conversion engine of the unit converter.
//
// It owns the static unit catalog (identifiers, display labels and conversion
// factors) and the pure functions that convert a value between two units of the
// same category. Nothing in this package performs I/O or keeps mutable state, so
// every exported function is safe to call from any number of goroutines.
//
// # Categories
//
// Five categories are supported: length, weight, volume, temperature and area.
// The set is closed; Convert dispatches over it with a plain switch.
//
// # Linear categories
//
// Length, weight, volume and area route every conversion through a base unit
// (meter, gram, liter, square meter). The source value is multiplied by the
// source factor and then divided by the target factor:
//
//	result = value * factor[from] / factor[to]
//
// Adding a unit therefore only needs one new factor.
//
// # Temperature
//
// Temperature is affine, not linear, so it has no base unit. Celsius is the
// anchor and each (from, to) pair has its own closed-form formula. Converting a
// scale to itself returns the input unchanged.
//
// # Errors
//
// Unknown categories and units are reported as *ValidationError. A conversion
// never returns a usable number together with an error.
//
// # Usage
//
//	v, err := units.Convert(units.Length, 1, "mile", "meter")
//	if units.IsValidation(err) {
//	    // caller error, e.g. respond with 400
//	}
package units
