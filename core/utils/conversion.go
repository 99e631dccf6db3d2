package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToFloat converts a decoded request value to float64 using explicit type switching.
// It accepts every numeric type, json.Number, numeric strings and byte slices.
// NaN and infinities are rejected so callers never confuse them with a result.
func ToFloat(val any) (float64, error) {
	var f float64

	switch v := val.(type) {
	case nil:
		return 0, fmt.Errorf("value is empty")
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case int32:
		f = float64(v)
	case int16:
		f = float64(v)
	case int8:
		f = float64(v)
	case uint:
		f = float64(v)
	case uint64:
		f = float64(v)
	case uint32:
		f = float64(v)
	case uint16:
		f = float64(v)
	case uint8:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("could not convert %q to float: %w", v.String(), err)
		}
		f = parsed
	case string:
		return parseFloat(v)
	case []byte:
		return parseFloat(string(v))
	default:
		return 0, fmt.Errorf("could not convert %T to float", val)
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("value %v is not finite", f)
	}
	return f, nil
}

func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("value is empty")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("could not convert string to float: %q", s)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("value %q is not finite", s)
	}
	return f, nil
}

// ToString converts various types to string.
// Nil yields the empty string so absent JSON fields read as missing.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// RoundTo rounds v to the given number of decimal places, half away from zero.
// Values too large to carry that many decimals are returned unchanged.
func RoundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	scaled := v * scale
	if math.IsInf(scaled, 0) || math.Abs(scaled) >= 1<<53 {
		return v
	}
	return math.Round(scaled) / scale
}
