// Package utils provides common helpers for the unit-converter application.
// It includes loose type coercion for decoded request payloads and numeric
// rounding used when formatting conversion results.
package utils
