package models

// ConvertRequest is the body of POST /convert.
// Value is loosely typed: JSON numbers and numeric strings are both accepted.
type ConvertRequest struct {
	Value    any    `json:"value" swaggertype:"number" example:"1"`
	FromUnit string `json:"from_unit" example:"mile"`
	ToUnit   string `json:"to_unit" example:"kilometer"`
	Category string `json:"category" example:"length"`
}

// ConvertResponse echoes the request next to the rounded result.
type ConvertResponse struct {
	Result    float64 `json:"result" example:"1.60934"`
	FromValue float64 `json:"from_value" example:"1"`
	FromUnit  string  `json:"from_unit" example:"mile"`
	ToUnit    string  `json:"to_unit" example:"kilometer"`
	Category  string  `json:"category" example:"length"`
}

// UnitOption is one selectable unit of the catalog.
type UnitOption struct {
	Value string `json:"value" example:"meter"`
	Label string `json:"label" example:"Meter (m)"`
}

// ErrorResponse is returned for every rejected request.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid category: \"volume_bad\""`
}
