package models

import (
	"encoding/json"
	"math"
)

// OperandsRequest - тело запроса POST /add, /subtract, /multiply, /divide.
// Операнды хранятся как есть: число JSON или строка из поля ввода.
type OperandsRequest struct {
	A json.RawMessage `json:"a"`
	B json.RawMessage `json:"b"`
}

// CalculateRequest - тело запроса POST /calculate
type CalculateRequest struct {
	Operation string          `json:"operation"`
	A         json.RawMessage `json:"a"`
	B         json.RawMessage `json:"b"`
}

// ResultResponse - успешный ответ. Display - результат в том виде, в каком
// его показывает страница; для переполнения (±Inf) result равен null.
type ResultResponse struct {
	Result  float64 `json:"result"`
	Display string  `json:"display"`
}

func (r ResultResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Result  *float64 `json:"result"`
		Display string   `json:"display"`
	}{
		Result:  finiteOrNil(r.Result),
		Display: r.Display,
	})
}

func finiteOrNil(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
