package api

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"webcalc/internal/calculator"
	"webcalc/internal/models"
)

const (
	maxBodyBytes   = 1 << 20
	msgInvalidBody = "Input should be a valid JSON object"
)

type CalculatorHandler struct{}

func NewCalculatorHandler() *CalculatorHandler {
	return &CalculatorHandler{}
}

// Operation возвращает обработчик POST /<операция>
func (h *CalculatorHandler) Operation(op calculator.Operation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.OperandsRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeCalculationError(w, r, err)
			return
		}

		a, b, err := decodeOperands(req.A, req.B)
		if err != nil {
			writeCalculationError(w, r, err)
			return
		}

		result, err := calculator.Calculate(op, a, b)
		if err != nil {
			writeCalculationError(w, r, err)
			return
		}

		SendSuccessResponse(w, result)
	}
}

// Calculate обрабатывает POST /calculate с операцией в теле запроса
func (h *CalculatorHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req models.CalculateRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeCalculationError(w, r, err)
		return
	}

	// Ошибки операции и операндов отдаем одним ответом
	var errs calculator.ValidationErrors

	op, err := calculator.ParseOperation(req.Operation)
	errs = errs.Add(err)

	a, b, err := decodeOperands(req.A, req.B)
	errs = errs.Add(err)

	if err := errs.Err(); err != nil {
		writeCalculationError(w, r, err)
		return
	}

	result, err := calculator.Calculate(op, a, b)
	if err != nil {
		writeCalculationError(w, r, err)
		return
	}

	SendSuccessResponse(w, result)
}

// decodeBody читает ровно один JSON объект, данные после него - ошибка
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return calculator.NewInvalidInput("body", msgInvalidBody)
	}
	if err := dec.Decode(new(json.RawMessage)); !errors.Is(err, io.EOF) {
		return calculator.NewInvalidInput("body", msgInvalidBody)
	}
	return nil
}

// decodeOperands принимает число JSON или строку с числом
func decodeOperands(rawA, rawB json.RawMessage) (float64, float64, error) {
	var errs calculator.ValidationErrors

	a, err := parseOperand("a", rawA)
	errs = errs.Add(err)

	b, err := parseOperand("b", rawB)
	errs = errs.Add(err)

	return a, b, errs.Err()
}

func parseOperand(field string, raw json.RawMessage) (float64, error) {
	if len(raw) == 0 {
		return 0, calculator.NewInvalidInput(field, calculator.MsgFieldRequired)
	}

	var text string
	switch c := raw[0]; {
	case c == '"':
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, calculator.NewInvalidInput(field, calculator.MsgInvalidNumber)
		}
	case c == '-' || (c >= '0' && c <= '9'):
		text = string(raw)
	default:
		// null, true/false, объекты и массивы
		return 0, calculator.NewInvalidInput(field, calculator.MsgInvalidNumber)
	}

	return calculator.ParseOperand(field, text)
}

func writeCalculationError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, calculator.ErrDivisionByZero):
		SendErrorResponse(w, http.StatusBadRequest, err.Error())
	case calculator.IsInvalidInput(err):
		SendErrorResponse(w, http.StatusUnprocessableEntity, err.Error())
	default:
		requestID, _ := GetRequestIDFromContext(r.Context())
		log.Printf("Ошибка вычисления %s %s (запрос %s): %v", r.Method, r.URL.Path, requestID, err)
		SendErrorResponse(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
