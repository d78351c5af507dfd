package api

import (
	"encoding/json"
	"log"
	"net/http"

	"webcalc/internal/calculator"
	"webcalc/internal/models"
)

// SendJSON пишет ответ в формате JSON с указанным статусом
func SendJSON(w http.ResponseWriter, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Ошибка сериализации ответа: %v", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Internal Server Error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}

// SendErrorResponse отправляет ошибку в формате {"error": "..."}
func SendErrorResponse(w http.ResponseWriter, status int, message string) {
	SendJSON(w, status, models.ErrorResponse{Error: message})
}

// SendSuccessResponse отправляет результат вместе с его текстом для страницы
func SendSuccessResponse(w http.ResponseWriter, result float64) {
	SendJSON(w, http.StatusOK, models.ResultResponse{
		Result:  result,
		Display: calculator.FormatResult(result),
	})
}
