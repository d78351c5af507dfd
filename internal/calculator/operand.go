package calculator

import (
	"math"
	"strconv"
	"strings"
)

// ParseOperand разбирает текст поля как десятичное или целое число.
// Шестнадцатеричная запись, NaN и бесконечности числами не считаются.
func ParseOperand(field, text string) (float64, error) {
	s := strings.TrimSpace(text)
	if s == "" || !isDecimal(s) {
		return 0, NewInvalidInput(field, MsgInvalidNumber)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, NewInvalidInput(field, MsgInvalidNumber)
	}

	return v, nil
}

// isDecimal пропускает только знак, цифры, точку и экспоненту
func isDecimal(s string) bool {
	digits := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			digits = true
		case c == '.', c == 'e', c == 'E', c == '+', c == '-':
		default:
			return false
		}
	}
	return digits
}
