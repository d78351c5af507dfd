package calculator

import (
	"math"
	"strconv"
	"strings"
)

// FormatResult печатает результат так же, как число печатает браузер:
// 10 а не 10.0, 3.5, 1e-7, 1e+21, Infinity.
func FormatResult(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		// -0 печатаем как 0
		return "0"
	case v < 0:
		return "-" + formatPositive(-v)
	}
	return formatPositive(v)
}

// formatPositive раскладывает кратчайшую запись на цифры и порядок
// и выбирает между обычной и экспоненциальной формой.
func formatPositive(v float64) string {
	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
	digits := strings.Replace(mantissa, ".", "", 1)
	e, _ := strconv.Atoi(exp)

	// n - позиция десятичной точки относительно первой цифры
	n, k := e+1, len(digits)

	switch {
	case k <= n && n <= 21:
		return digits + strings.Repeat("0", n-k)
	case 0 < n && n <= 21:
		return digits[:n] + "." + digits[n:]
	case -6 < n && n <= 0:
		return "0." + strings.Repeat("0", -n) + digits
	}

	var b strings.Builder
	b.WriteString(digits[:1])
	if k > 1 {
		b.WriteString(".")
		b.WriteString(digits[1:])
	}
	b.WriteString("e")
	if n-1 >= 0 {
		b.WriteString("+")
	}
	b.WriteString(strconv.Itoa(n - 1))
	return b.String()
}
