package calculator

import (
	"strings"
)

// Operation - арифметическая операция, выбранная пользователем.
type Operation string

const (
	Add      Operation = "add"
	Subtract Operation = "subtract"
	Multiply Operation = "multiply"
	Divide   Operation = "divide"
)

const msgUnknownOperation = "Input should be 'add', 'subtract', 'multiply' or 'divide'"

// Operations возвращает все поддерживаемые операции в порядке кнопок на странице
func Operations() []Operation {
	return []Operation{Add, Subtract, Multiply, Divide}
}

// Title возвращает подпись операции для интерфейса
func (op Operation) Title() string {
	switch op {
	case Add:
		return "Add"
	case Subtract:
		return "Subtract"
	case Multiply:
		return "Multiply"
	case Divide:
		return "Divide"
	}
	return string(op)
}

func (op Operation) Valid() bool {
	switch op {
	case Add, Subtract, Multiply, Divide:
		return true
	}
	return false
}

// ParseOperation разбирает имя операции без учета регистра и пробелов по краям
func ParseOperation(name string) (Operation, error) {
	op := Operation(strings.ToLower(strings.TrimSpace(name)))
	if !op.Valid() {
		return "", &InvalidInputError{
			Field:   "operation",
			Message: msgUnknownOperation,
			Err:     ErrUnknownOperation,
		}
	}
	return op, nil
}

// Calculate применяет операцию к двум уже проверенным операндам.
func Calculate(op Operation, a, b float64) (float64, error) {
	switch op {
	case Add:
		return a + b, nil
	case Subtract:
		return a - b, nil
	case Multiply:
		return a * b, nil
	case Divide:
		// -0 тоже ноль
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	default:
		return 0, ErrUnknownOperation
	}
}

// Evaluate проверяет оба текстовых операнда и только потом считает.
// Если невалидны оба, возвращаются ошибки по каждому полю.
func Evaluate(op Operation, a, b string) (float64, error) {
	x, y, err := parseOperands(a, b)
	if err != nil {
		return 0, err
	}

	return Calculate(op, x, y)
}

// EvaluateNamed - то же, что Evaluate, но с именем операции из запроса.
// Ошибки операции и операндов возвращаются вместе.
func EvaluateNamed(name, a, b string) (float64, error) {
	var errs ValidationErrors

	op, err := ParseOperation(name)
	errs = errs.Add(err)

	x, y, err := parseOperands(a, b)
	errs = errs.Add(err)

	if err := errs.Err(); err != nil {
		return 0, err
	}

	return Calculate(op, x, y)
}

func parseOperands(a, b string) (float64, float64, error) {
	var errs ValidationErrors

	x, err := ParseOperand("a", a)
	errs = errs.Add(err)

	y, err := ParseOperand("b", b)
	errs = errs.Add(err)

	return x, y, errs.Err()
}
