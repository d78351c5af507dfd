package calculator

import (
	"errors"
	"strings"
)

var (
	// Текст уходит пользователю как есть
	ErrDivisionByZero   = errors.New("Cannot divide by zero!")
	ErrUnknownOperation = errors.New("unknown operation")
)

const (
	MsgInvalidNumber = "Input should be a valid number"
	MsgFieldRequired = "Field required"
)

// InvalidInputError описывает невалидное поле запроса
type InvalidInputError struct {
	Field   string
	Message string
	Err     error
}

func NewInvalidInput(field, message string) *InvalidInputError {
	return &InvalidInputError{Field: field, Message: message}
}

func (e *InvalidInputError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *InvalidInputError) Unwrap() error {
	return e.Err
}

// ValidationErrors собирает ошибки по нескольким полям
type ValidationErrors []*InvalidInputError

// Add добавляет ошибку, если она описывает невалидное поле; остальные ошибки игнорируются.
// Список ошибок добавляется целиком.
func (v ValidationErrors) Add(err error) ValidationErrors {
	var list ValidationErrors
	if errors.As(err, &list) {
		return append(v, list...)
	}

	var invalid *InvalidInputError
	if errors.As(err, &invalid) {
		return append(v, invalid)
	}
	return v
}

// Err возвращает nil для пустого списка, одну ошибку как есть или весь список
func (v ValidationErrors) Err() error {
	switch len(v) {
	case 0:
		return nil
	case 1:
		return v[0]
	}
	return v
}

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) Unwrap() []error {
	errs := make([]error, 0, len(v))
	for _, e := range v {
		errs = append(errs, e)
	}
	return errs
}

// Fields возвращает имена невалидных полей
func (v ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(v))
	for _, e := range v {
		fields = append(fields, e.Field)
	}
	return fields
}

// IsInvalidInput сообщает, что ошибка вызвана невалидным вводом
func IsInvalidInput(err error) bool {
	var invalid *InvalidInputError
	return errors.As(err, &invalid)
}
