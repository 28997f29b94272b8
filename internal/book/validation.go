package book

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	actionAdd    = "Gagal menambahkan buku"
	actionUpdate = "Gagal memperbarui buku"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidationError reports input that breaks a book rule. Message is user facing.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// validateInput checks in and prefixes the first violation with action.
func validateInput(action string, in Input) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	return &ValidationError{
		Field:   fe.Field(),
		Message: action + ". " + reason(fe),
	}
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Mohon isi nama buku"
	case "ltefield":
		return fmt.Sprintf("%s tidak boleh lebih besar dari pageCount", fe.Field())
	case "gte":
		return fmt.Sprintf("%s tidak boleh bernilai negatif", fe.Field())
	default:
		return fmt.Sprintf("%s tidak valid", fe.Field())
	}
}
