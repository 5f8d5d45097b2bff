package utils

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError lists the fields that failed validation, in struct order
type ValidationError struct {
	Fields   []string
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// MissingOnly reports whether every failure is an absent required field
func (e *ValidationError) MissingOnly() bool {
	for _, msg := range e.Messages {
		if !strings.HasSuffix(msg, " is required") {
			return false
		}
	}
	return true
}

func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	// Format validation errors
	verr := &ValidationError{}
	for _, fe := range fieldErrs {
		field := strings.ToLower(fe.Field())
		tag := fe.Tag()
		param := fe.Param()

		verr.Fields = append(verr.Fields, field)
		switch tag {
		case "required":
			verr.Messages = append(verr.Messages, field+" is required")
		case "min":
			verr.Messages = append(verr.Messages, field+" must be at least "+param+" characters")
		case "max":
			verr.Messages = append(verr.Messages, field+" must be at most "+param+" characters")
		case "len":
			verr.Messages = append(verr.Messages, field+" must be exactly "+param+" characters")
		case "oneof":
			verr.Messages = append(verr.Messages, field+" must be one of "+param)
		default:
			verr.Messages = append(verr.Messages, field+" is invalid")
		}
	}

	return verr
}
