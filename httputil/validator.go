package httputil

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Validator plugs go-playground/validator into echo (e.Validator).
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{v: validator.New()}
}

func (val *Validator) Validate(i any) error {
	err := val.v.Struct(i)
	if err == nil {
		return nil
	}
	fields := map[string]string{}
	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		for _, fe := range ves {
			fields[fe.Field()] = fe.Tag()
		}
	}
	return &ValidationError{Message: "invalid request body", Fields: fields}
}
