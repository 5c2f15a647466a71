package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate holds struct-tag rules for domain items. Custom rules are
// registered once at package initialisation.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("option_letter", validateOptionLetter); err != nil {
		panic(fmt.Sprintf("register option_letter validation: %v", err))
	}
	return v
}

// validateOptionLetter accepts exactly the upper-case letters A-D.
func validateOptionLetter(fl validator.FieldLevel) bool {
	return OptionLetter(fl.Field().String()).Valid()
}

// validateStruct runs the tag rules and folds any failure into ErrValidation.
func validateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}
