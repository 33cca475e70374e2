package handlers

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	currencyAbbPattern = regexp.MustCompile(`^[A-Z]{3}$`)
	registerOnce       sync.Once
)

// customValidations are the binding tags used by the request DTOs beyond validator's built-ins.
var customValidations = map[string]validator.Func{
	"currency_abb": currencyAbb,
}

// currencyAbb validates a three-letter upper-case currency abbreviation.
func currencyAbb(fl validator.FieldLevel) bool {
	return currencyAbbPattern.MatchString(fl.Field().String())
}

func registerValidations(v *validator.Validate, validations map[string]validator.Func) error {
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %q validation: %w", tag, err)
		}
	}
	return nil
}

// registerValidators adds the custom binding tags to gin's validator engine.
// It panics when they cannot be registered, since every request using them would fail.
func registerValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			panic(fmt.Sprintf("unexpected binding validator engine %T", binding.Validator.Engine()))
		}
		if err := registerValidations(v, customValidations); err != nil {
			panic(err)
		}
	})
}
