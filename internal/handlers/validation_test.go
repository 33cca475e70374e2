package handlers

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterValidations(t *testing.T) {
	v := validator.New()
	require.NoError(t, registerValidations(v, customValidations))

	type abbHolder struct {
		Abb string `validate:"currency_abb"`
	}
	for abb, valid := range map[string]bool{
		"USD":  true,
		"EUR":  true,
		"usd":  false,
		"US":   false,
		"USDX": false,
		"U1D":  false,
		"ÄÖÜ":  false,
		"":     false,
	} {
		err := v.Struct(abbHolder{Abb: abb})
		if valid {
			assert.NoError(t, err, abb)
		} else {
			assert.Error(t, err, abb)
		}
	}
}

func TestRegisterValidations_ReportsFailure(t *testing.T) {
	err := registerValidations(validator.New(), map[string]validator.Func{"": currencyAbb})
	assert.ErrorContains(t, err, "failed to register")

	err = registerValidations(validator.New(), map[string]validator.Func{"currency_abb": nil})
	assert.Error(t, err)
}
