package validator_test

import (
	"errors"
	"testing"

	playground "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estatehub/internal/validator"
)

type propertyPayload struct {
	Type string  `validate:"required,property_type"`
	Opt  *string `validate:"omitempty,property_type"`
}

func TestPropertyTypeTag(t *testing.T) {
	v := playground.New()
	require.NoError(t, validator.RegisterOn(v))

	tests := []struct {
		value string
		valid bool
	}{
		{"sale", true},
		{"rent", true},
		{"SALE", true},
		{" Rent ", true},
		{"lease", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := v.Struct(propertyPayload{Type: tt.value})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestPropertyTypeTag_OptionalPointer(t *testing.T) {
	v := playground.New()
	require.NoError(t, validator.RegisterOn(v))

	bad := "auction"
	assert.NoError(t, v.Struct(propertyPayload{Type: "sale"}))
	assert.Error(t, v.Struct(propertyPayload{Type: "sale", Opt: &bad}))
}

func TestRegister_GinEngine(t *testing.T) {
	assert.NoError(t, validator.Register())
}

type amountPayload struct {
	Amount *int   `validate:"required"`
	Type   string `validate:"omitempty,property_type"`
}

func TestMissingRequired(t *testing.T) {
	v := playground.New()
	require.NoError(t, validator.RegisterOn(v))
	one := 1

	assert.True(t, validator.MissingRequired(v.Struct(amountPayload{})))
	assert.False(t, validator.MissingRequired(v.Struct(amountPayload{Amount: &one, Type: "lease"})))
	assert.False(t, validator.MissingRequired(v.Struct(amountPayload{Type: "lease"})))
	assert.False(t, validator.MissingRequired(errors.New("invalid character 'x'")))
	assert.False(t, validator.MissingRequired(nil))
}
