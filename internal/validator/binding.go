// Package validator registers the custom binding tags used by request DTOs.
package validator

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin/binding"
	playground "github.com/go-playground/validator/v10"

	"estatehub/internal/domain"
)

// TagPropertyType accepts "sale" or "rent" in any case.
const TagPropertyType = "property_type"

// Register installs the custom tags on gin's default validator engine.
func Register() error {
	v, ok := binding.Validator.Engine().(*playground.Validate)
	if !ok {
		return fmt.Errorf("validator.Register: unexpected binding engine %T", binding.Validator.Engine())
	}
	return RegisterOn(v)
}

// RegisterOn installs the custom tags on v.
func RegisterOn(v *playground.Validate) error {
	return v.RegisterValidation(TagPropertyType, propertyType)
}

func propertyType(fl playground.FieldLevel) bool {
	_, err := domain.ParsePropertyType(fl.Field().String())
	return err == nil
}

// MissingRequired reports whether err is a binding failure caused only by
// absent required fields. Malformed JSON and type mismatches return false.
func MissingRequired(err error) bool {
	var verrs playground.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return false
	}
	for _, fe := range verrs {
		if fe.Tag() != "required" {
			return false
		}
	}
	return true
}
