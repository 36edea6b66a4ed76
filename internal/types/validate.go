package types

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared by every request type; it caches struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names so errors match the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// Tag registration only fails on programmer error (empty tag or nil func).
	if err := v.RegisterValidation("difficulty", func(fl validator.FieldLevel) bool {
		_, ok := ParseDifficulty(fl.Field().String())
		return ok
	}); err != nil {
		panic("types: register difficulty validation: " + err.Error())
	}
	return v
}
