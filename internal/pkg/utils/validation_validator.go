package utils

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(fieldLabel)
	_ = validate.RegisterValidation("nonnegative", nonNegative)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// fieldLabel names a field in validation messages after its label tag, then
// its form tag, then the Go field name.
func fieldLabel(field reflect.StructField) string {
	if label := field.Tag.Get("label"); label != "" {
		return label
	}
	if name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]; name != "" && name != "-" {
		return name
	}
	return field.Name
}

// nonNegative accepts a numeric string that is zero or more. Run it after
// numeric so only parseable values reach it.
func nonNegative(fl validator.FieldLevel) bool {
	value, err := strconv.ParseFloat(fl.Field().String(), 64)
	return err == nil && value >= 0
}
