// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// decimalAmountRegex matches signed decimal money strings ("-25.00", "100").
var decimalAmountRegex = regexp.MustCompile(`^-?[0-9][0-9,]*(\.[0-9]+)?$`)

// categoryIDRegex matches the bank's kebab-case category slugs.
var categoryIDRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("decimal_amount", validateDecimalAmount)
		_ = v.RegisterValidation("category_id", validateCategoryID)
	}
}

func validateDecimalAmount(fl validator.FieldLevel) bool {
	return decimalAmountRegex.MatchString(fl.Field().String())
}

func validateCategoryID(fl validator.FieldLevel) bool {
	return categoryIDRegex.MatchString(fl.Field().String())
}
