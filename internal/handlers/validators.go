package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// phonePattern accepts local and international formats, e.g. 01712345678 or +8801712345678.
var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 -]{5,19}$`)

// registerCustomValidators installs the binding validators referenced by DTO tags.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
}
