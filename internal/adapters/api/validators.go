package api

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const maxLocationLength = 200

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators installs the custom binding rules on gin's validator engine
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		registerErr = v.RegisterValidation("location", validateLocation)
	})
	return registerErr
}

// validateLocation accepts free text that is non-blank and reasonably short
func validateLocation(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	return value != "" && len(value) <= maxLocationLength
}
