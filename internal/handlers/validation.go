package handlers

import (
	"errors"

	"ib-compliance/internal/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the status tags used in request structs to gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding validator is not go-playground/validator")
	}
	if err := v.RegisterValidation("control_status", func(fl validator.FieldLevel) bool {
		return models.ControlStatus(fl.Field().String()).Valid()
	}); err != nil {
		return err
	}
	return v.RegisterValidation("risk_status", func(fl validator.FieldLevel) bool {
		return models.RiskStatus(fl.Field().String()).Valid()
	})
}
