package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"loomspace_backend/internal/feature/orders/domain/entity"
)

// RegisterValidators installs the "orderstatus" tag on gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("orderstatus", validateOrderStatus)
}

func validateOrderStatus(fl validator.FieldLevel) bool {
	return entity.Status(fl.Field().String()).Valid()
}
