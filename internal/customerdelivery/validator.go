package customerdelivery

import (
	"github.com/go-petr/ledger/internal/domain"
	"github.com/go-playground/validator/v10"
)

// ValidCPR validates whether the field holds a 10 digit cpr.
var ValidCPR validator.Func = func(fl validator.FieldLevel) bool {
	if cpr, ok := fl.Field().Interface().(string); ok {
		return domain.ValidCPR(cpr)
	}
	return false
}
