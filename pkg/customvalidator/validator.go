package customvalidator

import (
	"github.com/go-playground/validator/v10"

	"gearguard/pkg/constants"
)

// RegisterCustomValidations регистрирует доменные правила в переданном
// экземпляре валидатора.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("request_type", isKnownRequestType); err != nil {
		return err
	}
	if err := v.RegisterValidation("request_status", isKnownRequestStatus); err != nil {
		return err
	}
	if err := v.RegisterValidation("request_priority", isKnownRequestPriority); err != nil {
		return err
	}
	return nil
}

func isKnownRequestType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constants.RequestTypeCorrective, constants.RequestTypePreventive:
		return true
	}
	return false
}

func isKnownRequestStatus(fl validator.FieldLevel) bool {
	return constants.IsKnownStatus(fl.Field().String())
}

func isKnownRequestPriority(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constants.PriorityLow, constants.PriorityMedium, constants.PriorityHigh:
		return true
	}
	return false
}
