package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/infenixDeveloper/artegallera-backend/internal/constants"
	"github.com/infenixDeveloper/artegallera-backend/internal/service"
)

type Error struct {
	FailedField string
	Tag         string
	Value       interface{}
}

type IXValidator interface {
	Validate(data interface{}) []Error
	// Check wraps Validate into a service error carrying the failed fields.
	Check(data interface{}) error
}

type XValidator struct {
	validator *validator.Validate
}

func NewXValidator(v *validator.Validate) IXValidator {
	return &XValidator{validator: v}
}

func (x *XValidator) Validate(data interface{}) []Error {
	var validationErrors []Error

	errs := x.validator.Struct(data)
	if errs != nil {
		for _, err := range errs.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, Error{
				FailedField: err.Field(),
				Tag:         err.Tag(),
				Value:       err.Value(),
			})
		}
	}
	return validationErrors
}

func (x *XValidator) Check(data interface{}) error {
	errs := x.Validate(data)
	if len(errs) == 0 {
		return nil
	}

	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, fmt.Sprintf("%s (%s)", e.FailedField, e.Tag))
	}

	return service.NewServiceError(constants.ErrCodeValidationFailed,
		fmt.Errorf("invalid fields: %s", strings.Join(fields, ", ")))
}
