package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-maintenance-search/models"
	"github.com/go-playground/validator/v10"
)

// ModelValidator validates [models.Record] and [models.Criteria] values
// against their `validate` struct tags.
type ModelValidator struct {
	v *validator.Validate
}

// NewModelValidator constructs a [Validator] for the search view models.
func NewModelValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &ModelValidator{v: v}
}

func (m *ModelValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Record:
		return m.validate(ctx, value, ErrInvalidRecord, fields...)
	case *models.Record:
		return m.validate(ctx, value, ErrInvalidRecord, fields...)

	case models.Criteria:
		return m.validate(ctx, value, ErrInvalidCriteria, fields...)
	case *models.Criteria:
		return m.validate(ctx, value, ErrInvalidCriteria, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (m *ModelValidator) validate(ctx context.Context, obj any, sentinel error, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = m.v.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = m.v.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %w", sentinel, err)
	}

	return fmt.Errorf("%w: %w", sentinel, validationErrs)
}

// Details returns a field → failed tag map for a validation error produced
// by [ModelValidator]. It returns nil for any other error.
func Details(err error) map[string]string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	out := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}
