// Package validator adapts go-playground/validator to echo and registers the
// loyalty-specific field rules.
package validator

import (
	"reflect"
	"strings"

	"loyalty/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// ValidationError lists the failing fields of a request body, keyed by JSON name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name, rule := range e.Fields {
		names = append(names, name+"="+rule)
	}

	return "validation failed: " + strings.Join(names, ", ")
}

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New returns a validator with the custom rules registered:
//
//	phone      local mobile number, e.g. 0912345678
//	barcode    8-40 character alphanumeric code (case-insensitive)
//	dealercode dealer code, e.g. DL001 (case-insensitive)
//	role       one of the known roles
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	// Registration only fails for empty tags or nil functions.
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return entity.IsValidPhone(entity.NormalizePhone(fl.Field().String()))
	})
	_ = v.RegisterValidation("barcode", func(fl validator.FieldLevel) bool {
		return entity.IsLookupableBarcode(entity.NormalizeBarcode(fl.Field().String()))
	})
	_ = v.RegisterValidation("dealercode", func(fl validator.FieldLevel) bool {
		return entity.IsValidDealerCode(strings.ToUpper(strings.TrimSpace(fl.Field().String())))
	})
	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return entity.Role(fl.Field().String()).IsValid()
	})

	return &Validator{validate: v}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	out := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		out.Fields[fe.Field()] = rule
	}

	return out
}
