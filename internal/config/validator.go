package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/signet-ui/signet/pkg/appearance"
	signeterrors "github.com/signet-ui/signet/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
)

// validatorInstance configures and returns the shared validator instance used
// across the config package. The button_style and button_scheme validations
// delegate to the appearance parsers so the accepted strings never drift from
// what the button itself accepts.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("button_style", func(fl validator.FieldLevel) bool {
			_, err := appearance.ParseStyle(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("button_scheme", func(fl validator.FieldLevel) bool {
			_, err := appearance.ParseColorScheme(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return signeterrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return signeterrors.NewValidationError(field, msg, err)
	}

	return signeterrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
