package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	streamerrors "github.com/Boskolife/pincoin/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	panelIDPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("panel_id", func(fl validator.FieldLevel) bool {
			return panelIDPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema and cross-field validation on the landing
// configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return streamerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]struct{}, len(cfg.Panels))
	for i, panel := range cfg.Panels {
		if _, exists := seen[panel.ID]; exists {
			return streamerrors.NewValidationError(fieldForPanel(i, "id"), fmt.Sprintf("duplicate panel id %q", panel.ID), nil)
		}
		seen[panel.ID] = struct{}{}
	}

	return nil
}

func fieldForPanel(index int, field string) string {
	return fmt.Sprintf("panels[%d].%s", index, field)
}

func convertValidationError(err error) error {
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return streamerrors.NewValidationError("config", invalid.Error(), err)
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		field := strings.TrimPrefix(first.Namespace(), "Config.")
		message := fmt.Sprintf("failed %q rule", first.Tag())
		return streamerrors.NewValidationError(strings.ToLower(field), message, err)
	}

	return streamerrors.NewValidationError("config", err.Error(), err)
}
