package waitlist

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	streamerrors "github.com/Boskolife/pincoin/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// submission is the struct the validator instance checks. The waitlist_email
// rule is the exact capture contract: non-empty, contains '@', longer than
// three characters. Anything stricter would reject addresses the delivery
// service accepts.
type submission struct {
	Email string `validate:"required,waitlist_email"`
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("waitlist_email", func(fl validator.FieldLevel) bool {
			email := fl.Field().String()
			return len(email) > 3 && strings.Contains(email, "@")
		})

		validateInst = v
	})

	return validateInst
}

// ValidateEmail checks a captured email against the waitlist contract. The
// returned error carries the user-visible message shown in the modal.
func ValidateEmail(email string) error {
	if err := validatorInstance().Struct(submission{Email: email}); err != nil {
		return streamerrors.NewValidationError("email", "please enter a valid email address", err)
	}
	return nil
}
