// Package waitlist captures and delivers signup emails from the landing
// page's waitlist modal.
package waitlist

import (
	"context"

	"github.com/Boskolife/pincoin/internal/logger"
)

// Service validates captured emails and forwards accepted ones to the
// delivery collaborator.
type Service struct {
	deliverer Deliverer
	log       *logger.Logger
}

// NewService creates a Service. A nil deliverer degrades to a no-op; a nil
// logger to a silent one.
func NewService(deliverer Deliverer, log *logger.Logger) *Service {
	if deliverer == nil {
		deliverer = NopDeliverer{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		deliverer: deliverer,
		log:       log.WithComponent("waitlist"),
	}
}

// Validate checks an email against the capture contract. A validation error
// is the blocking, user-visible kind: the modal stays open and nothing is
// delivered.
func (s *Service) Validate(email string) error {
	return ValidateEmail(email)
}

// Deliver hands a validated email to the delivery collaborator. Failures are
// logged here and intentionally not propagated to UI state; the user already
// saw the confirmation.
func (s *Service) Deliver(ctx context.Context, email string) {
	if err := s.deliverer.Deliver(ctx, email); err != nil {
		s.log.Error(err, "waitlist delivery failed")
		return
	}
	s.log.WithFields(map[string]any{"email": email}).Debug("waitlist delivery succeeded")
}
