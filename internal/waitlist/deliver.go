package waitlist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	streamerrors "github.com/Boskolife/pincoin/pkg/errors"
)

// Deliverer hands a captured email to the external delivery collaborator.
// Delivery is best-effort: one attempt, no retries, failures are logged and
// never shown to the user.
type Deliverer interface {
	Deliver(ctx context.Context, email string) error
}

const deliverTimeout = 5 * time.Second

// HTTPDeliverer posts submissions as JSON to a waitlist endpoint.
type HTTPDeliverer struct {
	endpoint string
	client   *http.Client
}

// NewHTTPDeliverer creates a deliverer for the given endpoint. A nil client
// gets a short-timeout default so a slow endpoint cannot hold a goroutine
// hostage.
func NewHTTPDeliverer(endpoint string, client *http.Client) *HTTPDeliverer {
	if client == nil {
		client = &http.Client{Timeout: deliverTimeout}
	}
	return &HTTPDeliverer{endpoint: endpoint, client: client}
}

type deliverPayload struct {
	Email string `json:"email"`
}

// Deliver posts the email. Any transport or non-2xx failure comes back as a
// DeliveryError.
func (d *HTTPDeliverer) Deliver(ctx context.Context, email string) error {
	body, err := json.Marshal(deliverPayload{Email: email})
	if err != nil {
		return streamerrors.NewDeliveryError(d.endpoint, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(body))
	if err != nil {
		return streamerrors.NewDeliveryError(d.endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return streamerrors.NewDeliveryError(d.endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return streamerrors.NewDeliveryError(d.endpoint, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	return nil
}

// NopDeliverer discards submissions. Used when no endpoint is configured.
type NopDeliverer struct{}

// Deliver does nothing.
func (NopDeliverer) Deliver(context.Context, string) error {
	return nil
}
