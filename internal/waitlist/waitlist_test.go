package waitlist

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	streamerrors "github.com/Boskolife/pincoin/pkg/errors"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{email: "ab@cde", valid: true},
		{email: "you@example.com", valid: true},
		{email: "a@b", valid: false}, // too short
		{email: "noatsign", valid: false},
		{email: "", valid: false},
		{email: "a@", valid: false},
		{email: "@abc", valid: true}, // minimal contract: '@' plus length > 3
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				var vErr *streamerrors.ValidationError
				assert.ErrorAs(t, err, &vErr)
			}
		})
	}
}

type fakeDeliverer struct {
	calls int32
	err   error
	last  string
}

func (f *fakeDeliverer) Deliver(_ context.Context, email string) error {
	atomic.AddInt32(&f.calls, 1)
	f.last = email
	return f.err
}

func TestServiceDeliverForwardsEmail(t *testing.T) {
	deliverer := &fakeDeliverer{}
	svc := NewService(deliverer, nil)

	svc.Deliver(context.Background(), "ab@cde")

	assert.Equal(t, int32(1), deliverer.calls)
	assert.Equal(t, "ab@cde", deliverer.last)
}

func TestServiceDeliverSwallowsFailure(t *testing.T) {
	deliverer := &fakeDeliverer{err: errors.New("endpoint down")}
	svc := NewService(deliverer, nil)

	// Best-effort delivery: the failure is logged, never propagated.
	svc.Deliver(context.Background(), "ab@cde")
	assert.Equal(t, int32(1), deliverer.calls)
}

func TestServiceNilDelivererDegradesToNop(t *testing.T) {
	svc := NewService(nil, nil)
	svc.Deliver(context.Background(), "ab@cde")
}

func TestHTTPDelivererPostsJSON(t *testing.T) {
	var body atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		buf, _ := io.ReadAll(r.Body)
		body.Store(string(buf))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	d := NewHTTPDeliverer(server.URL, server.Client())
	require.NoError(t, d.Deliver(context.Background(), "ab@cde"))
	assert.JSONEq(t, `{"email":"ab@cde"}`, body.Load().(string))
}

func TestHTTPDelivererReportsBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	d := NewHTTPDeliverer(server.URL, server.Client())
	err := d.Deliver(context.Background(), "ab@cde")

	require.Error(t, err)
	var dErr *streamerrors.DeliveryError
	assert.ErrorAs(t, err, &dErr)
}

func TestHTTPDelivererReportsTransportFailure(t *testing.T) {
	d := NewHTTPDeliverer("http://127.0.0.1:1", nil)
	err := d.Deliver(context.Background(), "ab@cde")

	require.Error(t, err)
	var dErr *streamerrors.DeliveryError
	assert.ErrorAs(t, err, &dErr)
}
