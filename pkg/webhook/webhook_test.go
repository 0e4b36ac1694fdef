package webhook_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/webhook"
)

func TestSender_Send_Success(t *testing.T) {
	t.Parallel()

	payload := map[string]any{"applicationId": "APP-1-001", "name": "Al"}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "formkit-webhook/1.0", r.Header.Get("User-Agent"))

		var got map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "APP-1-001", got["applicationId"])

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := webhook.NewSender().Send(context.Background(), server.URL, payload)
	assert.NoError(t, err)
}

func TestSender_Send_RawBytes(t *testing.T) {
	t.Parallel()

	payload := []byte(`{"event":"test"}`)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, payload, body)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	assert.NoError(t, webhook.NewSender().Send(context.Background(), server.URL, payload))
}

func TestSender_Send_SignedWithHeaders(t *testing.T) {
	t.Parallel()

	secret := "webhook_secret"
	var result webhook.DeliveryResult

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "apply", r.Header.Get("X-Form-ID"))

		headers, err := webhook.ExtractSignatureHeaders(r.Header)
		require.NoError(t, err)
		assert.NotEmpty(t, headers.ID)

		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, webhook.VerifySignature(secret, body, headers, 5*time.Minute))

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := webhook.NewSender().Send(context.Background(), server.URL, map[string]string{"a": "b"},
		webhook.WithSignature(secret),
		webhook.WithHeader("X-Form-ID", "apply"),
		webhook.WithOnDelivery(func(r webhook.DeliveryResult) { result = r }),
	)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, http.StatusOK, result.StatusCode)
}

func TestSender_Send_SingleAttempt(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("maintenance\nwindow"))
	}))
	defer server.Close()

	var hooks int
	err := webhook.NewSender().Send(context.Background(), server.URL, map[string]string{"a": "b"},
		webhook.WithOnDelivery(func(webhook.DeliveryResult) { hooks++ }),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, webhook.ErrWebhookDeliveryFailed)
	assert.Contains(t, err.Error(), "status 503: maintenance window")
	assert.False(t, webhook.IsPermanent(err))
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, 1, hooks)
}

func TestSender_Send_PermanentFailure(t *testing.T) {
	t.Parallel()

	for _, code := range []int{http.StatusBadRequest, http.StatusNotFound, http.StatusUnprocessableEntity} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
		}))

		err := webhook.NewSender().Send(context.Background(), server.URL, map[string]string{"a": "b"})
		assert.ErrorIs(t, err, webhook.ErrPermanentFailure, code)
		assert.True(t, webhook.IsPermanent(err))
		server.Close()
	}

	t.Run("rate limiting is not permanent", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		err := webhook.NewSender().Send(context.Background(), server.URL, map[string]string{"a": "b"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, webhook.ErrPermanentFailure)
	})
}

func TestSender_Send_Timeout(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := webhook.NewSender().Send(context.Background(), server.URL, map[string]string{"a": "b"},
		webhook.WithTimeout(50*time.Millisecond),
	)
	assert.ErrorIs(t, err, webhook.ErrTimeout)
}

func TestSender_Send_NetworkError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	err := webhook.NewSender().Send(context.Background(), url, map[string]string{"a": "b"})
	assert.ErrorIs(t, err, webhook.ErrTemporaryFailure)
}

func TestSender_Send_ValidationErrors(t *testing.T) {
	t.Parallel()

	sender := webhook.NewSender()
	ctx := context.Background()

	tests := []struct {
		name    string
		url     string
		payload any
		wantErr error
	}{
		{"empty url", "", map[string]string{"a": "b"}, webhook.ErrInvalidURL},
		{"bad scheme", "ftp://example.com", map[string]string{"a": "b"}, webhook.ErrInvalidURL},
		{"missing host", "http://", map[string]string{"a": "b"}, webhook.ErrInvalidURL},
		{"nil payload", "https://example.com", nil, webhook.ErrInvalidPayload},
		{"empty payload", "https://example.com", []byte{}, webhook.ErrInvalidPayload},
		{"unmarshalable payload", "https://example.com", map[string]any{"ch": make(chan int)}, webhook.ErrInvalidPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sender.Send(ctx, tt.url, tt.payload)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, webhook.IsPermanent(err))
		})
	}
}

func TestNewSenderWithClient(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	sender := webhook.NewSenderWithClient(server.Client())
	assert.NoError(t, sender.Send(context.Background(), server.URL, []byte(`{}`)))
	assert.NotNil(t, webhook.NewSenderWithClient(nil))
}
