package intake

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/submission"
	"github.com/dmitrymomot/formkit/pkg/webhook"
)

// Handler runs the submit flow. It is safe for concurrent use as long as
// each call works on its own form.
type Handler struct {
	validator  *form.Validator
	collector  *submission.Collector
	sender     *webhook.Sender
	webhookURL string
	sendOpts   []webhook.SendOption
	notifier   Notifier
	log        *slog.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithWebhook sets the delivery endpoint and per-request options. Without a
// URL the flow stops after collection and the record is returned
// undelivered.
func WithWebhook(url string, opts ...webhook.SendOption) Option {
	return func(h *Handler) {
		h.webhookURL = url
		h.sendOpts = append(h.sendOpts, opts...)
	}
}

// WithSender replaces the default webhook sender. Nil is ignored.
func WithSender(s *webhook.Sender) Option {
	return func(h *Handler) {
		if s != nil {
			h.sender = s
		}
	}
}

// WithNotifier sets the presentation callbacks. Nil is ignored.
func WithNotifier(n Notifier) Option {
	return func(h *Handler) {
		if n != nil {
			h.notifier = n
		}
	}
}

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// NewHandler creates a Handler from an already configured validator and
// collector.
func NewHandler(v *form.Validator, c *submission.Collector, opts ...Option) *Handler {
	h := &Handler{
		validator: v,
		collector: c,
		notifier:  nopNotifier{},
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.sender == nil {
		h.sender = webhook.NewSender()
	}
	h.log = h.log.With(logger.Component("intake"))
	return h
}

// Submit validates f, collects its record and delivers it.
//
// Validation failures return ErrValidationFailed joined with the field
// errors and nothing is sent. Delivery failures return ErrSubmissionFailed
// together with the undelivered record, so it can still be exported. The
// notifier gets a generic message in both cases.
func (h *Handler) Submit(ctx context.Context, f *form.Form) (*submission.Record, error) {
	if f == nil {
		return nil, ErrNilForm
	}

	h.notifier.SetBusy(true)
	defer h.notifier.SetBusy(false)

	log := h.log.With(logger.Form(f.ID))
	start := time.Now()

	report := h.validator.ValidateForm(f)
	if !report.Valid() {
		err := report.Err()
		log.InfoContext(ctx, "submission blocked by invalid fields", logger.Error(err))
		h.notifier.Alert(MessageInvalidForm)
		return nil, errors.Join(ErrValidationFailed, err)
	}

	rec, err := h.collector.Collect(f)
	if err != nil {
		log.ErrorContext(ctx, "failed to collect submission", logger.Error(err))
		h.notifier.Alert(MessageSubmitFailed)
		return nil, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}
	ctx = ContextWithApplicationID(ctx, rec.ApplicationID())

	if h.webhookURL == "" {
		log.InfoContext(ctx, "submission collected without webhook delivery")
		h.notifier.Submitted(rec)
		return rec, nil
	}

	opts := append(h.sendOpts[:len(h.sendOpts):len(h.sendOpts)], webhook.WithOnDelivery(func(r webhook.DeliveryResult) {
		log.DebugContext(ctx, "webhook delivery attempt",
			logger.StatusCode(r.StatusCode),
			logger.Duration(r.Duration),
		)
	}))
	if err := h.sender.Send(ctx, h.webhookURL, rec, opts...); err != nil {
		log.ErrorContext(ctx, "webhook delivery failed",
			logger.Error(err),
			slog.Bool("permanent", webhook.IsPermanent(err)),
		)
		h.notifier.Alert(MessageSubmitFailed)
		return rec, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}

	log.InfoContext(ctx, "submission delivered", logger.Duration(time.Since(start)))
	h.notifier.Submitted(rec)
	return rec, nil
}
