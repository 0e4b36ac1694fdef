// Package intake runs the submit flow of a form: validate every field,
// collect a submission record and deliver it to the configured webhook.
//
// A Handler is built once and reused for every submit. It owns the webhook
// Sender, so connections are pooled across submissions.
//
//	h := intake.NewHandler(validator, collector,
//	    intake.WithWebhook(cfg.WebhookURL, webhook.WithSignature(cfg.WebhookSecret)),
//	    intake.WithNotifier(ui),
//	    intake.WithLogger(log),
//	)
//	rec, err := h.Submit(ctx, f)
//
// The Notifier is told when the flow is busy, receives user-facing alerts on
// failure and the record on success. Busy state is always cleared before
// Submit returns.
package intake
