// Package webhook posts JSON payloads to an external workflow webhook.
//
// Delivery is a single attempt: there is no retry queue and no persistence.
// A 2xx response is success; a network error, a timeout and any other status
// are failures, classified by the sentinel errors in errors.go so callers can
// decide what to tell the user.
//
// # Basic Usage
//
//	sender := webhook.NewSender()
//	err := sender.Send(ctx, "https://hooks.example.com/intake", record)
//
// # Options
//
//	err := sender.Send(ctx, url, record,
//	    webhook.WithSignature(secret),
//	    webhook.WithTimeout(5*time.Second),
//	    webhook.WithHeader("X-Form-ID", "apply"),
//	    webhook.WithOnDelivery(func(r webhook.DeliveryResult) {
//	        log.Info("webhook delivered", "status", r.StatusCode, "duration", r.Duration)
//	    }),
//	)
//
// # Signing
//
// WithSignature adds X-Webhook-Signature, X-Webhook-Timestamp and
// X-Webhook-ID headers. The signature is hex(HMAC-SHA256(secret,
// timestamp + "." + body)); receivers check it with VerifySignature.
package webhook
