package intake

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

type applicationIDKey struct{}

// ContextWithApplicationID returns a copy of ctx carrying id. Submit stores
// the id of the record it collected this way before delivery.
func ContextWithApplicationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, applicationIDKey{}, id)
}

// ApplicationIDFromContext returns the application id stored in ctx.
func ApplicationIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(applicationIDKey{}).(string)
	return id, ok && id != ""
}

// LogApplicationID is a logger.ContextExtractor adding application_id to
// records logged with a submission context.
func LogApplicationID(ctx context.Context) (slog.Attr, bool) {
	id, ok := ApplicationIDFromContext(ctx)
	if !ok {
		return slog.Attr{}, false
	}
	return logger.ApplicationID(id), true
}

var _ logger.ContextExtractor = LogApplicationID
