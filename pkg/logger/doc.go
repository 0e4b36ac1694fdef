// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// The package standardises structured logging across the formkit packages by
// exposing a single factory – New – that creates a *slog.Logger configured by
// a set of Option functions. These options allow you to:
//
//   • Select an output format (text or json)
//   • Set the minimum log level
//   • Supply default slog.Attr values applied to every record
//   • Register ContextExtractor callbacks that inject attributes pulled from a
//     context value (for example a request id) every time Handle is invoked.
//
// # Architecture
//
// Logger builds a decorated slog.Handler. First, New determines the concrete
// slog.Handler implementation – slog.NewTextHandler or slog.NewJSONHandler –
// based on the configured Format. It then wraps the handler with
// LogHandlerDecorator which is responsible for executing any registered
// ContextExtractor callbacks before delegating to the underlying handler.
//
// Helper constructors such as Form, ApplicationID, Field and Error live in
// attr.go and keep attribute naming consistent across packages.
//
// # Usage
//
//	import "github.com/dmitrymomot/formkit/pkg/logger"
//
//	func main() {
//	    log := logger.New(
//	        logger.WithEnvironment(cfg.Env, "formkit"),
//	        logger.WithContextExtractors(intake.LogApplicationID),
//	    )
//	    logger.SetAsDefault(log)
//
//	    log.InfoContext(ctx, "submission delivered",
//	        logger.Form(f.ID),
//	        logger.Duration(time.Since(start)),
//	    )
//	}
//
// # Configuration
//
// Options apply in order:
//
//   • WithEnvironment / WithDevelopment / WithProduction – level, format and
//     env/service attributes per environment (text+debug or json+info).
//   • WithLevel and ParseLevel – override the level, e.g. from FORMKIT_LOG_LEVEL.
//   • WithFormat – override output format.
//   • WithAttr / WithService – attach static attributes.
//   • WithContextExtractors – inject attributes from context.
//
// # Error Handling
//
// Helper functions Error and Errors produce attributes only when the supplied
// error value is non-nil allowing calls like:
//
//	log.Info("operation succeeded", logger.Error(err))
//
// without an additional nil check.
package logger
