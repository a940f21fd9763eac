// Package logger builds *slog.Logger instances for the application.
//
// New takes functional options (WithEnvironment, WithDevelopment,
// WithProduction, WithLevel, WithFormat, WithOutput, WithAttr,
// WithContextExtractors) and returns a logger whose handler is wrapped by
// LogHandlerDecorator, so attributes stored in a context.Context (for example
// the environment) are added to every record logged with *Context methods.
//
//	log := logger.New(
//		logger.WithEnvironment(app.Environment(), "saasbase"),
//		logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.Info("connected", logger.Component("MongoDB"), logger.Database("saas_db"))
//
// Attribute helpers (Error, Component, Operation, Database, URI, UserID,
// StorageKey, Attempt) keep key names consistent. Error and UserID return an
// empty attribute for zero input, so they can be passed unconditionally.
//
// Components accept a *slog.Logger and use OrNop to fall back to a discarding
// logger when none is supplied.
package logger
