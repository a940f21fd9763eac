// Package mongo holds the MongoDB plumbing: connection setup, health checks,
// connection-string helpers and user-facing error messages.
//
// # Connection strings
//
// The URI helpers never fail; each one tries a structured URL parse first and
// falls back to plain string handling when the input is not a URL.
//
//	mongo.NormalizeURI("mongodb://localhost:27017", "")
//	// mongodb://localhost:27017/saas_db?retryWrites=true&w=majority
//
//	mongo.SanitizeURI("mongodb://admin:s3cret@db:27017/app")
//	// mongodb://***:***@db:27017/app
//
//	mongo.ValidateURI("mongodb://localhost:27017/db") // true
//	mongo.DatabaseName("mongodb://h/mydb?x=1")       // "mydb", true
//	mongo.IsLocalURI("mongodb://192.168.1.5:27017")   // true
//
// NormalizeURI always puts the configured database in the path, replacing any
// database the URI already names.
//
// # Connecting
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
//	client, err := mongo.New(ctx, cfg, mongo.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	defer mongo.Disconnect(context.Background(), client, log)
//
// New validates and normalizes cfg.URI, logs the sanitized form, then connects
// and pings up to cfg.RetryAttempts times. Exhausted retries return
// ErrFailedToConnectToMongo joined with the last driver error.
//
// # Errors
//
// FormatError maps driver errors to messages safe to show users: duplicate
// keys name the conflicting fields, validator.ValidationErrors are listed,
// network failures get a retry hint.
package mongo
