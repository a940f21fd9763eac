// Package config loads application configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - LoadEnv reads one or more .env files into the process environment
//     (the default .env is read lazily on first Load).
//   - Load parses the environment into any struct annotated with `env` tags
//     and caches the result per type.
//   - MustLoad and MustLoadEnv panic on failure for startup code.
//   - ResetCache and ForceReloadConfig exist for tests.
//
// App bundles the variables the entrypoints need (NODE_ENV, MONGODB_URI,
// NEXTAUTH_SECRET, NEXTAUTH_URL). It is loaded once in main and handed to the
// components that need it, so nothing else reads the environment directly.
//
// # Usage
//
//	var app config.App
//	if err := config.Load(&app); err != nil {
//		log.Fatal(err)
//	}
//	if err := app.Validate(); err != nil {
//		log.Fatal(err)
//	}
//
// # Errors
//
//   - ErrParsingConfig  – env vars could not be parsed into the struct.
//   - ErrConfigNotLoaded – the cache lost the value between parse and read.
//   - ErrNilPointer     – nil pointer passed to Load.
//   - ErrLoadingEnvFile – an .env file could not be read.
package config
