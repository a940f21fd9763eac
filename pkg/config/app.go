package config

import "github.com/dmitrymomot/saasbase/pkg/environment"

// App holds the variables every entrypoint reads at startup.
// It is loaded once and passed down explicitly.
type App struct {
	Env        string `env:"NODE_ENV" envDefault:"development"`
	MongoDBURI string `env:"MONGODB_URI"`
	AuthSecret string `env:"NEXTAUTH_SECRET"`
	AuthURL    string `env:"NEXTAUTH_URL"`
}

// Environment returns the parsed NODE_ENV value.
func (a App) Environment() environment.Environment {
	return environment.Parse(a.Env)
}

// Vars returns the App values keyed by variable name, in the form
// environment.Ensure expects.
func (a App) Vars() environment.Vars {
	return environment.Vars{
		environment.NodeEnv:    a.Env,
		environment.MongoDBURI: a.MongoDBURI,
		environment.AuthSecret: a.AuthSecret,
		environment.AuthURL:    a.AuthURL,
	}
}

// Validate reports the required variables missing for the configured environment.
func (a App) Validate() error {
	return environment.Ensure(a.Vars(), a.Environment())
}
