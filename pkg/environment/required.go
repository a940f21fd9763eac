package environment

import (
	"errors"
	"slices"

	"github.com/dmitrymomot/saasbase/pkg/validator"
)

// Variable names read by the application.
const (
	NodeEnv    = "NODE_ENV"
	MongoDBURI = "MONGODB_URI"
	AuthSecret = "NEXTAUTH_SECRET"
	AuthURL    = "NEXTAUTH_URL"
)

var (
	requiredInProduction  = []string{MongoDBURI, AuthSecret, AuthURL}
	requiredInDevelopment = []string{MongoDBURI, AuthSecret}
)

// RequiredInProduction lists variables that must be set in production.
func RequiredInProduction() []string {
	return slices.Clone(requiredInProduction)
}

// RequiredInDevelopment lists variables that must be set outside production.
func RequiredInDevelopment() []string {
	return slices.Clone(requiredInDevelopment)
}

// Required returns the required variable list for env.
func Required(env Environment) []string {
	if env.IsProduction() {
		return RequiredInProduction()
	}
	return RequiredInDevelopment()
}

// Missing returns the required variables for env that are unset or empty in vars.
func Missing(vars Vars, env Environment) []string {
	var missing []string
	for _, name := range Required(env) {
		if vars[name] == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// Ensure returns an error joining ErrMissingVariables with one
// validator.ValidationError per missing variable, or nil.
func Ensure(vars Vars, env Environment) error {
	names := Required(env)
	rules := make([]validator.Rule, 0, len(names))
	for _, name := range names {
		rules = append(rules, validator.RequiredVar(name, vars[name]))
	}
	if err := validator.Apply(rules...); err != nil {
		return errors.Join(ErrMissingVariables, err)
	}
	return nil
}
