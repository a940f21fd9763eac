package environment

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Vars is a snapshot of environment variables taken at startup.
type Vars map[string]string

// FromOS captures the current process environment.
func FromOS() Vars {
	environ := os.Environ()
	vars := make(Vars, len(environ))
	for _, kv := range environ {
		if name, value, ok := strings.Cut(kv, "="); ok {
			vars[name] = value
		}
	}
	return vars
}

// Load reads the given .env files (default: .env) and layers the process
// environment on top, so real environment variables win over file values.
// Missing files are reported as an error.
func Load(paths ...string) (Vars, error) {
	fileVars, err := godotenv.Read(paths...)
	if err != nil {
		return nil, err
	}
	vars := Vars(fileVars)
	for name, value := range FromOS() {
		vars[name] = value
	}
	return vars, nil
}

// Get returns the value of name, or def when it is unset or empty.
func (v Vars) Get(name, def string) string {
	if value := v[name]; value != "" {
		return value
	}
	return def
}

// Lookup returns the value of name and whether it is set at all.
func (v Vars) Lookup(name string) (string, bool) {
	value, ok := v[name]
	return value, ok
}

// IsEnabled reports whether name is set to exactly "true".
func (v Vars) IsEnabled(name string) bool {
	return v[name] == "true"
}

// Environment returns the parsed NODE_ENV value.
func (v Vars) Environment() Environment {
	return Parse(v[NodeEnv])
}
