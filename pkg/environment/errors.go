package environment

import "errors"

// ErrMissingVariables is returned by Ensure when required variables are absent.
var ErrMissingVariables = errors.New("required environment variables are missing")
