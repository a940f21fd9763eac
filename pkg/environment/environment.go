package environment

import "strings"

// Environment represents application environment.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
	Staging     Environment = "staging"
	Test        Environment = "test"
)

// Parse maps a NODE_ENV style value to an Environment. Short aliases
// ("dev", "prod", "stage") are accepted; empty input means Development.
// Unknown values are returned as-is.
func Parse(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dev", string(Development):
		return Development
	case "prod", string(Production):
		return Production
	case "stage", string(Staging):
		return Staging
	case string(Test):
		return Test
	default:
		return Environment(strings.TrimSpace(s))
	}
}

func (e Environment) IsProduction() bool {
	return e == Production || e == "prod"
}

func (e Environment) IsDevelopment() bool {
	return e == Development || e == "dev"
}

func (e Environment) String() string {
	return string(e)
}
