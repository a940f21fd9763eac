// Package validator builds declarative validation rules.
//
// A Rule pairs a Check func with the ValidationError reported when the check
// fails. Apply evaluates rules and collects every failure into a
// ValidationErrors value, which implements error:
//
//	err := validator.Apply(
//	    validator.RequiredVar("MONGODB_URI", uri),
//	    validator.MaxLen("name", name, 64),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, msg := range verrs.Messages() {
//	        // ...
//	    }
//	}
//
// ExtractValidationErrors and IsValidationError look through wrapped and
// joined errors.
package validator
