// Package environment captures and checks the variables the application
// depends on.
//
// Vars is an explicit snapshot of the environment, taken once in main with
// FromOS or Load and passed to whatever needs it. Get, Lookup and IsEnabled
// are the typed accessors; nothing else in the module reads os.Getenv.
//
// Required variables differ by environment:
//
//	production:  MONGODB_URI, NEXTAUTH_SECRET, NEXTAUTH_URL
//	development: MONGODB_URI, NEXTAUTH_SECRET
//
// Ensure reports the missing ones as validator.ValidationErrors joined with
// ErrMissingVariables:
//
//	vars := environment.FromOS()
//	if err := environment.Ensure(vars, vars.Environment()); err != nil {
//		log.Fatal(err)
//	}
//
// The Environment value can also travel through context.Context (WithContext,
// FromContext, Middleware) and into logs via LoggerExtractor.
package environment
