package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/saasbase/pkg/environment"
	"github.com/dmitrymomot/saasbase/pkg/mongo"
)

var errEnvIncomplete = errors.New("required environment variables are missing")

func newEnvCmd() *cobra.Command {
	envCmd := &cobra.Command{
		Use:   "env",
		Short: "Environment variable helpers",
	}

	var files []string
	check := &cobra.Command{
		Use:   "check",
		Short: "Check the MongoDB and auth environment variables",
		Long: `Reports whether MONGODB_URI, NEXTAUTH_SECRET and NEXTAUTH_URL are set.
The URI is printed with credentials masked. Values from --env-file files are
used when the variable is not set in the process environment.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			vars, err := loadVars(files)
			if err != nil {
				return err
			}
			return checkEnvironment(cmd.OutOrStdout(), vars)
		},
	}
	check.Flags().StringSliceVar(&files, "env-file", []string{".env.local", ".env"}, "dotenv files to read; missing files are skipped")

	envCmd.AddCommand(check)
	return envCmd
}

func loadVars(files []string) (environment.Vars, error) {
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return environment.FromOS(), nil
	}
	return environment.Load(existing...)
}

// checkEnvironment prints the report and returns errEnvIncomplete when a
// variable required in the current environment is missing.
func checkEnvironment(w io.Writer, vars environment.Vars) error {
	env := vars.Environment()
	fmt.Fprintf(w, "Checking MongoDB environment variables (%s)\n\n", env)

	if uri := vars.Get(environment.MongoDBURI, ""); uri == "" {
		fmt.Fprintln(w, "[missing] MONGODB_URI is not set")
		fmt.Fprintln(w, "          Example: MONGODB_URI=mongodb://localhost:27017/saas_db")
	} else {
		fmt.Fprintf(w, "[ok]      MONGODB_URI is set: %s\n", mongo.SanitizeURI(uri))
		if !mongo.ValidateURI(uri) {
			fmt.Fprintln(w, "[warn]    MONGODB_URI does not look like a mongodb:// or mongodb+srv:// URI")
		}
		if db, ok := mongo.DatabaseName(uri); ok {
			fmt.Fprintf(w, "[ok]      Database name is set to %q\n", db)
		} else {
			fmt.Fprintln(w, "[warn]    No database specified in URI")
			normalized, _ := mongo.DatabaseName(mongo.NormalizeURI(uri, ""))
			fmt.Fprintf(w, "[info]    Normalized database name would be: %s\n", normalized)
		}
		if mongo.IsLocalURI(uri) {
			fmt.Fprintln(w, "[info]    URI points to a local server")
		}
	}

	fmt.Fprintln(w, "\nChecking auth environment variables")
	fmt.Fprintln(w)

	if vars.Get(environment.AuthSecret, "") == "" {
		fmt.Fprintln(w, "[missing] NEXTAUTH_SECRET is not set")
		fmt.Fprintln(w, "          Generate a secure random string for this value")
	} else {
		fmt.Fprintln(w, "[ok]      NEXTAUTH_SECRET is set")
	}

	if url := vars.Get(environment.AuthURL, ""); url == "" {
		fmt.Fprintln(w, "[warn]    NEXTAUTH_URL is not set (required in production)")
	} else {
		fmt.Fprintf(w, "[ok]      NEXTAUTH_URL is set: %s\n", url)
	}

	fmt.Fprintln(w)
	if missing := environment.Missing(vars, env); len(missing) > 0 {
		fmt.Fprintf(w, "Missing for %s: %v\n", env, missing)
		return errEnvIncomplete
	}
	fmt.Fprintln(w, "Environment check complete")
	return nil
}
