// Command saasctl inspects the configuration of a saasbase deployment.
//
//	saasctl env check [--env-file .env.local]
//	saasctl uri normalize|sanitize|validate|dbname|local <uri>
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "saasctl",
		Short:        "Inspect saasbase configuration",
		SilenceUsage: true,
	}
	root.AddCommand(newEnvCmd(), newURICmd())
	return root
}
