package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/saasbase/pkg/mongo"
)

var (
	errInvalidURI = errors.New("not a valid MongoDB URI")
	errNoDatabase = errors.New("URI names no database")
)

func newURICmd() *cobra.Command {
	uriCmd := &cobra.Command{
		Use:   "uri",
		Short: "MongoDB connection string helpers",
	}

	var dbName string
	normalize := &cobra.Command{
		Use:   "normalize <uri>",
		Short: "Set the database and default write options",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), mongo.NormalizeURI(args[0], dbName))
		},
	}
	normalize.Flags().StringVar(&dbName, "db", mongo.DefaultDatabase, "database name")

	sanitize := &cobra.Command{
		Use:   "sanitize <uri>",
		Short: "Mask credentials",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), mongo.SanitizeURI(args[0]))
		},
	}

	validate := &cobra.Command{
		Use:   "validate <uri>",
		Short: "Exit non-zero unless the URI is a usable MongoDB URI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !mongo.ValidateURI(args[0]) {
				return errInvalidURI
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}

	dbname := &cobra.Command{
		Use:   "dbname <uri>",
		Short: "Print the database named in the URI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, ok := mongo.DatabaseName(args[0])
			if !ok {
				return errNoDatabase
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}

	local := &cobra.Command{
		Use:   "local <uri>",
		Short: "Print whether the URI points to a local server",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), mongo.IsLocalURI(args[0]))
		},
	}

	uriCmd.AddCommand(normalize, sanitize, validate, dbname, local)
	return uriCmd
}
