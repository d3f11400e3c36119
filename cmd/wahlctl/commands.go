package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"wahlfang/contexts/election-management/election-service/application/commands"
	"wahlfang/internal/app/bootstrap"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "wahlctl",
		Short:         "Operator tasks for a wahlfang deployment",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newMigrateCommand(), newCreateAdminCommand())
	return root
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := bootstrap.BuildAdmin(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Migrate(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
			return nil
		},
	}
}

func newCreateAdminCommand() *cobra.Command {
	var (
		username         string
		email            string
		password         string
		generatePassword bool
	)
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an election manager account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" && !generatePassword {
				return errors.New("either --password or --generate-password is required")
			}
			if password != "" && generatePassword {
				return errors.New("--password and --generate-password are mutually exclusive")
			}

			app, err := bootstrap.BuildAdmin(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			result, err := app.CreateManager(cmd.Context(), commands.CreateManagerCommand{
				Username:         username,
				Email:            email,
				Password:         password,
				GeneratePassword: generatePassword,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "created manager %s (id %d)\n", result.Manager.Username, result.Manager.ManagerID)
			if generatePassword {
				fmt.Fprintf(out, "generated password: %s\n", result.Password)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "login name of the manager")
	cmd.Flags().StringVar(&email, "email", "", "unique email address of the manager")
	cmd.Flags().StringVar(&password, "password", "", "initial password")
	cmd.Flags().BoolVar(&generatePassword, "generate-password", false, "generate a random password and print it")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
