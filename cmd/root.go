package cmd

import (
	"github.com/orcdkestrator/cdklocal/cli"
	"github.com/orcdkestrator/cdklocal/errors"
	"github.com/spf13/cobra"
)

// NewRootCmd assembles the cdklocal command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := cli.NewStandardCommand(
		"cdklocal",
		"Choose between cdklocal and cdk for the active CDK environment",
	)
	rootCmd.Long = `Runs the cdklocal orchestrator plugin outside the orchestrator.

The plugin is active only when the environment is marked isLocal and the
cdklocal plugin entry is enabled. When active it looks for the cdklocal
executable on PATH and reports which CDK command to use.`

	rootCmd.AddCommand(NewCheckCmd())
	rootCmd.AddCommand(NewCommandCmd())
	rootCmd.AddCommand(NewSchemaCmd())
	rootCmd.AddCommand(cli.NewVersionCommand("cdklocal"))

	return rootCmd
}

// Execute runs root and reports errors the commands did not. Coded errors are
// printed by the command's ErrorHandler; anything else, including flag and
// unknown-command errors from cobra, is printed here.
func Execute(root *cobra.Command) error {
	cmd, err := root.ExecuteC()
	if err != nil && errors.GetCode(err) == "" {
		cli.PrintError(cmd, err)
	}
	return err
}
