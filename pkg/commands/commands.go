// Package commands wires the hq CLI.
package commands

import (
	"github.com/spf13/cobra"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "hq",
		Short: "A personal headquarters: day planner, lists, notes, and projects.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addCal(topLevel)
	addComplete(topLevel)
	addStrike(topLevel)
	addProject(topLevel)
	addNote(topLevel)
	addBackup(topLevel)
	addVault(topLevel)
	addVersion(topLevel)
}
