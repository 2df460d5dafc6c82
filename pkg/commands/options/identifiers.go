package options

import (
	"github.com/spf13/cobra"
)

// IDOptions captures item id display and selection flags.
type IDOptions struct {
	ShowID bool
}

// AddShowIDArgs wires the id display flag on the provided command.
func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVar(&o.ShowID, "show-ids", false,
		"Show item ids; needed to complete and strike items.")
}
