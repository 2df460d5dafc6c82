package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/selcan/hq/pkg/commands/options"
	"github.com/selcan/hq/pkg/runner/complete"
	"github.com/selcan/hq/pkg/store"
)

func addComplete(topLevel *cobra.Command) {
	co := &options.CollectionOptions{}
	oo := &options.OnOptions{}
	undo := false

	cmd := &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark an item complete",
		Example: `
hq complete 7b0c9f2e-4a1d-4c7e-9b53-0d9f2e4a1d4c
hq complete --undo 7b0c9f2e-4a1d-4c7e-9b53-0d9f2e4a1d4c
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := complete.Complete{
				ID:          args[0],
				Undo:        undo,
				Collection:  co.Collection,
				On:          on,
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	options.AddCollectionArgs(cmd, co)
	options.AddOnArgs(cmd, oo)
	cmd.Flags().BoolVar(&undo, "undo", false, "Mark the item open again.")

	topLevel.AddCommand(cmd)
}
