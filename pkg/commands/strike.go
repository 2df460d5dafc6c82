package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/selcan/hq/pkg/commands/options"
	"github.com/selcan/hq/pkg/runner/strike"
	"github.com/selcan/hq/pkg/store"
)

func addStrike(topLevel *cobra.Command) {
	co := &options.CollectionOptions{}
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "strike <id>",
		Short: "Delete an item from a day list",
		Example: `
hq strike 7b0c9f2e-4a1d-4c7e-9b53-0d9f2e4a1d4c
hq strike -c shoppingList --on="2024-03-15" <id>
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
			s := strike.Strike{
				ID:          args[0],
				Collection:  co.Collection,
				On:          on,
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	options.AddCollectionArgs(cmd, co)
	options.AddOnArgs(cmd, oo)

	topLevel.AddCommand(cmd)
}
