package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/selcan/hq/pkg/commands/options"
	"github.com/selcan/hq/pkg/runner/add"
	"github.com/selcan/hq/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	co := &options.CollectionOptions{}
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add an item to a day list",
		Example: `
hq add buy milk
hq add --on="2024-03-15" call the bank
hq add -c shoppingList eggs
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := add.Add{
				Collection:  co.Collection,
				Message:     strings.Join(args, " "),
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
