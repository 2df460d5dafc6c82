package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/selcan/hq/pkg/commands/options"
	"github.com/selcan/hq/pkg/runner/get"
	"github.com/selcan/hq/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	co := &options.CollectionOptions{}
	oo := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show a day list",
		Example: `
hq get
hq get --on="2024-03-15" --show-ids
hq get -c shoppingList --all
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:      io.ShowID,
				All:         co.All,
				Collection:  co.Collection,
				On:          on,
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	options.AddCollectionArgs(cmd, co)
	options.AddAllArg(cmd, co)
	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
