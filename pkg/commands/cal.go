package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/selcan/hq/pkg/commands/options"
	"github.com/selcan/hq/pkg/runner/cal"
	"github.com/selcan/hq/pkg/store"
)

func addCal(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	months := 1

	cmd := &cobra.Command{
		Use:   "cal",
		Short: "Show the month with entry markers",
		Example: `
hq cal
hq cal --on="2024-03-01" --months 3
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
			s := cal.Cal{
				On:          on,
				Months:      months,
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	options.AddOnArgs(cmd, oo)
	cmd.Flags().IntVar(&months, "months", 1, "How many months to print.")

	topLevel.AddCommand(cmd)
}
