package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/selcan/hq/pkg/runner/backup"
	"github.com/selcan/hq/pkg/store"
)

func addBackup(topLevel *cobra.Command) {
	out := "."

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export everything to one dated JSON file",
		Example: `
hq backup
hq backup --out ~/backups
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := backup.Backup{OutDir: out, Persistence: p}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().StringVar(&out, "out", ".", "Directory to write the backup into.")

	topLevel.AddCommand(cmd)
}
