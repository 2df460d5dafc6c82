package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/selcan/hq/pkg/runner/note"
	"github.com/selcan/hq/pkg/store"
)

func addNote(topLevel *cobra.Command) {
	name := store.QuickNote
	log := false

	cmd := &cobra.Command{
		Use:   "note [text]",
		Short: "Show or replace the quick note",
		Example: `
hq note
hq note remember the milk
hq note --log what I learned today
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if log {
				name = store.LearningLog
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := note.Note{Name: name, Persistence: p}
			if len(args) > 0 {
				text := strings.Join(args, " ")
				s.Text = &text
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().BoolVar(&log, "log", false, "Use the learning log instead of the quick note.")

	topLevel.AddCommand(cmd)
}
