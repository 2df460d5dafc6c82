package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/selcan/hq/pkg/commands/options"
	"github.com/selcan/hq/pkg/runner/project"
	"github.com/selcan/hq/pkg/store"
)

func addProject(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage the project gallery",
		Example: `
hq project list
hq project add --title "Demo" --link https://example.com --icon 🚀
hq project rm <id>
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addProjectAdd(cmd)
	addProjectList(cmd)
	addProjectRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addProjectAdd(topLevel *cobra.Command) {
	s := project.Add{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a project card",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s.Persistence = p
			return s.Do(context.Background())
		},
	}

	cmd.Flags().StringVar(&s.Title, "title", "", "Project title.")
	cmd.Flags().StringVar(&s.Description, "desc", "", "Short description.")
	cmd.Flags().StringVar(&s.Link, "link", "", "Project URL.")
	cmd.Flags().StringVar(&s.Icon, "icon", "", "Short glyph shown on the card.")
	cmd.Flags().BoolVar(&s.Secret, "secret", false, "Hide the project behind the vault.")
	_ = cmd.MarkFlagRequired("title")

	topLevel.AddCommand(cmd)
}

func addProjectList(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List project cards",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := project.List{ShowID: io.ShowID, Persistence: p}
			return s.Do(context.Background())
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addProjectRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a project card by id",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := project.Remove{ID: args[0], Persistence: p}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
