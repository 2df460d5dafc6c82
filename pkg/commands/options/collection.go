// Package options defines shared flag helpers for CLI commands.
package options

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/selcan/hq/pkg/store"
)

// CollectionOptions captures common collection selection flags.
type CollectionOptions struct {
	Collection string
	All        bool
}

// AddCollectionArgs wires the collection flag on the provided command.
func AddCollectionArgs(cmd *cobra.Command, o *CollectionOptions) {
	cmd.Flags().StringVarP(&o.Collection, "collection", "c", store.DailyTasks,
		fmt.Sprintf("Specify the collection, one of: %q, %q.", store.DailyTasks, store.ShoppingList))
	_ = cmd.RegisterFlagCompletionFunc("collection", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return store.DayCollections(), cobra.ShellCompDirectiveNoFileComp
	})
}

// AddAllArg registers the flag that operates on every day at once.
func AddAllArg(cmd *cobra.Command, o *CollectionOptions) {
	cmd.Flags().BoolVar(&o.All, "all", false,
		"Show every day in the collection.")
}
