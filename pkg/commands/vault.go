package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/selcan/hq/pkg/runner/vault"
	"github.com/selcan/hq/pkg/store"
)

func addVault(topLevel *cobra.Command) {
	setPIN := ""

	cmd := &cobra.Command{
		Use:   "vault",
		Short: "Show the secret projects (PIN gated)",
		Long: `Show the projects marked --secret after a PIN prompt.

The PIN is cosmetic: it keeps the list out of casual view, nothing more.
Anyone with access to the store file can read everything.`,
		Example: `
hq vault
hq vault --set-pin 9876
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := vault.Vault{SetPIN: setPIN, Persistence: p}
			if setPIN == "" {
				fmt.Print("PIN: ")
				pin, err := term.ReadPassword(int(os.Stdin.Fd()))
				fmt.Println("")
				if err != nil {
					return err
				}
				s.PIN = string(pin)
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().StringVar(&setPIN, "set-pin", "", "Replace the vault PIN.")

	topLevel.AddCommand(cmd)
}
