// Package vault gates the secret projects behind a PIN.
//
// This is obfuscation, not authentication: the check is a client-side string
// comparison against a base64-encoded value in the same local store the
// projects live in. Anyone with the database can read everything. It exists
// only to keep the secret projects out of casual view.
package vault

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/selcan/hq/pkg/runner/project"
	"github.com/selcan/hq/pkg/store"
)

const (
	pinKey     = "vaultPin"
	defaultPIN = "MTIzNA==" // base64("1234"), same default the dashboard shipped with
)

// Vault unlocks and prints the secret projects when the PIN matches.
type Vault struct {
	PIN    string
	SetPIN string

	Persistence store.Persistence
}

func (n *Vault) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not unlock, no persistence")
	}

	if n.SetPIN != "" {
		encoded := base64.StdEncoding.EncodeToString([]byte(n.SetPIN))
		if err := n.Persistence.SetNote(pinKey, encoded); err != nil {
			return err
		}
		fmt.Println("vault PIN updated")
		return nil
	}

	stored := n.Persistence.Note(pinKey)
	if stored == "" {
		stored = defaultPIN
	}

	if base64.StdEncoding.EncodeToString([]byte(n.PIN)) != stored {
		return errors.New("incorrect PIN")
	}

	return (&project.List{ShowID: true, ShowSecret: true, Persistence: n.Persistence}).Do(ctx)
}
