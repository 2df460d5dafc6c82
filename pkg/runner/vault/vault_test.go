package vault

import (
	"context"
	"testing"

	"github.com/selcan/hq/pkg/store"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func TestDefaultPIN(t *testing.T) {
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	v := &Vault{PIN: "1234", Persistence: p}
	if err := v.Do(context.Background()); err != nil {
		t.Fatalf("expected default PIN to unlock: %v", err)
	}

	v = &Vault{PIN: "0000", Persistence: p}
	if err := v.Do(context.Background()); err == nil {
		t.Fatal("wrong PIN should be rejected")
	}
}

func TestSetPIN(t *testing.T) {
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	if err := (&Vault{SetPIN: "9876", Persistence: p}).Do(context.Background()); err != nil {
		t.Fatalf("set pin: %v", err)
	}

	if err := (&Vault{PIN: "1234", Persistence: p}).Do(context.Background()); err == nil {
		t.Fatal("old default should no longer unlock")
	}
	if err := (&Vault{PIN: "9876", Persistence: p}).Do(context.Background()); err != nil {
		t.Fatalf("new PIN should unlock: %v", err)
	}
}
