package wallet

import (
	"testing"

	"github.com/descilaunch/launchpad-web/internal/services/web/routepath"
)

func TestModuleIDAndPrefix(t *testing.T) {
	t.Parallel()

	m := New()
	if m.ID() != "wallet" {
		t.Fatalf("ID() = %q", m.ID())
	}
	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.WalletPrefix {
		t.Fatalf("Prefix = %q", mount.Prefix)
	}
	if mount.Handler == nil {
		t.Fatal("Mount() returned nil handler")
	}
}
