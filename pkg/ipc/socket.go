package ipc

import (
	"os"
	"path/filepath"
)

// SocketPath derives the well-known control endpoint of this machine/user.
// One daemon per derived path is supported.
func SocketPath() string {
	if v := os.Getenv("XDG_RUNTIME_DIR"); v != "" {
		return filepath.Join(v, "wayvoice.sock")
	}
	return filepath.Join(os.TempDir(), "wayvoice.sock")
}
