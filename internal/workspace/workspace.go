package workspace

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/google/uuid"
)

const dirPrefix = "ytfetch-"

// Workspace is a session-scoped temporary directory. Exactly one session
// owns it for its lifetime; Release is safe on every exit path and may be
// called more than once.
type Workspace struct {
	dir      string
	logger   *log.Logger
	released atomic.Bool
}

// Acquire creates a uniquely named directory under root, creating root
// itself if needed. It fails only when the root is not writable.
func Acquire(root string, logger *log.Logger) (*Workspace, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("workspace root %s: %w", root, err)
	}
	dir := filepath.Join(root, dirPrefix+uuid.NewString())
	if err := os.Mkdir(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}
	return &Workspace{dir: dir, logger: logger}, nil
}

// Dir returns the directory owned by this workspace
func (w *Workspace) Dir() string {
	return w.dir
}

// Release recursively removes the workspace. Filesystem errors during
// removal are logged and suppressed; repeat calls are no-ops.
func (w *Workspace) Release() {
	if w == nil || w.released.Swap(true) {
		return
	}
	if err := os.RemoveAll(w.dir); err != nil {
		w.logger.Printf("workspace release %s: %v", w.dir, err)
	}
}
