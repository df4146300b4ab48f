// Package notebook hands a rendered graph off to the external interactive
// notebook process. The hand-off is a side channel: the chosen dot path is
// written into a fixed config file the notebook reads on startup.
package notebook

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/vk/provgraphgo/internal/ctxlog"
)

// configFileName is the fixed file the notebook reads the dot path from.
const configFileName = ".config"

// Launch writes the dot path into the notebook directory's config file, then
// starts the external notebook process pointed at that directory. It blocks
// until the notebook process exits.
func Launch(ctx context.Context, dir, dotPath string) error {
	logger := ctxlog.FromContext(ctx)

	configPath := filepath.Join(dir, configFileName)
	if err := os.WriteFile(configPath, []byte(dotPath), 0o644); err != nil {
		return fmt.Errorf("writing notebook config: %w", err)
	}

	logger.Info("Launching notebook.", "dir", dir, "dot", dotPath)
	cmd := exec.CommandContext(ctx, "jupyter", "notebook", "--notebook-dir="+dir)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running notebook process: %w", err)
	}
	return nil
}
