package dot

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/vk/provgraphgo/internal/ctxlog"
	"github.com/vk/provgraphgo/internal/graph"
)

// renderer is the external layout engine invoked for SVG output.
const renderer = "dot"

// Save writes the graph's two artifacts into dir: <base>.dot (the DOT
// serialization) and <base>.svg (the rendered image). It returns both paths.
// Rendering failures, including a missing graphviz binary, abort the pass.
func Save(ctx context.Context, g *graph.Graph, dir, base string, graphAttrs map[string]any) (dotPath, svgPath string, err error) {
	logger := ctxlog.FromContext(ctx)

	dotPath = filepath.Join(dir, base+".dot")
	svgPath = filepath.Join(dir, base+".svg")

	if err := os.WriteFile(dotPath, Marshal(g, graphAttrs), 0o644); err != nil {
		return "", "", fmt.Errorf("writing dot file: %w", err)
	}
	if err := Render(ctx, dotPath, svgPath); err != nil {
		return "", "", err
	}

	logger.Info("Saved graph.", "dot", dotPath, "svg", svgPath)
	return dotPath, svgPath, nil
}

// Render runs the external graphviz engine over an existing dot file,
// producing an SVG with hierarchical layout.
func Render(ctx context.Context, dotPath, svgPath string) error {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, renderer, "-Tsvg", dotPath, "-o", svgPath)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("rendering %s with %s: %w (%s)", dotPath, renderer, err, bytes.TrimSpace(stderr.Bytes()))
	}
	return nil
}
