package app

import (
	"context"
	"fmt"

	"github.com/vk/provgraphgo/internal/builder"
	"github.com/vk/provgraphgo/internal/ctxlog"
	"github.com/vk/provgraphgo/internal/dot"
	"github.com/vk/provgraphgo/internal/graph"
	"github.com/vk/provgraphgo/internal/loader"
	"github.com/vk/provgraphgo/internal/notebook"
	"github.com/vk/provgraphgo/internal/record"
	"github.com/vk/provgraphgo/internal/viewcfg"
	"github.com/vk/provgraphgo/internal/watcher"
)

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	scope, ok := record.ParseScope(a.config.Scope)
	if !ok {
		return fmt.Errorf("invalid scope %q", a.config.Scope)
	}
	opts := builder.Options{
		Scope:         scope,
		Namespace:     a.config.Namespace,
		AddAttributes: a.config.AddAttributes,
		AddFileLinks:  a.config.AddFileLinks,
		AddTags:       a.config.AddTags,
		SeparateNodes: a.config.SeparateNodes,
		Strict:        a.config.Strict,
	}

	if a.config.Watch {
		session, err := watcher.NewSession(a.config.DirPath, a.config.WatchOutput, a.config.Glob, opts)
		if err != nil {
			return fmt.Errorf("starting watch session: %w", err)
		}
		defer session.Close()
		return session.Run(ctx)
	}

	records, err := loader.Load(ctx, a.config.DirPath, a.config.Glob)
	if err != nil {
		return err
	}

	res, err := builder.Build(ctx, records, opts)
	if err != nil {
		return fmt.Errorf("failed to build graph: %w", err)
	}
	if res == nil {
		// Nothing eligible; the builder already logged why.
		return nil
	}

	outDir := a.config.outputDir()
	dotPath, _, err := dot.Save(ctx, res.Relabeled, outDir, scope.String()+"_graph", nil)
	if err != nil {
		return err
	}
	builder.Diagnostics(ctx, res.Graph, res.Total, res.Disregarded)

	// The notebook opens the most specific artifact produced this pass.
	notebookTarget := dotPath

	if a.config.Identifier != "" {
		subDot, err := a.exportSubgraph(ctx, res, outDir)
		if err != nil {
			return err
		}
		notebookTarget = subDot
	}

	if a.config.ViewsPath != "" {
		if err := a.runViews(ctx, res, outDir); err != nil {
			return err
		}
	}

	if a.config.LaunchNotebook {
		return notebook.Launch(ctx, a.config.notebookDir(), notebookTarget)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// exportSubgraph writes the <identifier>.dot/.svg pair for the anchored
// slice selected by the ancestors/descendants flags.
func (a *App) exportSubgraph(ctx context.Context, res *builder.Result, outDir string) (string, error) {
	var funcs []graph.SliceFunc
	if a.config.Descendants {
		funcs = append(funcs, graph.DescendantsOf)
	}
	if a.config.Ancestors {
		funcs = append(funcs, graph.AncestorsOf)
	}

	sub := res.Graph.Slice(a.config.Identifier, funcs, true)
	dotPath, _, err := dot.Save(ctx, sub.Relabel(res.Names), outDir, a.config.Identifier, nil)
	if err != nil {
		return "", fmt.Errorf("exporting subgraph for %q: %w", a.config.Identifier, err)
	}
	return dotPath, nil
}

// runViews executes every view in the configured profile as a batch
// subgraph export.
func (a *App) runViews(ctx context.Context, res *builder.Result, outDir string) error {
	views, err := viewcfg.Load(ctx, a.config.ViewsPath)
	if err != nil {
		return err
	}
	for _, view := range views {
		sub := res.Graph.Slice(view.Anchor, view.SliceFuncs(), view.AddAnchor)
		if sub.NodeCount() == 0 {
			a.logger.Warn("View matched no nodes, skipped.", "view", view.Name, "anchor", view.Anchor)
			continue
		}
		if _, _, err := dot.Save(ctx, sub.Relabel(res.Names), outDir, view.Name, view.RenderOptions); err != nil {
			return fmt.Errorf("exporting view %q: %w", view.Name, err)
		}
	}
	return nil
}
