// Package viewcfg loads view profiles: named, HCL-declared bundles of anchor
// identifier, traversal directions and render options that the application
// runs as batch subgraph exports after a build.
package viewcfg

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/provgraphgo/internal/ctxlog"
	"github.com/vk/provgraphgo/internal/graph"
)

// View is one decoded view profile.
type View struct {
	// Name labels the view and becomes the artifact base name.
	Name string
	// Anchor is the identifier the traversal functions are applied to.
	Anchor string
	// Ancestors and Descendants toggle the upstream/downstream traversals.
	Ancestors   bool
	Descendants bool
	// Component optionally includes the anchor's connected component:
	// "strong", "weak" or empty.
	Component string
	// AddAnchor includes the anchor itself in the slice. Defaults to true.
	AddAnchor bool
	// RenderOptions are extra graph-level attributes handed to the renderer.
	RenderOptions map[string]any
}

// viewBlock is the raw HCL shape of a view block.
type viewBlock struct {
	Name          string    `hcl:"name,label"`
	Anchor        string    `hcl:"anchor"`
	Ancestors     bool      `hcl:"ancestors,optional"`
	Descendants   bool      `hcl:"descendants,optional"`
	Component     string    `hcl:"component,optional"`
	AddAnchor     *bool     `hcl:"add_anchor,optional"`
	RenderOptions cty.Value `hcl:"render_options,optional"`
}

// fileRoot decodes the top-level blocks of a profile file.
type fileRoot struct {
	Views  []*viewBlock `hcl:"view,block"`
	Remain hcl.Body     `hcl:",remain"`
}

// Load parses a view profile file into its views, in declaration order.
func Load(ctx context.Context, path string) ([]*View, error) {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing view profile %s: %w", path, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("decoding view profile %s: %w", path, diags)
	}

	views := make([]*View, 0, len(root.Views))
	for _, block := range root.Views {
		view, err := translateView(block)
		if err != nil {
			return nil, fmt.Errorf("view %q in %s: %w", block.Name, path, err)
		}
		views = append(views, view)
	}

	logger.Debug("View profile loaded.", "path", path, "views", len(views))
	return views, nil
}

// translateView validates a raw block and converts it to the model form.
func translateView(block *viewBlock) (*View, error) {
	if block.Anchor == "" {
		return nil, fmt.Errorf("anchor must not be empty")
	}
	switch block.Component {
	case "", "strong", "weak":
	default:
		return nil, fmt.Errorf("component must be \"strong\" or \"weak\", got %q", block.Component)
	}
	if !block.Ancestors && !block.Descendants && block.Component == "" {
		return nil, fmt.Errorf("at least one of ancestors, descendants or component must be set")
	}

	addAnchor := true
	if block.AddAnchor != nil {
		addAnchor = *block.AddAnchor
	}

	opts, err := nativeOptions(block.RenderOptions)
	if err != nil {
		return nil, fmt.Errorf("render_options: %w", err)
	}

	return &View{
		Name:          block.Name,
		Anchor:        block.Anchor,
		Ancestors:     block.Ancestors,
		Descendants:   block.Descendants,
		Component:     block.Component,
		AddAnchor:     addAnchor,
		RenderOptions: opts,
	}, nil
}

// SliceFuncs returns the traversal functions this view applies to its anchor.
func (v *View) SliceFuncs() []graph.SliceFunc {
	var funcs []graph.SliceFunc
	if v.Descendants {
		funcs = append(funcs, graph.DescendantsOf)
	}
	if v.Ancestors {
		funcs = append(funcs, graph.AncestorsOf)
	}
	switch v.Component {
	case "strong":
		funcs = append(funcs, graph.StrongComponentOf)
	case "weak":
		funcs = append(funcs, graph.WeakComponentOf)
	}
	return funcs
}
