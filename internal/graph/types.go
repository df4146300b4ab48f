package graph

// Color is the display color a node carries, assigned by record kind.
type Color string

const (
	ColorRed    Color = "red"
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorPurple Color = "purple"
	ColorOrange Color = "orange"
)

// Shape is an optional display shape. Structural nodes use the renderer's
// default; separate attribute nodes are rectangles.
type Shape string

// ShapeRectangle marks separate attribute nodes.
const ShapeRectangle Shape = "rectangle"

// Edge is a directed, attribute-free connection between two node keys.
type Edge struct {
	From string
	To   string
}

// Node is a single vertex: a display style plus named attribute sequences.
// Every attribute name maps to an insertion-ordered list of formatted values;
// a scalar attribute is simply a list of length one.
type Node struct {
	ID    string
	Color Color
	Shape Shape

	attrs     map[string][]string
	attrNames []string

	succs map[string]*Node
	preds map[string]*Node
}

// AppendAttr appends a formatted value under the given attribute name,
// preserving insertion order across repeated names.
func (n *Node) AppendAttr(name, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string][]string)
	}
	if _, ok := n.attrs[name]; !ok {
		n.attrNames = append(n.attrNames, name)
	}
	n.attrs[name] = append(n.attrs[name], value)
}

// Attr returns the ordered values stored under name.
func (n *Node) Attr(name string) []string {
	return n.attrs[name]
}

// AttrNames returns the attribute names in first-insertion order.
func (n *Node) AttrNames() []string {
	return n.attrNames
}
