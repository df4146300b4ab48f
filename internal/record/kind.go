package record

import "strings"

// Category identifies what a provenance record describes.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryMaterial
	CategoryProcess
	CategoryIngredient
	CategoryMeasurement
	CategoryParameter
	CategoryCondition
	CategoryProperty
)

// String returns the lower-case category name.
func (c Category) String() string {
	switch c {
	case CategoryMaterial:
		return "material"
	case CategoryProcess:
		return "process"
	case CategoryIngredient:
		return "ingredient"
	case CategoryMeasurement:
		return "measurement"
	case CategoryParameter:
		return "parameter"
	case CategoryCondition:
		return "condition"
	case CategoryProperty:
		return "property"
	default:
		return "unknown"
	}
}

// IsAttribute reports whether the category is a top-level attribute template
// (parameter, condition or property). These records carry no provenance links
// and are only counted as disregarded by the builder.
func (c Category) IsAttribute() bool {
	return c == CategoryParameter || c == CategoryCondition || c == CategoryProperty
}

// Scope distinguishes the spec, run and template variants of a record kind.
type Scope int

const (
	ScopeNone Scope = iota
	ScopeSpec
	ScopeRun
	ScopeTemplate
)

// String returns the lower-case scope name, which doubles as the suffix of
// the serialized type string.
func (s Scope) String() string {
	switch s {
	case ScopeSpec:
		return "spec"
	case ScopeRun:
		return "run"
	case ScopeTemplate:
		return "template"
	default:
		return "none"
	}
}

// ParseScope converts a user-supplied scope name into a Scope.
func ParseScope(s string) (Scope, bool) {
	switch strings.ToLower(s) {
	case "spec":
		return ScopeSpec, true
	case "run":
		return ScopeRun, true
	case "template":
		return ScopeTemplate, true
	default:
		return ScopeNone, false
	}
}

// Kind pairs a record's category with its scope. It is decoded exactly once,
// when the record is parsed, so nothing downstream branches on the raw type
// string.
type Kind struct {
	Category Category
	Scope    Scope
}

// String renders the kind the way the serialized type string spells it,
// e.g. "material_run".
func (k Kind) String() string {
	if k.Scope == ScopeNone {
		return k.Category.String()
	}
	return k.Category.String() + "_" + k.Scope.String()
}

// ParseKind decodes a serialized type string such as "ingredient_spec" or
// "parameter_template". The prefix selects the category and the suffix the
// scope; either side may be absent or unrecognized.
func ParseKind(typ string) Kind {
	var k Kind
	switch {
	case strings.HasPrefix(typ, "material"):
		k.Category = CategoryMaterial
	case strings.HasPrefix(typ, "process"):
		k.Category = CategoryProcess
	case strings.HasPrefix(typ, "ingredient"):
		k.Category = CategoryIngredient
	case strings.HasPrefix(typ, "measurement"):
		k.Category = CategoryMeasurement
	case strings.HasPrefix(typ, "parameter"):
		k.Category = CategoryParameter
	case strings.HasPrefix(typ, "condition"):
		k.Category = CategoryCondition
	case strings.HasPrefix(typ, "property"):
		k.Category = CategoryProperty
	}
	switch {
	case strings.HasSuffix(typ, "spec"):
		k.Scope = ScopeSpec
	case strings.HasSuffix(typ, "run"):
		k.Scope = ScopeRun
	case strings.HasSuffix(typ, "template"):
		k.Scope = ScopeTemplate
	}
	return k
}
