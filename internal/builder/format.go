package builder

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/vk/provgraphgo/internal/record"
)

// formatValue renders one attribute value for display, dispatching on its
// type tag. The second return is false for unrecognized types; the caller
// decides whether that is a skip or an error.
func formatValue(name string, v *record.Value) (string, bool) {
	switch v.Type {
	case "nominal_real":
		return fmt.Sprintf("%s, %s %s", name, v.Nominal, v.Units), true
	case "nominal_integer":
		return fmt.Sprintf("%s, %s", name, v.Nominal), true
	case "uniform_real":
		return fmt.Sprintf("%s, %s-%s %s", name, v.LowerBound, v.UpperBound, v.Units), true
	case "uniform_integer":
		return fmt.Sprintf("%s, %s-%s", name, v.LowerBound, v.UpperBound), true
	case "empirical_formula":
		return fmt.Sprintf("%s, %s, %s", name, v.Formula, v.Type), true
	case "normal_real":
		return fmt.Sprintf("%s, mean %s, std %s, %s, %s", name, v.Mean, v.Std, v.Units, v.Type), true
	case "nominal_categorical":
		return fmt.Sprintf("%s, %s", name, v.Category), true
	case "nominal_composition":
		return fmt.Sprintf("%s, %s", name, formatQuantities(v.Quantities)), true
	default:
		return "", false
	}
}

// formatQuantities renders a composition's quantity map with sorted keys so
// repeated builds produce identical labels.
func formatQuantities(quantities map[string]json.Number) string {
	keys := make([]string, 0, len(quantities))
	for k := range quantities {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: %s", k, quantities[k])
	}
	sb.WriteByte('}')
	return sb.String()
}
