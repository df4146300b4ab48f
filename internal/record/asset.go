package record

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Asset is one object entry of a record's attribute collections: a typed
// attribute, a nested property-and-conditions wrapper, or a file link.
type Asset struct {
	Type     string         `json:"type"`
	Name     string         `json:"name"`
	URL      string         `json:"url"`
	Value    *Value         `json:"value"`
	Property *PropertyAsset `json:"property"`
}

// PropertyAsset is the inner property of a "property_and_conditions" asset.
type PropertyAsset struct {
	Name  string `json:"name"`
	Value *Value `json:"value"`
}

// Value is the tagged union over attribute value kinds. Only the fields
// belonging to the tagged type are populated; numbers stay json.Number so
// display formatting preserves the source text.
type Value struct {
	Type       string                 `json:"type"`
	Nominal    json.Number            `json:"nominal"`
	Units      string                 `json:"units"`
	LowerBound json.Number            `json:"lower_bound"`
	UpperBound json.Number            `json:"upper_bound"`
	Formula    string                 `json:"formula"`
	Mean       json.Number            `json:"mean"`
	Std        json.Number            `json:"std"`
	Category   string                 `json:"category"`
	Quantities map[string]json.Number `json:"quantities"`
}

// DecodeEntry decodes one raw collection entry. Plain strings come back as
// tag (asset is nil); objects come back as asset (tag is empty). Any other
// payload shape is an error the caller may treat as skippable.
func DecodeEntry(raw json.RawMessage) (tag string, asset *Asset, err error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return "", nil, fmt.Errorf("empty attribute entry")
	}
	if trimmed[0] == '"' {
		if err := json.Unmarshal(raw, &tag); err != nil {
			return "", nil, fmt.Errorf("decoding tag entry: %w", err)
		}
		return tag, nil, nil
	}
	if trimmed[0] != '{' {
		return "", nil, fmt.Errorf("attribute entry is neither string nor object")
	}
	var a Asset
	if err := json.Unmarshal(raw, &a); err != nil {
		return "", nil, fmt.Errorf("decoding attribute entry: %w", err)
	}
	return "", &a, nil
}
