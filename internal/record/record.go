// Package record models serialized provenance entries: materials, processes,
// ingredients and measurements in their spec, run and template variants,
// together with the attribute payloads they carry.
package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrListPayload marks a payload whose top level is a JSON array. Such files
// are auxiliary bulk dumps and never describe a single record.
var ErrListPayload = errors.New("record: list-shaped payload")

// ErrBulkPayload marks a history-dump object that aggregates raw records
// under a "raw_jsons" key.
var ErrBulkPayload = errors.New("record: bulk history payload")

// Ref is an identifier reference to another record.
type Ref struct {
	ID string `json:"id"`
}

// Record is a single parsed provenance entry. The attribute collections are
// kept raw; the builder decodes individual entries on demand because a single
// collection can mix plain tag strings with typed objects.
type Record struct {
	Type     string            `json:"type"`
	UIDs     map[string]string `json:"uids"`
	Name     string            `json:"name"`
	Process  *Ref              `json:"process"`
	Material *Ref              `json:"material"`

	Parameters []json.RawMessage `json:"parameters"`
	Properties []json.RawMessage `json:"properties"`
	Conditions []json.RawMessage `json:"conditions"`
	Tags       []json.RawMessage `json:"tags"`
	FileLinks  []json.RawMessage `json:"file_links"`

	// Kind is decoded from Type by Parse. Callers constructing records in
	// memory must set it themselves, normally via ParseKind.
	Kind Kind `json:"-"`
}

// envelope mirrors Record plus the marker key that identifies bulk dumps.
type envelope struct {
	Record
	RawJSONs json.RawMessage `json:"raw_jsons"`
}

// Parse decodes a single serialized record. It returns ErrListPayload for
// array payloads and ErrBulkPayload for history dumps; both are skippable
// conditions, not data defects.
func Parse(data []byte) (*Record, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return nil, ErrListPayload
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decoding record: %w", err)
	}
	if env.RawJSONs != nil {
		return nil, ErrBulkPayload
	}

	rec := env.Record
	rec.Kind = ParseKind(rec.Type)
	return &rec, nil
}

// UID returns the record's identifier in the given namespace.
func (r *Record) UID(namespace string) (string, bool) {
	id, ok := r.UIDs[namespace]
	return id, ok
}
