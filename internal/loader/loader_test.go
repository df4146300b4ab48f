package loader

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/provgraphgo/internal/ctxlog"
)

func quietCtx() context.Context {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return ctxlog.WithLogger(context.Background(), logger)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "m1.json", `{"type": "material_run", "uids": {"auto": "m1"}, "name": "alloy"}`)
	writeFile(t, dir, "nested/p1.json", `{"type": "process_run", "uids": {"auto": "p1"}, "name": "casting"}`)
	writeFile(t, dir, "notes.txt", "not a record")

	records, err := Load(quietCtx(), dir, "")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "alloy", records[0].Name)
	assert.Equal(t, "casting", records[1].Name)
}

func TestLoadSkipsAuxiliaryPayloads(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "m1.json", `{"type": "material_run", "uids": {"auto": "m1"}, "name": "alloy"}`)
	writeFile(t, dir, "list.json", `[{"type": "material_run"}]`)
	writeFile(t, dir, "history.json", `{"raw_jsons": {"a": 1}}`)
	writeFile(t, dir, "broken.json", `{"type": `)

	records, err := Load(quietCtx(), dir, "")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "alloy", records[0].Name)
}

func TestLoadGlobFilter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "runs/m1.json", `{"type": "material_run", "uids": {"auto": "m1"}, "name": "alloy"}`)
	writeFile(t, dir, "specs/ms1.json", `{"type": "material_spec", "uids": {"auto": "ms1"}, "name": "alloy spec"}`)

	records, err := Load(quietCtx(), dir, "runs/**")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "alloy", records[0].Name)
}

func TestLoadMissingDirectory(t *testing.T) {
	_, err := Load(quietCtx(), filepath.Join(t.TempDir(), "dne"), "")
	assert.Error(t, err)
}

func TestLoadEmptyDirectory(t *testing.T) {
	records, err := Load(quietCtx(), t.TempDir(), "")
	require.NoError(t, err)
	assert.Empty(t, records)
}
