// Package loader reads a directory of serialized provenance records into a
// flat, ordered record collection, dropping auxiliary bulk payloads before
// they reach the builder.
package loader

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/vk/provgraphgo/internal/ctxlog"
	"github.com/vk/provgraphgo/internal/fsutil"
	"github.com/vk/provgraphgo/internal/record"
)

// recordExtension is the file extension record files are discovered by.
const recordExtension = ".json"

// Load reads every record file under dir, in lexical walk order. List-shaped
// payloads, bulk history dumps and unparseable files are skipped, not
// errors; path and read failures propagate and abort the pass. An optional
// doublestar glob filters files by their path relative to dir.
func Load(ctx context.Context, dir, glob string) ([]*record.Record, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.FindFilesByExtension(dir, recordExtension, glob)
	if err != nil {
		return nil, fmt.Errorf("discovering record files in %s: %w", dir, err)
	}

	var records []*record.Record
	skipped := 0
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading record file: %w", err)
		}
		rec, err := record.Parse(data)
		if err != nil {
			skipped++
			if errors.Is(err, record.ErrListPayload) || errors.Is(err, record.ErrBulkPayload) {
				logger.Debug("Auxiliary payload skipped.", "path", path, "reason", err)
			} else {
				logger.Debug("Unparseable record file skipped.", "path", path, "error", err)
			}
			continue
		}
		records = append(records, rec)
	}

	logger.Info("Record files loaded.", "dir", dir, "count", len(records), "skipped", skipped)
	return records, nil
}
