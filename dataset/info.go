// SPDX-License-Identifier: EPL-2.0

package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
)

// Table is a parsed CSV file: the first row is the header.
type Table struct {
	Header []string   `json:"header" yaml:"header"`
	Rows   [][]string `json:"rows" yaml:"rows"`
}

// Column returns the values of the named column, or nil.
func (t *Table) Column(name string) []string {
	idx := -1
	for i, h := range t.Header {
		if h == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	out := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if idx < len(row) {
			out = append(out, row[idx])
		} else {
			out = append(out, "")
		}
	}
	return out
}

// ReadTable parses CSV from r.
func ReadTable(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}
	if len(records) == 0 {
		return &Table{}, nil
	}

	return &Table{Header: records[0], Rows: records[1:]}, nil
}

// Info loads the release metadata table. With save it is also downloaded into
// the original-audio directory.
func (l *Loader) Info(ctx context.Context, save bool) (*Table, error) {
	paths, err := l.Paths(ctx)
	if err != nil {
		return nil, err
	}
	if paths.MetadataURL == "" {
		return nil, ErrNoMetadata
	}

	rc, err := l.client.Open(ctx, paths.MetadataURL)
	if err != nil {
		return nil, fmt.Errorf("fetching metadata: %w", err)
	}
	defer rc.Close()

	table, err := ReadTable(rc)
	if err != nil {
		return nil, err
	}

	if save {
		path, err := l.client.Download(ctx, paths.MetadataURL, paths.MetadataDir, paths.MetadataName)
		if err != nil {
			return table, fmt.Errorf("saving metadata: %w", err)
		}
		l.logger.Debug("saved metadata", slog.String("path", path))
	}

	return table, nil
}
