package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"foodshare/pkg/types"
)

// ReadTable decodes a CSV artifact. The first record names the columns;
// every later record must have the same width.
func ReadTable(r io.Reader) (*types.Table, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("artifact has no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	table := &types.Table{
		Columns: header,
		Rows:    make([][]string, 0),
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(table.Rows)+1, err)
		}
		table.Rows = append(table.Rows, record)
	}

	return table, nil
}
