package fetcher

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
)

// Table is a header row plus data rows read from a contact sheet.
type Table struct {
	Header []string
	Rows   []Row
}

// ReadTable loads a contact sheet, choosing the parser from the file
// extension: .csv, .tsv/.tab, .xlsx or .json. Blank rows are dropped.
func ReadTable(ctx context.Context, path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return readXLSXTable(path)
	case ".json":
		return readJSONTable(ctx, path)
	case ".tsv", ".tab":
		return readCSVTable(ctx, path, '\t')
	case ".csv", ".txt", "":
		return readCSVTable(ctx, path, ',')
	default:
		return nil, eris.Errorf("fetcher: unsupported input type %q", filepath.Ext(path))
	}
}

func readCSVTable(ctx context.Context, path string, delim rune) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "fetcher: open %s", path)
	}
	defer f.Close() //nolint:errcheck

	headerCh := make(chan []string, 1)
	rowCh, errCh := StreamCSV(ctx, f, CSVOptions{
		Delimiter:  delim,
		HasHeader:  true,
		HeaderCh:   headerCh,
		LazyQuotes: true,
		TrimSpace:  true,
		SkipBlank:  true,
	})

	t := &Table{}
	for row := range rowCh {
		t.Rows = append(t.Rows, row)
	}
	for err := range errCh {
		if err != nil {
			return nil, err
		}
	}

	select {
	case t.Header = <-headerCh:
	default:
		return nil, eris.Errorf("fetcher: %s has no header row", path)
	}
	return t, nil
}

func readXLSXTable(path string) (*Table, error) {
	rows, err := ReadXLSX(path, XLSXOptions{})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, eris.Errorf("fetcher: %s has no header row", path)
	}

	t := &Table{Header: rows[0].Fields}
	for _, r := range rows[1:] {
		if blank(r.Fields) {
			continue
		}
		t.Rows = append(t.Rows, r)
	}
	return t, nil
}

func readJSONTable(ctx context.Context, path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "fetcher: open %s", path)
	}
	defer f.Close() //nolint:errcheck

	t, err := DecodeJSONTable(ctx, f)
	if err != nil {
		return nil, err
	}
	if len(t.Header) == 0 {
		return nil, eris.Errorf("fetcher: %s has no header row", path)
	}
	return t, nil
}
