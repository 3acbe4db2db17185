package fetcher

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTable_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.csv")
	require.NoError(t, writeTestFile(path, "First Name,Phone\n john ,555-123-4567\n,\njane,\n"))

	tbl, err := ReadTable(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"First Name", "Phone"}, tbl.Header)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, []string{"john", "555-123-4567"}, tbl.Rows[0].Fields)
	assert.Equal(t, 4, tbl.Rows[1].Line)
}

func TestReadTable_TSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.tsv")
	require.NoError(t, writeTestFile(path, "email\tzip\na@b.com\t12345\n"))

	tbl, err := ReadTable(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"email", "zip"}, tbl.Header)
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, []string{"a@b.com", "12345"}, tbl.Rows[0].Fields)
}

func TestReadTable_XLSX(t *testing.T) {
	path := createTestXLSX(t, map[string][][]string{
		"Sheet1": {{"city"}, {"boston"}, {"austin"}},
	})

	tbl, err := ReadTable(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"city"}, tbl.Header)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, []string{"austin"}, tbl.Rows[1].Fields)
	assert.Equal(t, 3, tbl.Rows[1].Line)
}

func TestReadTable_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, writeTestFile(path, ""))

	_, err := ReadTable(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no header row")
}

func TestReadTable_Unsupported(t *testing.T) {
	_, err := ReadTable(context.Background(), "contacts.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported input type")
}

func TestReadTable_Missing(t *testing.T) {
	_, err := ReadTable(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}
