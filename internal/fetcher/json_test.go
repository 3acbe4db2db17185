package fetcher

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSONTable(t *testing.T) {
	input := `[
		{"first_name": "mr. john", "zip": 2134, "vip": true},
		{"email": "a@b.com", "first_name": null},
		{},
		{"zip": "02134", "email": "c@d.com"}
	]`

	tbl, err := DecodeJSONTable(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"first_name", "zip", "vip", "email"}, tbl.Header)
	require.Len(t, tbl.Rows, 3)

	assert.Equal(t, Row{Line: 1, Fields: []string{"mr. john", "2134", "true", ""}}, tbl.Rows[0])
	assert.Equal(t, Row{Line: 2, Fields: []string{"", "", "", "a@b.com"}}, tbl.Rows[1])
	assert.Equal(t, Row{Line: 4, Fields: []string{"", "02134", "", "c@d.com"}}, tbl.Rows[2])
}

func TestDecodeJSONTable_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: "empty input"},
		{name: "not array", input: `{"a":1}`, want: "expected '['"},
		{name: "element not object", input: `["x"]`, want: "expected object"},
		{name: "nested", input: `[{"phone":{"home":"555"}}]`, want: "nested values"},
		{name: "truncated", input: `[{"a":"b"}`, want: "closing token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeJSONTable(context.Background(), strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDecodeJSONTable_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := DecodeJSONTable(ctx, strings.NewReader(`[{"a":"b"}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "context cancelled")
}

func TestReadTable_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.json")
	require.NoError(t, writeTestFile(path, `[{"phone":"555-123-4567"}]`))

	tbl, err := ReadTable(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"phone"}, tbl.Header)
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, []string{"555-123-4567"}, tbl.Rows[0].Fields)
}
