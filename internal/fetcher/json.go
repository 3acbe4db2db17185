package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"io"

	"github.com/rotisserie/eris"
)

// DecodeJSONTable reads a JSON array of flat objects, such as a CRM API
// export, into a Table. The header is the union of object keys in the order
// they first appear; each Row.Line is the 1-based element index. Null values
// become empty cells, numbers and booleans keep their literal text, and
// nested objects or arrays are rejected.
func DecodeJSONTable(ctx context.Context, r io.Reader) (*Table, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, eris.New("json: empty input")
		}
		return nil, eris.Wrap(err, "json: read opening token")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, eris.Errorf("json: expected '[', got %v", tok)
	}

	t := &Table{}
	index := make(map[string]int)
	var records []map[string]string

	for dec.More() {
		if err := ctx.Err(); err != nil {
			return nil, eris.Wrap(err, "json: context cancelled")
		}

		var obj map[string]json.RawMessage
		keys, err := decodeObject(dec, &obj)
		if err != nil {
			return nil, eris.Wrapf(err, "json: element %d", len(records)+1)
		}

		rec := make(map[string]string, len(obj))
		for _, k := range keys {
			v, err := scalar(obj[k])
			if err != nil {
				return nil, eris.Wrapf(err, "json: element %d field %q", len(records)+1, k)
			}
			rec[k] = v
			if _, seen := index[k]; !seen {
				index[k] = len(t.Header)
				t.Header = append(t.Header, k)
			}
		}
		records = append(records, rec)
	}

	if _, err := dec.Token(); err != nil {
		return nil, eris.Wrap(err, "json: read closing token")
	}

	for i, rec := range records {
		fields := make([]string, len(t.Header))
		for k, v := range rec {
			fields[index[k]] = v
		}
		if blank(fields) {
			continue
		}
		t.Rows = append(t.Rows, Row{Line: i + 1, Fields: fields})
	}
	return t, nil
}

// decodeObject decodes one JSON object into dst and returns its keys in
// document order.
func decodeObject(dec *json.Decoder, dst *map[string]json.RawMessage) ([]string, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, eris.Errorf("expected object, got %v", tok)
	}

	obj := make(map[string]json.RawMessage)
	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, eris.Errorf("expected key, got %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		if _, dup := obj[key]; !dup {
			keys = append(keys, key)
		}
		obj[key] = raw
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	*dst = obj
	return keys, nil
}

// scalar renders a raw JSON value as cell text.
func scalar(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	switch {
	case len(raw) == 0, bytes.Equal(raw, []byte("null")):
		return "", nil
	case raw[0] == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	case raw[0] == '{', raw[0] == '[':
		return "", eris.New("nested values are not supported")
	}
	return string(raw), nil
}
