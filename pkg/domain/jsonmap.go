package domain

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JsonMap is a JSON object column: string keys, arbitrary JSON-compatible values.
//
// It is stored as jsonb. A nil JsonMap is a NULL column, distinct from an
// empty object.
type JsonMap map[string]any

// Merge applies patch over m and returns the result.
//
// When m is nil, the result is a copy of patch (the column was unset and is
// replaced wholesale). Otherwise keys of patch overwrite same-named keys of m
// and all other keys of m are retained. Neither operand is modified.
func (m JsonMap) Merge(patch JsonMap) JsonMap {
	if m == nil {
		if patch == nil {
			return nil
		}
		merged := make(JsonMap, len(patch))
		for k, v := range patch {
			merged[k] = v
		}
		return merged
	}

	merged := make(JsonMap, len(m)+len(patch))
	for k, v := range m {
		merged[k] = v
	}
	for k, v := range patch {
		merged[k] = v
	}
	return merged
}

// Equal compares by JSON value, so that a map built in Go and the same map
// read back from the database (where all numbers are float64) are equal.
func (m JsonMap) Equal(o JsonMap) bool {
	if (m == nil) || (o == nil) {
		return (m == nil) && (o == nil)
	}
	mj, merr := json.Marshal(m)
	oj, oerr := json.Marshal(o)
	if merr != nil || oerr != nil {
		return false
	}
	return bytes.Equal(mj, oj)
}

func (m JsonMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *JsonMap) Scan(src any) error {
	if src == nil {
		*m = nil
		return nil
	}

	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("JsonMap.Scan: unexpected type: %T", src)
	}

	return json.Unmarshal(raw, m)
}
