package entities

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var errCollectionShape = errors.New("collection must be a JSON array or object")

// Collection is an ordered list of quote entries.
//
// Stored drafts do not agree on one shape: some serializers write a list,
// others a keyed object ({"0": {...}, "1": {...}} or {"<id>": {...}}).
// Both decode into the same ordered slice; object members keep the order in
// which they appear in the document. Encoding always produces a list.
type Collection[T any] []T

// Items returns the entries as a plain slice. It never returns nil.
func (c Collection[T]) Items() []T {
	out := make([]T, len(c))
	copy(out, c)
	return out
}

func (c Collection[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Items())
}

func (c *Collection[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*c = nil
		return nil
	}

	switch data[0] {
	case '[':
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*c = items
		return nil
	case '{':
		items, err := decodeObjectValues[T](data)
		if err != nil {
			return err
		}
		*c = items
		return nil
	default:
		return errCollectionShape
	}
}

func decodeObjectValues[T any](data []byte) ([]T, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	var items []T
	for dec.More() {
		key, err := dec.Token()
		if err != nil {
			return nil, err
		}
		var v T
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("collection entry %v: %w", key, err)
		}
		items = append(items, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return items, nil
}
