package store

import (
	"encoding/json"
	"fmt"
	"strings"
)

// marshalErrors serializes failure messages as a JSON array.
// A nil slice is stored as "[]" so the column is never NULL.
func marshalErrors(errs []string) (string, error) {
	if errs == nil {
		errs = []string{}
	}
	data, err := json.Marshal(errs)
	if err != nil {
		return "", fmt.Errorf("marshal errors: %w", err)
	}
	return string(data), nil
}

// unmarshalErrors is the inverse of marshalErrors. Empty input and an
// empty array both decode to nil.
func unmarshalErrors(data string) ([]string, error) {
	if data == "" {
		return nil, nil
	}
	var errs []string
	if err := json.Unmarshal([]byte(data), &errs); err != nil {
		return nil, fmt.Errorf("unmarshal errors: %w", err)
	}
	if len(errs) == 0 {
		return nil, nil
	}
	return errs, nil
}

// marshalRows joins rendered frame rows one per line.
func marshalRows(rows []string) string {
	return strings.Join(rows, "\n")
}

func unmarshalRows(data string) []string {
	if data == "" {
		return nil
	}
	return strings.Split(data, "\n")
}
