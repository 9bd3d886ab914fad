package postgres

import (
	"database/sql"
	"fmt"

	sonic "github.com/bytedance/sonic"
)

func isNotFound(err error) bool {
	return err == sql.ErrNoRows
}

// Category lists are stored as JSON-encoded text columns; both sides of
// the API agree on that convention.
func encodeStringList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	raw, err := sonic.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encode string list: %w", err)
	}
	return string(raw), nil
}

func decodeStringList(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var out []string
	if err := sonic.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("decode string list: %w", err)
	}
	return out, nil
}
