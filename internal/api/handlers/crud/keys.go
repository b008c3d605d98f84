package crud

import (
	"fmt"
	"strconv"
)

func Int64Key(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not a numeric id: %w", err)
	}
	return id, nil
}

func StringKey(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("empty key")
	}
	return raw, nil
}
