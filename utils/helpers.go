package utils

import (
	"fmt"
	"strconv"
)

// ParseID parses a positive integer project id from a path parameter
func ParseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid project id %q", raw)
	}
	return uint(id), nil
}
