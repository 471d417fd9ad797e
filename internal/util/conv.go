package util

import "strconv"

// ParseID validates the shape of a path/body identifier. Malformed ids fail
// with VALIDATION_ERROR before any authorization check runs.
func ParseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, ValidationError("Invalid id")
	}
	return uint(id), nil
}
