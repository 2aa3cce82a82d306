package utils

import (
	"strconv"
	"strings"
)

// ParseID reads a positive integer id; blank, malformed or non-positive
// input gives 0.
func ParseID(s string) int {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || i < 0 {
		return 0
	}
	return i
}
