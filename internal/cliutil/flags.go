package cliutil

import (
	"fmt"
	"strings"
)

// SplitAssignment splits a "key=value" argument at the first "=". The value
// may itself contain "=" or ","; a missing "=" yields an empty value.
func SplitAssignment(s string) (string, string, error) {
	key, value, _ := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", fmt.Errorf("invalid assignment %q: empty key", s)
	}
	return key, value, nil
}
