// Package identity generates prefixed unique identifiers for domain entities.
package identity

import (
	"strings"

	"github.com/google/uuid"
)

const separator = "_"

// GenerateID produces a unique identifier of the form "<prefix>_<uuid>".
// An empty prefix yields a bare UUID.
func GenerateID(prefix string) string {
	id := uuid.New().String()
	if prefix == "" {
		return id
	}
	return prefix + separator + id
}

// HasPrefix reports whether the identifier carries the given prefix.
func HasPrefix(id, prefix string) bool {
	return strings.HasPrefix(id, prefix+separator)
}
