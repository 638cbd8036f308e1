package metadata

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// CheckIdentifier reports whether id looks like a canonical UUID.
// Tickets are hashed whatever their identifier holds; callers use this to
// warn, never to reject a row.
func CheckIdentifier(id string) error {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return fmt.Errorf("identifier is empty")
	}
	parsed, err := uuid.Parse(trimmed)
	if err != nil {
		return fmt.Errorf("identifier %q is not a UUID: %w", id, err)
	}
	if parsed.String() != strings.ToLower(trimmed) {
		return fmt.Errorf("identifier %q is not in canonical 8-4-4-4-12 form", id)
	}
	if trimmed != id {
		return fmt.Errorf("identifier %q has surrounding whitespace", id)
	}
	return nil
}
