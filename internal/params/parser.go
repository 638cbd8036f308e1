package params

import (
	"fmt"
	"strings"
)

// ParseKeyValuePairs converts a slice of "key=value" strings into a map.
// Later pairs win over earlier ones with the same key.
//
// Example:
//
//	params, err := ParseKeyValuePairs([]string{"format=CHIP-0007", "collection_name=Tickets"})
//	// Returns: map[string]string{"format": "CHIP-0007", "collection_name": "Tickets"}
func ParseKeyValuePairs(pairs []string) (map[string]string, error) {
	result := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("parameter %q is not in key=value format (example: --set collection_name=Tickets)", pair)
		}

		if key == "" {
			return nil, fmt.Errorf("parameter has empty key: %q", pair)
		}

		result[key] = value
	}

	return result, nil
}
