package params

import (
	"bytes"
	"fmt"

	"github.com/joho/godotenv"
)

// ParseEnvFile parses environment file content in .env format.
// It returns a map of key-value pairs.
//
// Quoting, comments and `export` prefixes follow godotenv. Variable
// expansion inside double-quoted values resolves only against keys defined
// earlier in the same content.
func ParseEnvFile(content []byte) (map[string]string, error) {
	values, err := godotenv.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("invalid .env content: %w", err)
	}
	return values, nil
}
