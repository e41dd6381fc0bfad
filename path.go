package normalizer

import (
	"fmt"
	"os"
)

// FromPath reads the entire file at path into memory and runs FromBytes over
// it. If settings is nil, DefaultSettings is used.
func FromPath(path string, settings *Settings) (*Matches, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return FromBytes(data, settings)
}
