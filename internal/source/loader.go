package source

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads and parses one animation clip export.
// A missing file is reported as-is so callers can distinguish a content gap
// (skip-and-report) from a schema break (fatal); use errors.Is with
// fs.ErrNotExist.
func Load(path string) (*Animation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var anim Animation
	if err := json.Unmarshal(data, &anim); err != nil {
		return nil, fmt.Errorf("failed to parse animation JSON from '%s': %w", path, err)
	}

	return &anim, nil
}
