package character

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Registry holds all loaded character profiles, indexed by id.
type Registry struct {
	profiles map[string]*Profile
	order    []string
}

// LoadDir loads every *.yaml profile in dir. Files are processed in sorted
// name order so repeated runs see the same registry order.
func LoadDir(dir string) (*Registry, error) {
	pattern := filepath.Join(dir, "*.yaml")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to scan profile directory %s: %w", dir, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no character profiles found in %s", dir)
	}
	sort.Strings(files)

	r := &Registry{profiles: make(map[string]*Profile)}
	for _, file := range files {
		profile, err := loadProfile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to load profile %s: %w", file, err)
		}
		if _, exists := r.profiles[profile.ID]; exists {
			return nil, fmt.Errorf("duplicate character id '%s' in %s", profile.ID, file)
		}
		r.profiles[profile.ID] = profile
		r.order = append(r.order, profile.ID)
	}

	return r, nil
}

// loadProfile reads and validates a single profile file.
func loadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	return &profile, nil
}

// Get returns the profile for a character id.
func (r *Registry) Get(id string) (*Profile, error) {
	profile, ok := r.profiles[id]
	if !ok {
		return nil, fmt.Errorf("character '%s' is not registered", id)
	}
	return profile, nil
}

// IDs lists registered character ids in load order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}
