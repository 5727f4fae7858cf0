package repository

import (
	"encoding/json"
	"os"

	"github.com/enoch85/ge-spot-sub001/domain"
	"github.com/enoch85/ge-spot-sub001/domain/repository"
)

// JSONLookupRepository loads area and source timezone lookup tables from a
// JSON file
type JSONLookupRepository struct {
	path string
}

// NewJSONLookupRepository creates a lookup repository backed by the given
// file path
func NewJSONLookupRepository(path string) repository.LookupRepository {
	return &JSONLookupRepository{path: path}
}

// Exists checks whether the lookup file is present
func (r *JSONLookupRepository) Exists() (bool, error) {
	if r.path == "" {
		return false, nil
	}

	_, err := os.Stat(r.path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, domain.ErrFileOperation("stat", r.path, err)
}

// Load reads the lookup tables. A missing or unconfigured file yields nil
// tables, which leaves the resolver on its built-in mappings.
func (r *JSONLookupRepository) Load() (*repository.LookupTables, error) {
	exists, err := r.Exists()
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, domain.ErrFileOperation("read", r.path, err)
	}

	var tables repository.LookupTables
	if err := json.Unmarshal(data, &tables); err != nil {
		return nil, domain.ErrFileOperation("parse", r.path, err)
	}

	return &tables, nil
}

// Path returns the backing file path
func (r *JSONLookupRepository) Path() string {
	return r.path
}
