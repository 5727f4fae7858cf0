package repository

// LookupTables holds caller-supplied identifier lookup tables that extend
// the built-in area and source mappings of the timezone resolver.
type LookupTables struct {
	// Areas maps price-area codes to IANA timezone names
	Areas map[string]string `json:"areas,omitempty"`

	// Sources maps vendor source names to IANA timezone names
	Sources map[string]string `json:"sources,omitempty"`
}

// LookupRepository loads lookup tables from an external store
type LookupRepository interface {
	// Exists checks whether a lookup table file is present
	Exists() (bool, error)

	// Load reads the lookup tables; a missing file yields nil, not an error
	Load() (*LookupTables, error)

	// Path returns the backing file path
	Path() string
}
