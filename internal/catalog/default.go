package catalog

import (
	_ "embed"
	"fmt"
)

//go:embed data/catalog.yaml
var defaultData []byte

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	f, err := Parse(defaultData)
	if err != nil {
		return nil, fmt.Errorf("built-in catalog: %w", err)
	}
	return FromFile(f)
}

// DefaultData returns the raw YAML of the built-in catalog.
func DefaultData() []byte {
	return append([]byte(nil), defaultData...)
}
