package spells

import (
	"bytes"
	_ "embed"
)

//go:embed seed/srd.yaml
var seedCatalog []byte

// NewSeedSource returns a source over the catalog compiled into the binary
func NewSeedSource() (Source, error) {
	return NewReaderSource(bytes.NewReader(seedCatalog))
}
