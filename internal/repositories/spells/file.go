package spells

import (
	"context"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/spellbook-api/internal/entities/dnd5e"
	"github.com/KirkDiggler/spellbook-api/internal/errors"
)

// document is the on-disk catalog layout. JSON documents decode too, since
// YAML is a superset of JSON.
type document struct {
	Spells []*dnd5e.Spell `yaml:"spells"`
}

type fileSource struct {
	path string
}

// NewFileSource reads the catalog from a YAML or JSON file on every call
func NewFileSource(path string) (Source, error) {
	if path == "" {
		return nil, errors.InvalidArgument("catalog file path is required")
	}
	return &fileSource{path: path}, nil
}

// ListSpells implements Source
func (s *fileSource) ListSpells(_ context.Context) ([]*dnd5e.Spell, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("catalog file %s does not exist", s.path)
		}
		return nil, errors.Wrapf(err, "failed to open catalog file %s", s.path)
	}
	defer func() { _ = f.Close() }()

	spells, err := decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog file %s", s.path)
	}
	return spells, nil
}

type readerSource struct {
	spells []*dnd5e.Spell
}

// NewReaderSource decodes a catalog document once, up front
func NewReaderSource(r io.Reader) (Source, error) {
	spells, err := decode(r)
	if err != nil {
		return nil, err
	}
	return &readerSource{spells: spells}, nil
}

// ListSpells implements Source
func (s *readerSource) ListSpells(_ context.Context) ([]*dnd5e.Spell, error) {
	out := make([]*dnd5e.Spell, len(s.spells))
	copy(out, s.spells)
	return out, nil
}

func decode(r io.Reader) ([]*dnd5e.Spell, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, errors.InvalidArgument("catalog document is empty")
		}
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode catalog document")
	}
	return doc.Spells, nil
}
