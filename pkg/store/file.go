package store

import (
	"errors"
	"io"
	"os"

	// Packages
	weather "github.com/mutablelogic/go-mcp-weather"
	yaml "gopkg.in/yaml.v3"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type document struct {
	Cities []Record `yaml:"cities"`
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Read returns a store with the cities listed in a YAML document
func Read(r io.Reader) (*Store, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, weather.ErrBadParameter.With("empty document")
		}
		return nil, weather.ErrBadParameter.Withf("decode: %v", err)
	}
	return New(doc.Cities...)
}

// ReadFile returns a store with the cities listed in a YAML file. Returns
// ErrNotFound when the file does not exist.
func ReadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, weather.ErrNotFound.Withf("%s", path)
		}
		return nil, weather.ErrInternalServerError.Withf("open: %v", err)
	}
	defer f.Close()
	return Read(f)
}
