package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// catalogFile is the JSON on-disk shape.
type catalogFile struct {
	Records []Record `json:"stars"`
}

// LoadFile reads a prepared JSON catalog from disk.
func LoadFile(path string) (Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read decodes a JSON catalog.
func Read(r io.Reader) (Catalog, error) {
	var cf catalogFile
	if err := json.NewDecoder(r).Decode(&cf); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	return Catalog{Records: cf.Records}, nil
}

// Write encodes the catalog as indented JSON.
func (c Catalog) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(catalogFile{Records: c.Records}); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return nil
}

// WriteFile writes the catalog to the named file.
func (c Catalog) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create catalog file: %w", err)
	}
	defer f.Close()
	return c.Write(f)
}
