package people

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	log "github.com/sirupsen/logrus"
)

const (
	filePerm   os.FileMode = 0644
	jsonIndent             = "    "
)

// Load reads a registry file, validates it against the registry schema, and
// decodes its records in file order. A missing file yields an error wrapping
// fs.ErrNotExist; a schema mismatch yields a *ValidationError.
func Load(path string) ([]Person, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading registry: %w", err)
	}

	records, err := Decode(data)
	if err != nil {
		if ve, ok := AsValidationError(err); ok {
			ve.Path = path
			return nil, ve
		}
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	log.WithFields(log.Fields{"path": path, "records": len(records)}).Debug("loaded registry")
	return records, nil
}

// LoadOrEmpty behaves like Load but returns an empty registry when the file
// does not exist.
func LoadOrEmpty(path string) ([]Person, error) {
	records, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.WithField("path", path).Debug("registry not found, starting empty")
		return []Person{}, nil
	}
	return records, err
}

// Decode validates data against the registry schema and decodes it.
func Decode(data []byte) ([]Person, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, &ValidationError{Issues: result.Issues}
	}

	var records []Person
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding records: %w", err)
	}
	if records == nil {
		records = []Person{}
	}
	return records, nil
}

// Encode renders records as a JSON array indented with four spaces. Non-ASCII
// text and HTML characters are written as-is.
func Encode(records []Person) ([]byte, error) {
	if records == nil {
		records = []Person{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", jsonIndent)
	if err := enc.Encode(records); err != nil {
		return nil, fmt.Errorf("encoding records: %w", err)
	}
	return buf.Bytes(), nil
}

// Save overwrites path with the encoded registry.
func Save(path string, records []Person) error {
	data, err := Encode(records)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("writing registry %s: %w", path, err)
	}

	log.WithFields(log.Fields{"path": path, "records": len(records)}).Debug("saved registry")
	return nil
}
