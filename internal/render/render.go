package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/peoplereg/people/internal/people"
	"go.yaml.in/yaml/v3"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Formats lists the accepted values for Options.Format.
var Formats = []string{FormatTable, FormatJSON, FormatYAML}

// Options selects the output format and, for tables, the header language.
type Options struct {
	Format string
	Lang   string
}

// Write renders records to w according to opts. An empty format means table.
func Write(w io.Writer, records []people.Person, opts Options) error {
	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = FormatTable
	}

	switch format {
	case FormatTable:
		return Table(w, records, opts.Lang)
	case FormatJSON:
		return JSON(w, records)
	case FormatYAML:
		return YAML(w, records)
	default:
		return fmt.Errorf("unknown output format %q (allowed: %s)", opts.Format, strings.Join(Formats, ", "))
	}
}

// JSON writes records in the registry file encoding.
func JSON(w io.Writer, records []people.Person) error {
	data, err := people.Encode(records)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// YAML writes records as a YAML sequence.
func YAML(w io.Writer, records []people.Person) error {
	if records == nil {
		records = []people.Person{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}
