// Package output provides utilities for serializing tabular views as JSON,
// CSV, or YAML.
package output

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/iwvelando/eurolens/pkg/constants"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for an output format other than json, csv
// or yaml.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Format is an export encoding.
type Format string

const (
	FormatJSON Format = constants.OutputFormatJSON
	FormatCSV  Format = constants.OutputFormatCSV
	FormatYAML Format = constants.OutputFormatYAML
)

// ParseFormat checks if the output format is one of the supported formats.
// An empty value selects JSON.
func ParseFormat(value string) (Format, error) {
	switch Format(value) {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatCSV, FormatYAML:
		return Format(value), nil
	}
	return "", fmt.Errorf("%w: expected %s, %s or %s, got %s",
		ErrUnsupportedFormat, FormatJSON, FormatCSV, FormatYAML, value)
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatYAML:
		return "application/yaml; charset=utf-8"
	default:
		return "application/json"
	}
}

// Table is a named dataset with a flat tabular rendering (Header, Rows) for
// CSV and a structured rendering (Records) for JSON and YAML.
type Table struct {
	Name    string
	Header  []string
	Rows    [][]string
	Records interface{}
}

// Encode writes the table to w in the given format.
func Encode(w io.Writer, f Format, table Table) error {
	switch f {
	case FormatCSV:
		return writeCSV(w, table)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(table.Records); err != nil {
			return fmt.Errorf("failed to encode %s as yaml: %w", table.Name, err)
		}
		return enc.Close()
	case FormatJSON:
		if err := json.NewEncoder(w).Encode(table.Records); err != nil {
			return fmt.Errorf("failed to encode %s as json: %w", table.Name, err)
		}
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
}

func writeCSV(w io.Writer, table Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(table.Header); err != nil {
		return fmt.Errorf("failed to write csv header for %s: %w", table.Name, err)
	}
	if err := cw.WriteAll(table.Rows); err != nil {
		return fmt.Errorf("failed to write csv rows for %s: %w", table.Name, err)
	}
	return nil
}
