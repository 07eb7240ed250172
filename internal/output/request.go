package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// RequestOptions controls build request output formatting.
type RequestOptions struct {
	// Format specifies output format: "yaml" or "json"
	Format OutputFormat
	// Writer is the output destination
	Writer io.Writer
}

// WriteRequest writes a build request document to the writer in the
// specified format. The document is the unstructured (map) form of the
// request so stdout rendering matches the on-disk request file.
func WriteRequest(doc map[string]any, opts RequestOptions) error {
	switch opts.Format {
	case FormatJSON:
		encoder := json.NewEncoder(opts.Writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(doc)
	case FormatYAML:
		return writeRequestYAML(doc, opts.Writer)
	case FormatTable:
		return fmt.Errorf("format %s not supported for request output", opts.Format)
	}
	return writeRequestYAML(doc, opts.Writer) // Default to YAML
}

func writeRequestYAML(doc map[string]any, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	err := encoder.Encode(doc)
	if closeErr := encoder.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}
