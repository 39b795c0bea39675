package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/digicarbon/digicarbon/internal/config"
)

// ErrUnsupportedOutput is returned for an unknown --output value.
var ErrUnsupportedOutput = errors.New("unsupported output format")

// resolveOutputFormat returns the --output value, or the configured default
// when the flag is empty.
func resolveOutputFormat(flagValue string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(flagValue))
	if format == "" {
		format = config.GetDefaultOutputFormat()
	}
	switch format {
	case config.OutputTable, config.OutputJSON:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %s (use table or json)", ErrUnsupportedOutput, format)
	}
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	return nil
}

// openInput opens path for reading, or returns stdin for "-".
func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return f, nil
}

// resolveRecordsPath returns flagValue, or the configured records file.
func resolveRecordsPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	return config.GetRecordsPath()
}
