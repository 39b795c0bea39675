// Package survey reads respondent answers from files and turns them into
// records ready for storage.
//
// It is the form-collector side of the estimator: it decodes YAML or JSON
// answer files, checks their schema version, clamps numeric inputs to sane
// ranges with Sanitize, and stamps estimated answers with an ID and time.
package survey

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/digicarbon/digicarbon/internal/footprint"
)

// SupportedSchema is the range of schema_version values this build reads.
const SupportedSchema = ">= 1.0.0, < 2.0.0"

// Sentinel errors.
var (
	ErrEmptyInput         = errors.New("no survey answers in input")
	ErrUnsupportedSchema  = errors.New("unsupported schema version")
	ErrInvalidSchemaValue = errors.New("invalid schema version")
)

// document is one answers record as it appears on disk. schema_version is
// optional and sits beside the answer fields.
type document struct {
	SchemaVersion     string `json:"schema_version,omitempty" yaml:"schema_version,omitempty"`
	footprint.Answers `yaml:",inline"`
}

// CheckSchemaVersion returns nil for an empty version or one inside
// SupportedSchema.
func CheckSchemaVersion(version string) error {
	if version == "" {
		return nil
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidSchemaValue, version, err)
	}
	c, err := semver.NewConstraint(SupportedSchema)
	if err != nil {
		return fmt.Errorf("parsing schema constraint: %w", err)
	}
	if !c.Check(v) {
		return fmt.Errorf("%w: %s (supported %s)", ErrUnsupportedSchema, version, SupportedSchema)
	}
	return nil
}

// Decode reads a single answers document. JSON input is read as YAML,
// which accepts it unchanged.
func Decode(r io.Reader) (footprint.Answers, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return footprint.Answers{}, fmt.Errorf("reading answers: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return footprint.Answers{}, ErrEmptyInput
	}

	var doc document
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return footprint.Answers{}, fmt.Errorf("parsing answers: %w", err)
	}
	if err = CheckSchemaVersion(doc.SchemaVersion); err != nil {
		return footprint.Answers{}, err
	}
	return doc.Answers, nil
}

// LoadFile decodes the answers file at path.
func LoadFile(path string) (footprint.Answers, error) {
	f, err := os.Open(path)
	if err != nil {
		return footprint.Answers{}, fmt.Errorf("opening answers file: %w", err)
	}
	defer f.Close()

	a, err := Decode(f)
	if err != nil {
		return footprint.Answers{}, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// DecodeStream reads many answer documents. It accepts a multi-document
// YAML stream, a YAML or JSON list, or a sequence of JSON objects such as
// JSON lines. Every document's schema version is checked.
func DecodeStream(r io.Reader) ([]footprint.Answers, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading responses: %w", err)
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrEmptyInput
	}

	var docs []document
	if trimmed[0] == '{' || trimmed[0] == '[' {
		docs, err = decodeJSONStream(trimmed)
	} else {
		docs, err = decodeYAMLStream(trimmed)
	}
	if err != nil {
		return nil, err
	}

	out := make([]footprint.Answers, 0, len(docs))
	for i, d := range docs {
		if err = CheckSchemaVersion(d.SchemaVersion); err != nil {
			return nil, fmt.Errorf("response %d: %w", i+1, err)
		}
		out = append(out, d.Answers)
	}
	if len(out) == 0 {
		return nil, ErrEmptyInput
	}
	return out, nil
}

// LoadResponses decodes the batch file at path.
func LoadResponses(path string) ([]footprint.Answers, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening responses file: %w", err)
	}
	defer f.Close()

	all, err := DecodeStream(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return all, nil
}

func decodeJSONStream(data []byte) ([]document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	var docs []document
	for {
		var raw json.RawMessage
		err := dec.Decode(&raw)
		if errors.Is(err, io.EOF) {
			return docs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("parsing JSON response %d: %w", len(docs)+1, err)
		}

		if bytes.HasPrefix(bytes.TrimSpace(raw), []byte("[")) {
			var list []document
			if err = json.Unmarshal(raw, &list); err != nil {
				return nil, fmt.Errorf("parsing JSON response list: %w", err)
			}
			docs = append(docs, list...)
			continue
		}

		var d document
		if err = json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("parsing JSON response %d: %w", len(docs)+1, err)
		}
		docs = append(docs, d)
	}
}

func decodeYAMLStream(data []byte) ([]document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var docs []document
	for {
		var node yaml.Node
		err := dec.Decode(&node)
		if errors.Is(err, io.EOF) {
			return docs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("parsing YAML document %d: %w", len(docs)+1, err)
		}
		if len(node.Content) == 0 {
			continue
		}

		if node.Content[0].Kind == yaml.SequenceNode {
			var list []document
			if err = node.Decode(&list); err != nil {
				return nil, fmt.Errorf("parsing YAML response list: %w", err)
			}
			docs = append(docs, list...)
			continue
		}

		var d document
		if err = node.Decode(&d); err != nil {
			return nil, fmt.Errorf("parsing YAML document %d: %w", len(docs)+1, err)
		}
		docs = append(docs, d)
	}
}
