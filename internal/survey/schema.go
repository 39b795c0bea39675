package survey

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// ErrSchemaViolation wraps answers that fail strict validation.
var ErrSchemaViolation = errors.New("answers do not match schema")

const schemaURL = "https://digicarbon.dev/schemas/answers.json"

//go:embed answers.schema.json
var answersSchema []byte

//nolint:gochecknoglobals // Compiled once on first use.
var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func schema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(answersSchema))
		if err != nil {
			compileErr = fmt.Errorf("parsing answers schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err = c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("loading answers schema: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// Validate checks one YAML or JSON answers document against the answers
// schema. Unlike Sanitize it rejects out-of-range values instead of
// clamping them. Category labels are not restricted, since the estimator
// accepts unknown labels.
func Validate(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading answers: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyInput
	}

	// Round-trip through YAML so YAML and JSON input validate alike.
	var generic any
	if err = yaml.Unmarshal(data, &generic); err != nil {
		return fmt.Errorf("parsing answers: %w", err)
	}
	asJSON, err := json.Marshal(generic)
	if err != nil {
		return fmt.Errorf("converting answers to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(asJSON))
	if err != nil {
		return fmt.Errorf("converting answers to JSON: %w", err)
	}

	sch, err := schema()
	if err != nil {
		return err
	}
	if err = sch.Validate(inst); err != nil {
		return fmt.Errorf("%w: %w", ErrSchemaViolation, err)
	}
	return nil
}
