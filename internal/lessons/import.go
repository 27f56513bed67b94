package lessons

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/cuentaconmigo/conmigo/internal/store"
)

// importSchema validates lesson files before anything touches the store.
const importSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "minItems": 1,
  "items": {
    "type": "object",
    "required": ["title", "category", "difficulty"],
    "properties": {
      "title": {"type": "string", "minLength": 1},
      "description": {"type": "string"},
      "category": {
        "enum": ["addition", "subtraction", "multiplication", "division", "mixed"]
      },
      "difficulty": {
        "enum": ["beginner", "intermediate", "advanced"]
      },
      "points": {"type": "integer", "minimum": 0},
      "position": {"type": "integer", "minimum": 0},
      "content": {"type": "object"}
    },
    "additionalProperties": false
  }
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiledImportSchema compiles the embedded schema once.
func compiledImportSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var parsed any
		if err := json.Unmarshal([]byte(importSchema), &parsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://lessons.json"
		if err := c.AddResource(schemaURL, parsed); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// ValidateImport checks raw JSON against the lesson import schema and
// returns the decoded lessons.
func ValidateImport(raw []byte) ([]store.LessonRecord, error) {
	sch, err := compiledImportSchema()
	if err != nil {
		return nil, err
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrInvalidLesson, err)
	}
	if err := sch.Validate(parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLesson, err)
	}

	var lessons []store.LessonRecord
	if err := json.Unmarshal(raw, &lessons); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLesson, err)
	}
	for i := range lessons {
		if lessons[i].Points == 0 {
			lessons[i].Points = 100
		}
	}
	return lessons, nil
}

// ImportFile loads, validates and stores every lesson in a JSON file.
// Nothing is written when validation fails. Returns the number of
// lessons created.
func (s *Service) ImportFile(ctx context.Context, path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read lesson file: %w", err)
	}

	lessons, err := ValidateImport(raw)
	if err != nil {
		return 0, err
	}

	created := 0
	for i := range lessons {
		if _, err := s.repo.Create(ctx, &lessons[i]); err != nil {
			return created, fmt.Errorf("import lesson %q: %w", lessons[i].Title, err)
		}
		created++
	}
	return created, nil
}
