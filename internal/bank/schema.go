package bank

import (
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// FileSchema is the JSON schema every bank file must satisfy, whether it
// was written as JSON or YAML.
var FileSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"version": map[string]any{"type": "string"},
		"topic":   map[string]any{"type": "string", "minLength": 1},
		"questions": map[string]any{
			"type":  "array",
			"items": questionSchema,
		},
	},
	"required":             []any{"questions"},
	"additionalProperties": false,
}

var questionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":            map[string]any{"type": "string"},
		"topic":         map[string]any{"type": "string"},
		"subtopic":      map[string]any{"type": "string", "enum": []any{"arithmetic", "conditionals", "loops", "lists", "conversion", "basic-algorithms"}},
		"difficulty":    map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
		"type":          map[string]any{"type": "string", "enum": []any{"fill", "multiple"}},
		"question":      map[string]any{"type": "string", "minLength": 1},
		"answer":        map[string]any{"type": "string"},
		"caseSensitive": map[string]any{"type": "boolean"},
		"options":       map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"correct":       map[string]any{"type": "integer", "minimum": 0},
	},
	"required":             []any{"subtopic", "difficulty", "type", "question"},
	"additionalProperties": false,
}

// schemaCache caches the compiled file schema.
var schemaCache sync.Map // map[string]*jsonschema.Schema

const fileSchemaURL = "schema://pyquiz-bank.json"

// compiledSchema returns the cached compiled schema or compiles and caches it.
func compiledSchema() (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(fileSchemaURL); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants a plain decoded JSON value, so round-trip the
	// Go literal through encoding/json.
	defBytes, err := json.Marshal(FileSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(fileSchemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(fileSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(fileSchemaURL, compiled)
	return compiled, nil
}

// validateDocument checks a decoded document against FileSchema and turns
// every leaf failure into an Issue.
func validateDocument(doc any) ([]Issue, error) {
	schema, err := compiledSchema()
	if err != nil {
		return nil, err
	}
	err = schema.Validate(doc)
	if err == nil {
		return nil, nil
	}
	verr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return nil, err
	}
	var issues []Issue
	collectIssues(verr, &issues)
	return issues, nil
}

func collectIssues(verr *jsonschema.ValidationError, out *[]Issue) {
	if len(verr.Causes) > 0 {
		for _, c := range verr.Causes {
			collectIssues(c, out)
		}
		return
	}
	*out = append(*out, issueAt(verr.InstanceLocation, verr.Error()))
}

// issueAt maps an instance location such as ["questions", "3", "answer"]
// to a record index and field.
func issueAt(loc []string, msg string) Issue {
	is := Issue{Index: -1, Message: msg}
	if len(loc) >= 2 && loc[0] == "questions" {
		if i, err := strconv.Atoi(loc[1]); err == nil {
			is.Index = i
		}
		if len(loc) >= 3 {
			is.Field = loc[2]
		}
		return is
	}
	if len(loc) >= 1 {
		is.Field = loc[0]
	}
	return is
}
