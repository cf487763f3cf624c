// Package schemas provides JSON Schema validation for synonym maps, configuration files and exported results.
package schemas

import (
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// ValidationError lists every schema violation found in a document.
type ValidationError struct {
	Schema string
	Errors []FieldError
}

// FieldError is a single violation. Field is a dotted path, or "(root)".
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s validation failed:", ve.Schema)
	for i, err := range ve.Errors {
		fmt.Fprintf(&sb, "\n  %d. %s: %s", i+1, err.Field, err.Message)
	}
	return sb.String()
}

// Fields returns the paths of the violating fields in order.
func (ve *ValidationError) Fields() []string {
	fields := make([]string, len(ve.Errors))
	for i, e := range ve.Errors {
		fields[i] = e.Field
	}
	return fields
}

// CompileError reports a schema that could not be parsed.
type CompileError struct {
	Schema string
	Cause  error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("invalid schema %s: %v", e.Schema, e.Cause)
}

func (e *CompileError) Unwrap() error {
	return e.Cause
}

// Validator is a compiled schema that can be applied to many documents.
type Validator struct {
	name   string
	schema *gojsonschema.Schema
}

// Compile parses schema content once. name is only used in error messages.
func Compile(name, content string) (*Validator, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(content))
	if err != nil {
		return nil, &CompileError{Schema: name, Cause: err}
	}
	return &Validator{name: name, schema: schema}, nil
}

// ValidateBytes validates a JSON document.
func (v *Validator) ValidateBytes(data []byte) error {
	return v.validate(gojsonschema.NewBytesLoader(data))
}

// ValidateValue validates an already decoded Go value, such as a map read from YAML
// or a struct about to be written.
func (v *Validator) ValidateValue(doc any) error {
	return v.validate(gojsonschema.NewGoLoader(doc))
}

func (v *Validator) validate(loader gojsonschema.JSONLoader) error {
	result, err := v.schema.Validate(loader)
	if err != nil {
		return fmt.Errorf("failed to load document for %s: %w", v.name, err)
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Schema: v.name,
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}

// Lazy compiles an embedded schema on first use and shares it between goroutines.
type Lazy struct {
	name    string
	content string

	once      sync.Once
	validator *Validator
	err       error
}

// NewLazy returns a Lazy for the given schema content.
func NewLazy(name, content string) *Lazy {
	return &Lazy{name: name, content: content}
}

// Validator returns the compiled schema, compiling it on the first call.
func (l *Lazy) Validator() (*Validator, error) {
	l.once.Do(func() {
		l.validator, l.err = Compile(l.name, l.content)
	})
	return l.validator, l.err
}

// ValidateValue compiles the schema if needed and validates doc against it.
func (l *Lazy) ValidateValue(doc any) error {
	v, err := l.Validator()
	if err != nil {
		return err
	}
	return v.ValidateValue(doc)
}
