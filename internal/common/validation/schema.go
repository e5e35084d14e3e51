// Package validation validates inbound request bodies against JSON schemas.
package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// RequestSchema wraps a compiled JSON schema for one endpoint.
type RequestSchema struct {
	schema *gojsonschema.Schema
}

// MustCompile compiles a schema document and panics on malformed schemas.
// Schemas are package-level constants, so a failure here is a programming
// error caught at startup.
func MustCompile(schemaJSON string) *RequestSchema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
	if err != nil {
		panic(fmt.Sprintf("invalid request schema: %v", err))
	}
	return &RequestSchema{schema: schema}
}

// ValidateBytes validates a raw JSON body. The returned error message lists
// every violated constraint.
func (s *RequestSchema) ValidateBytes(body []byte) error {
	result, err := s.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("request body must be valid JSON: %w", err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}

	return nil
}
