package servers

import (
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// openapiSpec is the committed API contract, kept in sync with
// api/openapi.yml by the generate step.
//
//go:embed openapi.yml
var openapiSpec []byte

// GetSwagger parses and validates the embedded OpenAPI document. Served at
// /openapi.json so clients can fetch the contract from a running instance.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(openapiSpec)
	if err != nil {
		return nil, fmt.Errorf("failed to load OpenAPI document: %w", err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("OpenAPI document is invalid: %w", err)
	}

	return doc, nil
}
