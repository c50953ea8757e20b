// Package spec embeds the OpenAPI contract served and enforced by the
// Sentinel API.
package spec

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var raw []byte

var (
	once sync.Once
	doc  *openapi3.T
	err  error
)

// Load parses and validates the embedded OpenAPI document once.
func Load() (*openapi3.T, error) {
	once.Do(func() {
		loader := openapi3.NewLoader()
		doc, err = loader.LoadFromData(raw)
		if err != nil {
			err = fmt.Errorf("parse embedded openapi document: %w", err)
			return
		}
		if vErr := doc.Validate(loader.Context); vErr != nil {
			doc, err = nil, fmt.Errorf("validate embedded openapi document: %w", vErr)
		}
	})
	return doc, err
}

// Raw returns the embedded YAML bytes, for serving the contract.
func Raw() []byte {
	return raw
}
