// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package smoke

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/404kidwiz/credit-lift-nexus/pkg/types"
)

// Fixed payload values. The dummy PDF is a stable public sample that the
// processor can always fetch; the user ID is an opaque placeholder.
const (
	DefaultPDFURL = "https://www.w3.org/WAI/ER/tests/xhtml/testfiles/resources/pdf/dummy.pdf"
	DefaultUserID = "test-user-12345"
)

// DefaultPayload returns the fixed payload sent when no override is given.
func DefaultPayload() types.Payload {
	return types.Payload{
		PDFURL: DefaultPDFURL,
		UserID: DefaultUserID,
	}
}

// LoadPayloadFile reads a YAML override file and merges it over the default
// payload. Keys absent from the file keep their default values.
func LoadPayloadFile(path string) (types.Payload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Payload{}, fmt.Errorf("reading payload file: %w", err)
	}

	var override types.Payload
	if err := yaml.Unmarshal(data, &override); err != nil {
		return types.Payload{}, fmt.Errorf("parsing payload file %s: %w", path, err)
	}

	p := DefaultPayload()
	if override.PDFURL != "" {
		p.PDFURL = override.PDFURL
	}
	if override.UserID != "" {
		p.UserID = override.UserID
	}
	return p, nil
}
