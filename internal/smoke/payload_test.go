package smoke

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPayload(t *testing.T) {
	p := DefaultPayload()
	assert.Equal(t, "https://www.w3.org/WAI/ER/tests/xhtml/testfiles/resources/pdf/dummy.pdf", p.PDFURL)
	assert.Equal(t, "test-user-12345", p.UserID)
}

func writePayloadFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "payload.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPayloadFile_FullOverride(t *testing.T) {
	path := writePayloadFile(t, "pdf_url: https://example.com/report.pdf\nuser_id: user-42\n")

	p, err := LoadPayloadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/report.pdf", p.PDFURL)
	assert.Equal(t, "user-42", p.UserID)
}

func TestLoadPayloadFile_PartialOverrideKeepsDefaults(t *testing.T) {
	path := writePayloadFile(t, "user_id: user-42\n")

	p, err := LoadPayloadFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultPDFURL, p.PDFURL)
	assert.Equal(t, "user-42", p.UserID)
}

func TestLoadPayloadFile_MissingFile(t *testing.T) {
	_, err := LoadPayloadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadPayloadFile_InvalidYAML(t *testing.T) {
	path := writePayloadFile(t, "pdf_url: [unclosed\n")

	_, err := LoadPayloadFile(path)
	assert.Error(t, err)
}
