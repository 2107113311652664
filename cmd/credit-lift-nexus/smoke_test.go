// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/404kidwiz/credit-lift-nexus/pkg/types"
)

// executeCommand runs the CLI with args, capturing combined output.
// Flag and viper state are reset afterwards so tests stay independent.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		for _, name := range []string{"timeout", "pdf-url", "user-id", "payload-file", "record"} {
			f := smokeCmd.Flags().Lookup(name)
			f.Value.Set(f.DefValue)
			f.Changed = false
		}
		viper.Reset()
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

// okServer returns a stub processor that records the last request body.
func okServer(t *testing.T, gotBody *[]byte) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := new(bytes.Buffer)
		buf.ReadFrom(r.Body)
		*gotBody = buf.Bytes()
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"result": "ok"}`))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestSmokeCommand_FlagOverridesReachTheWire(t *testing.T) {
	var gotBody []byte
	ts := okServer(t, &gotBody)

	out, err := executeCommand(t, "smoke", ts.URL,
		"--pdf-url", "https://example.com/statement.pdf",
		"--user-id", "flag-user-99")
	require.NoError(t, err)

	var p types.Payload
	require.NoError(t, json.Unmarshal(gotBody, &p))
	assert.Equal(t, "https://example.com/statement.pdf", p.PDFURL)
	assert.Equal(t, "flag-user-99", p.UserID)
	assert.Contains(t, out, "✅ SUCCESS!")
	assert.Contains(t, out, "Test completed!")
}

func TestSmokeCommand_PayloadFileReachesTheWire(t *testing.T) {
	var gotBody []byte
	ts := okServer(t, &gotBody)

	payloadPath := filepath.Join(t.TempDir(), "payload.yaml")
	require.NoError(t, os.WriteFile(payloadPath,
		[]byte("pdf_url: https://example.com/report-a.pdf\nuser_id: file-user\n"), 0o644))

	out, err := executeCommand(t, "smoke", ts.URL,
		"--payload-file", payloadPath,
		"--user-id", "flag-wins")
	require.NoError(t, err)

	var p types.Payload
	require.NoError(t, json.Unmarshal(gotBody, &p))
	// File overrides the default; the explicit flag overrides the file.
	assert.Equal(t, "https://example.com/report-a.pdf", p.PDFURL)
	assert.Equal(t, "flag-wins", p.UserID)
	assert.Contains(t, out, "Test completed!")
}

func TestSmokeCommand_DefaultPayloadOnTheWire(t *testing.T) {
	var gotBody []byte
	ts := okServer(t, &gotBody)

	_, err := executeCommand(t, "smoke", ts.URL)
	require.NoError(t, err)

	var p types.Payload
	require.NoError(t, json.Unmarshal(gotBody, &p))
	assert.Equal(t, "https://www.w3.org/WAI/ER/tests/xhtml/testfiles/resources/pdf/dummy.pdf", p.PDFURL)
	assert.Equal(t, "test-user-12345", p.UserID)
}

func TestSmokeCommand_RunLogFailureDoesNotAbortRun(t *testing.T) {
	var gotBody []byte
	ts := okServer(t, &gotBody)

	// A regular file where the run log expects a parent directory makes
	// the store unopenable.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	viper.Set("history.path", filepath.Join(blocker, "history.db"))

	out, err := executeCommand(t, "smoke", ts.URL, "--record")

	require.NoError(t, err)
	assert.Contains(t, out, "✅ SUCCESS!")
	assert.Contains(t, out, "warning: run log:")
	assert.Contains(t, out, "Test completed!")
}
