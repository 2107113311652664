// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package smoke exercises the credit report processor endpoint once per
// invocation and reports the outcome to a console writer.
package smoke

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/404kidwiz/credit-lift-nexus/pkg/types"
)

// DefaultLocalEndpoint is the target used when no URL is given on the
// command line, matching the functions-framework default port.
const DefaultLocalEndpoint = "http://localhost:8080"

// Target is the endpoint a smoke run is sent to.
type Target struct {
	URL string

	// Local is true when the target is the local default endpoint.
	// It gates the startup remediation hint on transport failures.
	Local bool
}

// ResolveTarget maps the optional positional argument to a Target.
// An empty argument selects localDefault.
func ResolveTarget(arg, localDefault string) Target {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		if localDefault == "" {
			localDefault = DefaultLocalEndpoint
		}
		return Target{URL: localDefault, Local: true}
	}
	return Target{URL: arg, Local: false}
}

// Run sends exactly one POST with the payload serialized as JSON and
// renders the outcome to w. Every failure mode is recovered here: transport
// errors and non-200 statuses are reported as output, never returned, so
// the caller always terminates normally.
func Run(client *http.Client, target Target, payload types.Payload, cfg types.SmokeConfig, w io.Writer) types.InvocationResult {
	res := types.InvocationResult{Target: target.URL}

	if target.Local {
		fmt.Fprintln(w, "Testing credit report processor locally...")
	} else {
		fmt.Fprintln(w, "Testing deployed credit report processor...")
	}
	fmt.Fprintf(w, "URL: %s\n", target.URL)

	body, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return reportFailure(w, target, res, fmt.Errorf("encoding payload: %w", err))
	}
	fmt.Fprintf(w, "Payload: %s\n", body)
	fmt.Fprintln(w, strings.Repeat("-", 50))

	req, err := http.NewRequest(http.MethodPost, target.URL, bytes.NewReader(body))
	if err != nil {
		return reportFailure(w, target, res, fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}

	start := time.Now()
	resp, err := client.Do(req)
	res.Latency = time.Since(start)
	if err != nil {
		return reportFailure(w, target, res, err)
	}
	defer resp.Body.Close()

	res.StatusCode = resp.StatusCode
	res.Headers = resp.Header

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return reportFailure(w, target, res, fmt.Errorf("reading response: %w", err))
	}
	res.Body = data

	fmt.Fprintf(w, "Status Code: %d\n", resp.StatusCode)
	fmt.Fprintln(w, "Response Headers:")
	writeHeaders(w, resp.Header)
	fmt.Fprintln(w, strings.Repeat("-", 50))

	if resp.StatusCode == http.StatusOK {
		res.Outcome = types.OutcomeSuccess
		fmt.Fprintln(w, "✅ SUCCESS!")
		fmt.Fprintf(w, "Response: %s\n", prettyJSON(data))
	} else {
		res.Outcome = types.OutcomeError
		fmt.Fprintln(w, "❌ ERROR!")
		fmt.Fprintf(w, "Response: %s\n", data)
	}
	return res
}

// reportFailure renders a transport failure and, for the local default
// target only, a hint on starting the processor.
func reportFailure(w io.Writer, target Target, res types.InvocationResult, err error) types.InvocationResult {
	res.Outcome = types.OutcomeFailed
	res.Err = err

	fmt.Fprintf(w, "❌ Request failed: %v\n", err)
	if target.Local {
		fmt.Fprintln(w, "\nMake sure the function is running locally with:")
		fmt.Fprintln(w, "functions-framework --target process_credit_report --debug")
	}
	return res
}

// writeHeaders prints response headers sorted by name.
func writeHeaders(w io.Writer, h http.Header) {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  %s: %s\n", k, strings.Join(h[k], ", "))
	}
}

// prettyJSON re-indents a JSON body for display. A body that is not valid
// JSON is returned as-is rather than aborting the run.
func prettyJSON(data []byte) []byte {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return data
	}
	return buf.Bytes()
}

// WriteBanner prints the completion banner shown after every invocation,
// regardless of outcome.
func WriteBanner(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintln(w, "Test completed!")
	fmt.Fprintln(w, strings.Repeat("=", 50))
}
