// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"net/http"
	"time"
)

// Payload is the JSON body sent to the processor on every invocation.
// Field values are opaque strings; the client performs no validation.
type Payload struct {
	PDFURL string `json:"pdf_url" yaml:"pdf_url"`
	UserID string `json:"user_id" yaml:"user_id"`
}

// Outcome classifies a single smoke invocation.
type Outcome string

const (
	// OutcomeSuccess means the processor returned HTTP 200.
	OutcomeSuccess Outcome = "success"

	// OutcomeError means the request completed but the processor
	// returned a non-200 status.
	OutcomeError Outcome = "error"

	// OutcomeFailed means the request could not be completed
	// (timeout, connection refused, DNS, TLS).
	OutcomeFailed Outcome = "failed"
)

// InvocationResult is the transient outcome of one smoke run. It exists
// for rendering and the optional run log; nothing outlives the process.
type InvocationResult struct {
	Target     string
	Outcome    Outcome
	StatusCode int
	Headers    http.Header
	Body       []byte
	Latency    time.Duration

	// Err is the transport error when Outcome is OutcomeFailed.
	Err error
}
