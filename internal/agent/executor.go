// Package agent provides the executor abstraction that runs a named
// strategy against a task prompt and returns the agent's textual report.
package agent

import "context"

// RunContext carries per-invocation metadata.
type RunContext struct {
	// QueryID is a fresh unique id generated for every invocation.
	QueryID string
}

// Result is the outcome of one executor run. Success=false implies a
// non-nil Err; Content is only meaningful on success.
type Result struct {
	Success bool
	Err     error
	Content string
}

// Executor runs a task prompt and returns the agent's report.
// The call is synchronous; cancellation is the caller's business via ctx.
type Executor interface {
	Run(ctx context.Context, task string, rc RunContext) Result
}
