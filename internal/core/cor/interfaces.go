// Copyright 2024 Google, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cor (Chain of Responsibility) provides the fundamental building
// blocks for composing workflows out of small, testable commands. This file
// defines the core interfaces that govern the behavior of all components
// within the pattern. The catalog ingestion pipeline is built on these
// contracts.
package cor

import (
	"context"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// CtxIn and CtxOut are the keys used to pipe the primary data flow through
// a chain: after each command runs, the chain moves the value stored under
// CtxOut to CtxIn for the next command.
const (
	CtxIn  = "__IN__"
	CtxOut = "__OUT__"
)

// Context is the shared state object passed through a chain of commands.
// It acts as a property bag for a single workflow execution, carrying data
// and errors between commands.
type Context interface {
	// SetContext sets the standard Go context, used for cancellation and
	// OpenTelemetry trace propagation.
	SetContext(context context.Context)

	// GetContext retrieves the standard Go context.
	GetContext() context.Context

	// Add stores a key-value pair. It returns the Context to allow fluent
	// method chaining.
	Add(key string, value interface{}) Context

	// AddError records an error that occurred within a command, keyed by
	// the command's name.
	AddError(key string, err error)

	// GetErrors returns all errors collected during the workflow.
	GetErrors() map[string]error

	// Get retrieves a value by its key, or nil when absent.
	Get(key string) interface{}

	// Remove deletes a key-value pair.
	Remove(key string)

	// HasErrors reports whether any command has recorded an error.
	HasErrors() bool
}

// Executable is any object with a core execution step that reads its inputs
// from and writes its outputs to a shared Context.
type Executable interface {
	Execute(context Context)
}

// Command is an atomic, testable unit of work — the fundamental building
// block of a workflow.
type Command interface {
	Executable

	// GetName returns the unique name of the command, used for logging and
	// telemetry.
	GetName() string

	// GetInputParam returns the context key holding the command's primary
	// input.
	GetInputParam() string

	// GetOutputParam returns the context key the command stores its primary
	// output under.
	GetOutputParam() string

	// IsExecutable checks whether the command can run with the current
	// state of the Context.
	IsExecutable(context Context) bool

	// GetTracer returns the OpenTelemetry tracer for this command.
	GetTracer() trace.Tracer

	// GetMeter returns the OpenTelemetry meter for creating metrics.
	GetMeter() metric.Meter

	// GetSuccessCounter returns a metric counter for successful executions.
	GetSuccessCounter() metric.Int64Counter

	// GetErrorCounter returns a metric counter for failed executions.
	GetErrorCounter() metric.Int64Counter
}

// Chain is a sequence of commands. A Chain is itself a Command, which allows
// chains to be nested within other chains.
type Chain interface {
	Command

	// ContinueOnFailure configures whether the chain keeps executing after
	// one of its commands records an error.
	ContinueOnFailure(bool) Chain

	// AddCommand appends a command to the execution sequence.
	AddCommand(command Command) Chain
}
