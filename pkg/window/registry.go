/*
Copyright 2022 The Flintproj Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package window

import (
	"fmt"
	"sort"
)

// Constructor builds a realized window from the arguments captured in a
// descriptor. The returned object is owned by the caller and opaque to this
// package. A constructor does its own argument checking; its errors are
// surfaced to the resolving caller unchanged.
type Constructor func(args ...interface{}) (interface{}, error)

// Registry is an explicit mapping from operation names to window
// constructors for one family. It is assembled once (typically while an
// execution context is being built) and read-only afterwards; Register is not
// safe for concurrent use, Lookup is.
type Registry struct {
	name string
	ops  map[string]Constructor
}

// NewRegistry returns an empty registry. The name only appears in errors and
// diagnostics.
func NewRegistry(name string) *Registry {
	return &Registry{
		name: name,
		ops:  make(map[string]Constructor),
	}
}

// Name returns the registry's diagnostic name.
func (r *Registry) Name() string {
	return r.name
}

// Register binds an operation name to a constructor. Bindings are validated
// eagerly so that a misassembled registry fails while the context is being
// built, not at the first resolution.
func (r *Registry) Register(operation string, c Constructor) error {
	if operation == "" {
		return fmt.Errorf("registry %s: operation name must not be empty", r.name)
	}
	if c == nil {
		return fmt.Errorf("registry %s: constructor for %q must not be nil", r.name, operation)
	}
	if _, ok := r.ops[operation]; ok {
		return fmt.Errorf("registry %s: operation %q already registered", r.name, operation)
	}
	r.ops[operation] = c
	return nil
}

// Lookup returns the constructor registered under the given operation name,
// or an *UnknownOperationError identifying the missing operation.
func (r *Registry) Lookup(operation string) (Constructor, error) {
	c, ok := r.ops[operation]
	if !ok {
		return nil, &UnknownOperationError{Registry: r.name, Operation: operation}
	}
	return c, nil
}

// Operations returns the registered operation names in sorted order.
func (r *Registry) Operations() []string {
	out := make([]string, 0, len(r.ops))
	for op := range r.ops {
		out = append(out, op)
	}
	sort.Strings(out)
	return out
}
