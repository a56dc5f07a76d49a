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
	"strings"
)

// Family identifies the registry namespace a descriptor resolves against.
// A Context serves one registry per family, so adding a new family of window
// constructors needs no change to the resolution path.
type Family string

const (
	// FamilyTime is the namespace serving the absolute time-window constructors.
	FamilyTime Family = "windows"
)

// Descriptor is an immutable value capturing a requested window operation and
// its constructor arguments. It holds no reference to any execution context.
type Descriptor struct {
	family    Family
	operation string
	args      []interface{}
}

// NewDescriptor returns a descriptor for the given operation. The arguments
// are forwarded to the constructor verbatim at resolution time; nothing is
// validated here, so construction always succeeds. An operation unknown to
// the target registry is reported when the descriptor is resolved.
func NewDescriptor(family Family, operation string, args ...interface{}) Descriptor {
	d := Descriptor{family: family, operation: operation}
	if len(args) > 0 {
		d.args = make([]interface{}, len(args))
		copy(d.args, args)
	}
	return d
}

// Family returns the registry namespace the descriptor resolves against.
func (d Descriptor) Family() Family {
	return d.family
}

// Operation returns the name of the requested window constructor.
func (d Descriptor) Operation() string {
	return d.operation
}

// Args returns the constructor arguments in call order. The slice is a copy;
// the descriptor never changes after construction.
func (d Descriptor) Args() []interface{} {
	if d.args == nil {
		return nil
	}
	out := make([]interface{}, len(d.args))
	copy(out, d.args)
	return out
}

// String renders the descriptor as "<operation>(<arg1>, <arg2>, ...)" for
// diagnostic display.
func (d Descriptor) String() string {
	parts := make([]string, len(d.args))
	for i, arg := range d.args {
		parts[i] = fmt.Sprint(arg)
	}
	return fmt.Sprintf("%s(%s)", d.operation, strings.Join(parts, ", "))
}
