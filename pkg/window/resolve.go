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

// Context is the execution handle a descriptor is realized against. It is
// supplied by the caller, never constructed here, and opaque to this package
// beyond serving one constructor registry per family.
type Context interface {
	// Registry returns the constructor registry for the given family, or an
	// error if the context serves no such family.
	Registry(family Family) (*Registry, error)
}

// Resolve realizes a descriptor against the given execution context: the
// registry for the descriptor's family is obtained from the context, the
// operation is looked up, and the constructor is invoked with the captured
// arguments in order. The constructor's result and error are returned exactly
// as produced; Resolve adds no wrapping and no retry, timeout or cancellation
// semantics of its own.
func Resolve(ctx Context, d Descriptor) (interface{}, error) {
	reg, err := ctx.Registry(d.Family())
	if err != nil {
		return nil, err
	}
	c, err := reg.Lookup(d.Operation())
	if err != nil {
		return nil, err
	}
	return c(d.Args()...)
}
