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

// Package window implements deferred window descriptors. A descriptor captures
// the window a user asked for (an operation name plus its constructor
// arguments) at the moment of the call, before any execution context exists.
// The actual window object is built later, by Resolve, once the caller can
// supply a Context serving the constructor registries of a running engine.
//
// The split matters because the APIs that consume windows (addWindows,
// summarizeWindows and friends) are expressed long before the engine session
// they run on is connected. A descriptor is a plain immutable value: it can be
// built anywhere, logged, held, and resolved any number of times against any
// context. All validation is deferred with it. Constructing a descriptor never
// fails; a misspelled operation or a malformed duration string surfaces when
// the descriptor is resolved, as the registry's or the constructor's own
// error.
//
// Registries are explicit name-to-constructor tables rather than dynamic
// attribute dispatch, so an unknown operation is reported as a typed
// *UnknownOperationError naming the registry and the operation instead of a
// generic lookup failure.
package window
