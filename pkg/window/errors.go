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
)

// UnknownOperationError reports a descriptor whose operation name is not
// registered on the registry it resolved against. It is the only error this
// package produces on the resolution path; everything else comes from the
// context or the constructor and passes through unchanged.
type UnknownOperationError struct {
	// Registry is the diagnostic name of the registry that was consulted.
	Registry string
	// Operation is the operation name the descriptor asked for.
	Operation string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("registry %s has no operation %q", e.Registry, e.Operation)
}
