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

package engine

import (
	"fmt"
	"time"

	"github.com/flintproj/flint/pkg/window"
)

// timeWindowRegistry binds the absolute time-window constructors served
// under window.FamilyTime.
func timeWindowRegistry() (*window.Registry, error) {
	reg := window.NewRegistry(string(window.FamilyTime))
	constructors := map[string]window.Constructor{
		window.OpPastAbsoluteTime:   pastAbsoluteTime,
		window.OpFutureAbsoluteTime: futureAbsoluteTime,
	}
	for op, c := range constructors {
		if err := reg.Register(op, c); err != nil {
			return nil, fmt.Errorf("assembling %s registry: %w", reg.Name(), err)
		}
	}
	return reg, nil
}

func pastAbsoluteTime(args ...interface{}) (interface{}, error) {
	span, err := singleDuration(window.OpPastAbsoluteTime, args)
	if err != nil {
		return nil, err
	}
	return NewTimeWindow(Past, span), nil
}

func futureAbsoluteTime(args ...interface{}) (interface{}, error) {
	span, err := singleDuration(window.OpFutureAbsoluteTime, args)
	if err != nil {
		return nil, err
	}
	return NewTimeWindow(Future, span), nil
}

// singleDuration checks the one-duration-string signature shared by the
// absolute time constructors.
func singleDuration(op string, args []interface{}) (time.Duration, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%s takes exactly 1 argument, got %d", op, len(args))
	}
	s, ok := args[0].(string)
	if !ok {
		return 0, fmt.Errorf("%s: duration must be a string, got %T", op, args[0])
	}
	return parseDuration(s)
}
