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

	"go.uber.org/zap"

	"github.com/flintproj/flint/pkg/window"
)

type Options struct {
	// logger used by the session
	logger *zap.SugaredLogger
	// extra registries served in addition to the built-in time-window one
	extra map[window.Family]*window.Registry
}

func DefaultOptions() *Options {
	return &Options{
		extra: make(map[window.Family]*window.Registry),
	}
}

type Option func(options *Options) error

// WithLogger sets the session logger.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(o *Options) error {
		if logger == nil {
			return fmt.Errorf("logger must not be nil")
		}
		o.logger = logger
		return nil
	}
}

// WithRegistry serves an additional constructor registry under the given
// family. The time-window family is built in and cannot be replaced.
func WithRegistry(family window.Family, reg *window.Registry) Option {
	return func(o *Options) error {
		if reg == nil {
			return fmt.Errorf("registry for family %q must not be nil", family)
		}
		if family == window.FamilyTime {
			return fmt.Errorf("registry for family %q is built in", family)
		}
		if _, ok := o.extra[family]; ok {
			return fmt.Errorf("registry for family %q already configured", family)
		}
		o.extra[family] = reg
		return nil
	}
}
