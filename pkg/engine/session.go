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

// Package engine is an in-process reference implementation of the execution
// context a window.Descriptor resolves against. A Session serves the
// constructor registries the way a live engine binding would given a
// connected runtime: the time-window family is built in, further families can
// be attached with WithRegistry.
package engine

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/flintproj/flint/pkg/shared/logging"
	"github.com/flintproj/flint/pkg/window"
)

// Session is an in-process execution context. Registries are assembled once
// in New; afterwards a Session is read-only and safe for concurrent use.
type Session struct {
	id         string
	log        *zap.SugaredLogger
	registries map[window.Family]*window.Registry
}

var _ window.Context = (*Session)(nil)

// New assembles a session with the time-window registry bound.
func New(opts ...Option) (*Session, error) {
	options := DefaultOptions()
	for _, o := range opts {
		if err := o(options); err != nil {
			return nil, err
		}
	}
	if options.logger == nil {
		options.logger = logging.NewLogger()
	}

	timeReg, err := timeWindowRegistry()
	if err != nil {
		return nil, err
	}
	registries := map[window.Family]*window.Registry{
		window.FamilyTime: timeReg,
	}
	for family, reg := range options.extra {
		registries[family] = reg
	}

	s := &Session{
		id:         uuid.New().String(),
		log:        options.logger,
		registries: registries,
	}
	s.log.Infow("session created", zap.String("id", s.id), zap.Strings("operations", timeReg.Operations()))
	return s, nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// Registry implements window.Context.
func (s *Session) Registry(family window.Family) (*window.Registry, error) {
	reg, ok := s.registries[family]
	if !ok {
		return nil, fmt.Errorf("session %s serves no registry for family %q", s.id, family)
	}
	return reg, nil
}
