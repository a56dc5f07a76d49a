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
)

// Direction says which side of the reference time a window spans.
type Direction int

const (
	Past Direction = iota
	Future
)

func (d Direction) String() string {
	switch d {
	case Past:
		return "Past"
	case Future:
		return "Future"
	default:
		return "Unknown"
	}
}

// Interval is the closed time range a window covers at some reference time.
type Interval struct {
	Start time.Time
	End   time.Time
}

// TimeWindow is a realized absolute-time window: a fixed span into the past
// or future of whatever reference time it is applied to. Values are immutable
// once built.
type TimeWindow struct {
	direction Direction
	span      time.Duration
}

// NewTimeWindow returns a window spanning the given duration in the given
// direction.
func NewTimeWindow(direction Direction, span time.Duration) *TimeWindow {
	return &TimeWindow{
		direction: direction,
		span:      span,
	}
}

// Direction returns which side of the reference time the window spans.
func (w *TimeWindow) Direction() Direction {
	return w.direction
}

// Span returns the temporal length of the window.
func (w *TimeWindow) Span() time.Duration {
	return w.span
}

// Of returns the interval the window covers at the given reference time:
// [t-span, t] for past windows, [t, t+span] for future ones.
func (w *TimeWindow) Of(t time.Time) Interval {
	if w.direction == Future {
		return Interval{Start: t, End: t.Add(w.span)}
	}
	return Interval{Start: t.Add(-w.span), End: t}
}

func (w *TimeWindow) String() string {
	return fmt.Sprintf("TimeWindow{%s, %s}", w.direction, w.span)
}
