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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeWindow_Of(t *testing.T) {
	loc, _ := time.LoadLocation("UTC")
	baseTime := time.Unix(1651129201, 0).In(loc)

	tests := []struct {
		name      string
		direction Direction
		span      time.Duration
		want      Interval
	}{
		{
			name:      "past_day",
			direction: Past,
			span:      24 * time.Hour,
			want: Interval{
				Start: baseTime.Add(-24 * time.Hour),
				End:   baseTime,
			},
		},
		{
			name:      "future_day",
			direction: Future,
			span:      24 * time.Hour,
			want: Interval{
				Start: baseTime,
				End:   baseTime.Add(24 * time.Hour),
			},
		},
		{
			name:      "past_zero_span",
			direction: Past,
			span:      0,
			want: Interval{
				Start: baseTime,
				End:   baseTime,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewTimeWindow(tt.direction, tt.span)
			assert.Equal(t, tt.want, w.Of(baseTime))
			assert.Equal(t, tt.direction, w.Direction())
			assert.Equal(t, tt.span, w.Span())
		})
	}
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "Past", Past.String())
	assert.Equal(t, "Future", Future.String())
	assert.Equal(t, "Unknown", Direction(42).String())
}

func TestTimeWindow_String(t *testing.T) {
	assert.Equal(t, "TimeWindow{Past, 24h0m0s}", NewTimeWindow(Past, 24*time.Hour).String())
}
