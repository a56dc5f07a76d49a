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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPastAbsoluteTime(t *testing.T) {
	tests := []struct {
		name     string
		duration string
	}{
		{name: "days", duration: "1d"},
		{name: "seconds", duration: "100s"},
		{name: "worded", duration: "5 days"},
		{name: "infinity", duration: "+Inf"},
		{name: "garbage_is_not_validated", duration: "not a duration at all"},
		{name: "empty_is_not_validated", duration: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := PastAbsoluteTime(tt.duration)
			assert.Equal(t, FamilyTime, d.Family())
			assert.Equal(t, OpPastAbsoluteTime, d.Operation())
			assert.Equal(t, []interface{}{tt.duration}, d.Args())
		})
	}
}

func TestFutureAbsoluteTime(t *testing.T) {
	d := FutureAbsoluteTime("1d")
	assert.Equal(t, FamilyTime, d.Family())
	assert.Equal(t, OpFutureAbsoluteTime, d.Operation())
	assert.Equal(t, []interface{}{"1d"}, d.Args())
}

func TestDescriptor_String(t *testing.T) {
	tests := []struct {
		name       string
		descriptor Descriptor
		want       string
	}{
		{
			name:       "past_one_day",
			descriptor: PastAbsoluteTime("1d"),
			want:       "pastAbsoluteTime(1d)",
		},
		{
			name:       "future_worded",
			descriptor: FutureAbsoluteTime("5 days"),
			want:       "futureAbsoluteTime(5 days)",
		},
		{
			name:       "multiple_args",
			descriptor: NewDescriptor(FamilyTime, "betweenTime", "1d", "2d"),
			want:       "betweenTime(1d, 2d)",
		},
		{
			name:       "no_args",
			descriptor: NewDescriptor(FamilyTime, "unbounded"),
			want:       "unbounded()",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.descriptor.String())
		})
	}
}

func TestDescriptor_ArgsIsACopy(t *testing.T) {
	d := NewDescriptor(FamilyTime, "pastAbsoluteTime", "1d", "2d")

	args := d.Args()
	args[0] = "tampered"

	assert.Equal(t, []interface{}{"1d", "2d"}, d.Args())
}

func TestNewDescriptor_CopiesArguments(t *testing.T) {
	passed := []interface{}{"1d"}
	d := NewDescriptor(FamilyTime, "pastAbsoluteTime", passed...)

	passed[0] = "tampered"

	assert.Equal(t, []interface{}{"1d"}, d.Args())
}

func TestNewDescriptor_NoArgs(t *testing.T) {
	d := NewDescriptor(FamilyTime, "unbounded")
	assert.Nil(t, d.Args())
}
