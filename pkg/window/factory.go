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

// Operation names served by the FamilyTime registry of an engine context.
const (
	OpPastAbsoluteTime   = "pastAbsoluteTime"
	OpFutureAbsoluteTime = "futureAbsoluteTime"
)

// PastAbsoluteTime describes a window over a fixed amount of time into the
// past of each reference point, [t-duration, t].
//
// The duration is a time string with units, such as "1d", "100s" or "5 days".
// Valid units are d/day, h/hour, min/minute, s/sec/second, ms/milli/millisecond,
// µs/micro/microsecond and ns/nano/nanosecond, with their plural forms, and
// infinities are written Inf, +Inf, PlusInf, -Inf or MinusInf. The string is
// interpreted by the engine's duration parser when the descriptor is
// resolved; this package performs no parsing or validation of it.
func PastAbsoluteTime(duration string) Descriptor {
	return NewDescriptor(FamilyTime, OpPastAbsoluteTime, duration)
}

// FutureAbsoluteTime describes a window over a fixed amount of time into the
// future of each reference point, [t, t+duration].
//
// The duration string follows the same grammar as for PastAbsoluteTime and is
// likewise parsed only at resolution time.
func FutureAbsoluteTime(duration string) Descriptor {
	return NewDescriptor(FamilyTime, OpFutureAbsoluteTime, duration)
}
