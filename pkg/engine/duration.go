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
	"math"
	"regexp"
	"strings"
	"time"

	str2duration "github.com/xhit/go-str2duration/v2"
)

// Window spans arrive as strings like "1d", "100s" or "5 days": a length, a
// unit in symbol or word form, whitespace allowed around and between the two,
// or one of the infinity sentinels. This file owns only the unit vocabulary
// and the sentinels; the numeric grammar is whatever the str2duration parser
// accepts, which is the time.ParseDuration grammar extended with days.

const (
	// InfDuration is the span of a window over the entire past or future. It
	// saturates at the largest representable duration (about 292 years).
	InfDuration = time.Duration(math.MaxInt64)
	// MinusInfDuration is the negative counterpart of InfDuration.
	MinusInfDuration = time.Duration(math.MinInt64)
)

var infinities = map[string]time.Duration{
	"Inf":      InfDuration,
	"+Inf":     InfDuration,
	"PlusInf":  InfDuration,
	"-Inf":     MinusInfDuration,
	"MinusInf": MinusInfDuration,
}

// durationUnits maps every accepted unit spelling to the symbol the parser
// understands. Plural forms exist for the word spellings only, so "days" is
// valid but "ds" is not.
var durationUnits = map[string]string{
	"d": "d", "day": "d", "days": "d",
	"h": "h", "hour": "h", "hours": "h",
	"min": "m", "minute": "m", "minutes": "m",
	"s": "s", "sec": "s", "secs": "s", "second": "s", "seconds": "s",
	"ms": "ms", "milli": "ms", "millis": "ms", "millisecond": "ms", "milliseconds": "ms",
	"µs": "us", "us": "us", "micro": "us", "micros": "us", "microsecond": "us", "microseconds": "us",
	"ns": "ns", "nano": "ns", "nanos": "ns", "nanosecond": "ns", "nanoseconds": "ns",
}

var durationRe = regexp.MustCompile(`^([+-]?[0-9]*\.?[0-9]+)\s*([A-Za-zµ]+)$`)

// parseDuration turns a duration string into a time.Duration.
func parseDuration(s string) (time.Duration, error) {
	trimmed := strings.TrimSpace(s)
	if d, ok := infinities[trimmed]; ok {
		return d, nil
	}
	m := durationRe.FindStringSubmatch(trimmed)
	if m == nil {
		return 0, fmt.Errorf("malformed duration %q", s)
	}
	unit, ok := durationUnits[strings.ToLower(m[2])]
	if !ok {
		return 0, fmt.Errorf("malformed duration %q: unknown unit %q", s, m[2])
	}
	return str2duration.ParseDuration(m[1] + unit)
}
