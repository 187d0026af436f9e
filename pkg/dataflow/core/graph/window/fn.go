// Licensed to the Apache Software Foundation (ASF) under one or more
// contributor license agreements.  See the NOTICE file distributed with
// this work for additional information regarding copyright ownership.
// The ASF licenses this file to You under the Apache License, Version 2.0
// (the "License"); you may not use this file except in compliance with
// the License.  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package window

import (
	"fmt"
	"time"

	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/core/graph/mtime"
)

// Kind is the semantic type of a window fn.
type Kind string

const (
	GlobalWindows  Kind = "GLO"
	FixedWindows   Kind = "FIX"
	SlidingWindows Kind = "SLI"
	Sessions       Kind = "SES"
)

// NewGlobalWindows returns the default WindowFn, which places all elements
// into a single window.
func NewGlobalWindows() *Fn {
	return &Fn{Kind: GlobalWindows}
}

// NewFixedWindows returns the fixed WindowFn with the given interval,
// aligned to the epoch.
func NewFixedWindows(interval time.Duration) *Fn {
	return &Fn{Kind: FixedWindows, Size: interval}
}

// NewFixedWindowsWithOffset returns the fixed WindowFn with the given
// interval, aligned to the epoch plus the given offset. Offsets outside
// [0, interval) are normalized.
func NewFixedWindowsWithOffset(interval, offset time.Duration) *Fn {
	return &Fn{Kind: FixedWindows, Size: interval, Offset: offset}
}

// NewSlidingWindows returns the sliding WindowFn with the given period and duration.
func NewSlidingWindows(period, duration time.Duration) *Fn {
	return &Fn{Kind: SlidingWindows, Period: period, Size: duration}
}

// NewSessions returns the session WindowFn with the given gap.
func NewSessions(gap time.Duration) *Fn {
	return &Fn{Kind: Sessions, Gap: gap}
}

// Fn defines the window fn.
type Fn struct {
	Kind Kind

	Size   time.Duration // FixedWindows, SlidingWindows
	Offset time.Duration // FixedWindows
	Period time.Duration // SlidingWindows
	Gap    time.Duration // Sessions
}

// Merging returns true iff windows assigned by this fn must be merged
// before grouping. Only session windows merge.
func (w *Fn) Merging() bool {
	return w.Kind == Sessions
}

// Valid returns an error if the fn cannot assign windows, such as a fixed
// or sliding fn with a non-positive size or period.
func (w *Fn) Valid() error {
	switch w.Kind {
	case GlobalWindows:
		return nil
	case FixedWindows:
		if w.Size <= 0 {
			return fmt.Errorf("fixed window size must be positive: %v", w.Size)
		}
		return nil
	case SlidingWindows:
		if w.Size <= 0 {
			return fmt.Errorf("sliding window size must be positive: %v", w.Size)
		}
		if w.Period <= 0 {
			return fmt.Errorf("sliding window period must be positive: %v", w.Period)
		}
		return nil
	case Sessions:
		if w.Gap <= 0 {
			return fmt.Errorf("session gap must be positive: %v", w.Gap)
		}
		return nil
	default:
		return fmt.Errorf("unknown window fn kind: %v", w.Kind)
	}
}

// AssignWindows returns the window(s) for an element at the given timestamp.
// Fixed and session assignment yield exactly one window; sliding assignment
// yields size/period windows, latest first; global assignment yields the
// global window.
func (w *Fn) AssignWindows(ts mtime.Time) []Window {
	switch w.Kind {
	case GlobalWindows:
		return SingleGlobalWindow
	case FixedWindows:
		start := alignedStart(ts, w.Size.Milliseconds(), w.Offset.Milliseconds())
		return []Window{IntervalWindow{Start: start, End: start.Add(w.Size)}}
	case SlidingWindows:
		var ret []Window
		last := alignedStart(ts, w.Period.Milliseconds(), 0)
		for start := last; start.Add(w.Size) > ts; start = start.Subtract(w.Period) {
			ret = append(ret, IntervalWindow{Start: start, End: start.Add(w.Size)})
		}
		return ret
	case Sessions:
		return []Window{IntervalWindow{Start: ts, End: ts.Add(w.Gap)}}
	default:
		panic(fmt.Sprintf("unknown window fn kind: %v", w.Kind))
	}
}

// alignedStart computes the greatest start <= ts such that
// start = k*size + offset for integer k.
func alignedStart(ts mtime.Time, size, offset int64) mtime.Time {
	offset %= size
	rem := (ts.Milliseconds() - offset) % size
	if rem < 0 {
		rem += size
	}
	return mtime.FromMilliseconds(ts.Milliseconds() - rem)
}

func (w *Fn) String() string {
	switch w.Kind {
	case FixedWindows:
		return fmt.Sprintf("%v[%v]", w.Kind, w.Size)
	case SlidingWindows:
		return fmt.Sprintf("%v[%v@%v]", w.Kind, w.Size, w.Period)
	case Sessions:
		return fmt.Sprintf("%v[%v]", w.Kind, w.Gap)
	default:
		return string(w.Kind)
	}
}

// Equals returns true iff the windows have the same kind and underlying behavior.
func (w *Fn) Equals(o *Fn) bool {
	if w.Kind != o.Kind {
		return false
	}

	switch w.Kind {
	case GlobalWindows:
		return true
	case FixedWindows:
		return w.Size == o.Size && w.Offset == o.Offset
	case SlidingWindows:
		return w.Period == o.Period && w.Size == o.Size
	case Sessions:
		return w.Gap == o.Gap
	default:
		panic(fmt.Sprintf("unknown window fn kind: %v", w))
	}
}
