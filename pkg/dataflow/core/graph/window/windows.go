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

	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/core/graph/mtime"
)

// Window is an event-time grouping boundary assigned to an element. Elements
// in the same window of the same collection are considered co-occurring for
// grouping and combining purposes.
type Window interface {
	// MaxTimestamp returns the inclusive upper bound of timestamps in the window.
	MaxTimestamp() mtime.Time
	// Equals returns true iff the window is identical to the given window.
	Equals(o Window) bool
}

var (
	// SingleGlobalWindow is a slice of a single global window. Convenience value.
	SingleGlobalWindow = []Window{GlobalWindow{}}
)

// GlobalWindow represents the singleton, global window.
type GlobalWindow struct{}

// MaxTimestamp returns the maximum timestamp in the window.
func (GlobalWindow) MaxTimestamp() mtime.Time {
	return mtime.EndOfGlobalWindowTime
}

// Equals returns true iff the other window is also the global window.
func (GlobalWindow) Equals(o Window) bool {
	_, ok := o.(GlobalWindow)
	return ok
}

func (GlobalWindow) String() string {
	return "[*]"
}

// IntervalWindow represents a half-open bounded window [start,end).
type IntervalWindow struct {
	Start, End mtime.Time
}

// MaxTimestamp returns the maximum timestamp in the window.
func (w IntervalWindow) MaxTimestamp() mtime.Time {
	return w.End - 1
}

// Equals returns true iff the other window is an interval window with the
// same start and end timestamps.
func (w IntervalWindow) Equals(o Window) bool {
	ow, ok := o.(IntervalWindow)
	return ok && w.Start == ow.Start && w.End == ow.End
}

// Overlaps returns true iff the windows have at least one common timestamp.
func (w IntervalWindow) Overlaps(o IntervalWindow) bool {
	return w.Start < o.End && o.Start < w.End
}

// Span returns the smallest interval window covering both windows.
func (w IntervalWindow) Span(o IntervalWindow) IntervalWindow {
	return IntervalWindow{Start: mtime.Min(w.Start, o.Start), End: mtime.Max(w.End, o.End)}
}

func (w IntervalWindow) String() string {
	return fmt.Sprintf("[%v:%v)", w.Start, w.End)
}

// Intersects returns true iff the two windows share at least one timestamp.
// The global window intersects every window.
func Intersects(a, b Window) bool {
	ia, aok := a.(IntervalWindow)
	ib, bok := b.(IntervalWindow)
	if aok && bok {
		return ia.Overlaps(ib)
	}
	return true // at least one global window
}

// IsEqualList returns true iff the lists of windows are equal.
// Note that ordering matters and that this is not set equality.
func IsEqualList(from, to []Window) bool {
	if len(from) != len(to) {
		return false
	}
	for i, w := range from {
		if !w.Equals(to[i]) {
			return false
		}
	}
	return true
}
