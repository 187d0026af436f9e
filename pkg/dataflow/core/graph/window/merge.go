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
	"sort"
)

// MergeWindows unions every set of transitively overlapping interval windows
// into a single window spanning them, and returns the resulting minimal
// partition along with the mapping from each input window to the merged
// window that absorbed it. Merging an already-merged set is a no-op: the
// operation has a fixed point.
func MergeWindows(ws []IntervalWindow) ([]IntervalWindow, map[IntervalWindow]IntervalWindow) {
	if len(ws) == 0 {
		return nil, nil
	}

	sorted := make([]IntervalWindow, len(ws))
	copy(sorted, ws)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	// Sweep in start order, growing the current span while windows overlap it.
	var merged []IntervalWindow
	var pending []IntervalWindow // input windows absorbed by the current span

	result := make(map[IntervalWindow]IntervalWindow)
	cur := sorted[0]
	pending = append(pending, sorted[0])

	flush := func() {
		merged = append(merged, cur)
		for _, w := range pending {
			result[w] = cur
		}
		pending = pending[:0]
	}

	for _, w := range sorted[1:] {
		if w.Start < cur.End {
			cur = cur.Span(w)
			pending = append(pending, w)
			continue
		}
		flush()
		cur = w
		pending = append(pending, w)
	}
	flush()

	return merged, result
}
