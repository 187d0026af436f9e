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

package exec

import (
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/core/graph"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/core/graph/window"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/core/typex"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/internal/errors"
)

// evalGBK groups the values of a KV input per key and window. Under a
// merging strategy the windows observed for a key are first merged into
// their minimal covering set and each value is grouped under the merged
// window its original window maps to. The grouped element is emitted at the
// maximum timestamp of its window.
func (p *Plan) evalGBK(e *graph.MultiEdge) error {
	out := e.Output[0].To.ID()
	merging := e.Input[0].From.WindowingStrategy().Fn.Merging()

	groups, order, err := groupByKey(p.input(e))
	if err != nil {
		return err
	}
	for _, key := range order {
		buckets, worder := bucketByWindow(groups[key], merging)
		for _, w := range worder {
			p.emit(out, FullValue{
				Elm:       typex.KV{Key: key, Value: buckets[w]},
				Timestamp: w.MaxTimestamp(),
				Windows:   []window.Window{w},
			})
		}
	}
	return nil
}

// groupByKey splits KV elements per key, preserving first-seen key order and
// per-key element order. Keys must be Go-comparable.
func groupByKey(in []FullValue) (map[interface{}][]FullValue, []interface{}, error) {
	groups := make(map[interface{}][]FullValue)
	var order []interface{}
	for _, fv := range in {
		kv, ok := fv.Elm.(typex.KV)
		if !ok {
			return nil, nil, errors.Errorf("grouping a non-KV element: %v", fv.Elm)
		}
		if _, seen := groups[kv.Key]; !seen {
			order = append(order, kv.Key)
		}
		groups[kv.Key] = append(groups[kv.Key], FullValue{Elm: kv.Value, Timestamp: fv.Timestamp, Windows: fv.Windows})
	}
	return groups, order, nil
}

// bucketByWindow gathers the bare values of the given elements per window.
// If merging, interval windows are first merged into their minimal covering
// set; merging a second time is a no-op since the set is already minimal.
func bucketByWindow(elms []FullValue, merging bool) (map[window.Window][]interface{}, []window.Window) {
	remap := func(w window.Window) window.Window { return w }
	if merging {
		var intervals []window.IntervalWindow
		for _, fv := range elms {
			for _, w := range fv.Windows {
				if iw, ok := w.(window.IntervalWindow); ok {
					intervals = append(intervals, iw)
				}
			}
		}
		_, mapping := window.MergeWindows(intervals)
		remap = func(w window.Window) window.Window {
			if iw, ok := w.(window.IntervalWindow); ok {
				return mapping[iw]
			}
			return w
		}
	}

	buckets := make(map[window.Window][]interface{})
	var order []window.Window
	for _, fv := range elms {
		for _, w := range fv.Windows {
			mw := remap(w)
			if _, seen := buckets[mw]; !seen {
				order = append(order, mw)
			}
			buckets[mw] = append(buckets[mw], fv.Elm)
		}
	}
	return buckets, order
}
