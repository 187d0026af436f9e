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
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/internal/errors"
)

// sideValue is a side input resolved against the windows of one main input
// element. Only side elements whose windows intersect the main element's
// windows are visible.
type sideValue struct {
	kind   graph.InputKind
	values []interface{}
}

// resolveSide computes the view of the given side input for a main element
// in the given windows.
func (p *Plan) resolveSide(in *graph.Inbound, windows []window.Window) (sideValue, error) {
	var matched []interface{}
	for _, fv := range p.data[in.From.ID()] {
		if intersects(fv.Windows, windows) {
			matched = append(matched, fv.Elm)
		}
	}

	switch in.Kind {
	case graph.Singleton:
		if len(matched) > 1 {
			return sideValue{}, errors.Errorf("collection viewed as a singleton has %v elements in the window", len(matched))
		}
		if len(matched) == 0 {
			if in.HasDefault {
				matched = []interface{}{in.Default}
			} else {
				matched = []interface{}{graph.EmptySideInput{}}
			}
		}
		return sideValue{kind: in.Kind, values: matched}, nil
	case graph.Iter:
		return sideValue{kind: in.Kind, values: matched}, nil
	default:
		return sideValue{}, errors.Errorf("unexpected side input kind: %v", in.Kind)
	}
}

func intersects(a, b []window.Window) bool {
	for _, wa := range a {
		for _, wb := range b {
			if window.Intersects(wa, wb) {
				return true
			}
		}
	}
	return false
}

// Value returns the singleton view of the side input.
func (s sideValue) Value() interface{} {
	if s.kind == graph.Singleton {
		return s.values[0]
	}
	// An iterable accessed as a value yields the matched elements.
	ret := make([]interface{}, len(s.values))
	copy(ret, s.values)
	return ret
}

// Iter returns a forward-only iterator over the side input.
func (s sideValue) Iter() func() (interface{}, bool) {
	i := 0
	return func() (interface{}, bool) {
		if i >= len(s.values) {
			return nil, false
		}
		v := s.values[i]
		i++
		return v, true
	}
}
