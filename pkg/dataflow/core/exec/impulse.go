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
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/core/graph/mtime"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/core/graph/window"
)

// evalImpulse emits the single constant element in the global window at the
// minimum timestamp.
func (p *Plan) evalImpulse(e *graph.MultiEdge) error {
	p.emit(e.Output[0].To.ID(), FullValue{
		Elm:       e.Value,
		Timestamp: mtime.MinTimestamp,
		Windows:   window.SingleGlobalWindow,
	})
	return nil
}

// evalFlatten concatenates the inputs. Elements keep their timestamps and
// windows.
func (p *Plan) evalFlatten(e *graph.MultiEdge) error {
	out := e.Output[0].To.ID()
	for _, in := range e.Input {
		p.emit(out, p.data[in.From.ID()]...)
	}
	return nil
}

// evalWindowInto reassigns the windows of each element from its timestamp
// alone. Previously assigned windows are discarded.
func (p *Plan) evalWindowInto(e *graph.MultiEdge) error {
	out := e.Output[0].To.ID()
	for _, fv := range p.input(e) {
		p.emit(out, FullValue{
			Elm:       fv.Elm,
			Timestamp: fv.Timestamp,
			Windows:   e.Strategy.Fn.AssignWindows(fv.Timestamp),
		})
	}
	return nil
}
