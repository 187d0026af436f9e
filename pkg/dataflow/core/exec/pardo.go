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
	"context"

	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/core/graph"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/core/graph/mtime"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/core/graph/window"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/internal/errors"
)

// evalParDo runs the DoFn over every input element as a single bundle.
// Emitted values are routed by tag to the bound output nodes; values for
// tags without a bound node are dropped.
func (p *Plan) evalParDo(ctx context.Context, e *graph.MultiEdge) error {
	fn := e.DoFn.Impl()

	outs := make(map[string]int)
	for _, out := range e.Output {
		outs[out.Tag] = out.To.ID()
	}

	if s, ok := fn.(graph.BundleStarter); ok {
		if err := s.StartBundle(ctx); err != nil {
			return errors.Wrap(err, "StartBundle failed")
		}
	}

	sides := e.Input[1:]
	for _, fv := range p.input(e) {
		pc := &processContext{plan: p, outs: outs, cur: fv}
		for i, side := range sides {
			sv, err := p.resolveSide(side, fv.Windows)
			if err != nil {
				return errors.Wrapf(err, "resolving side input %v", i)
			}
			pc.sides = append(pc.sides, sv)
		}
		if err := fn.ProcessElement(ctx, pc); err != nil {
			return err
		}
		if pc.err != nil {
			return pc.err
		}
	}

	if f, ok := fn.(graph.BundleFinisher); ok {
		if err := f.FinishBundle(ctx); err != nil {
			return errors.Wrap(err, "FinishBundle failed")
		}
	}
	return nil
}

// processContext is the per-element implementation of graph.ProcessContext.
// Emission methods cannot return errors, so invalid use is recorded in err
// and surfaced after the element call returns.
type processContext struct {
	plan  *Plan
	outs  map[string]int // tag -> node id
	cur   FullValue
	sides []sideValue
	err   error
}

func (pc *processContext) Element() interface{} {
	return pc.cur.Elm
}

func (pc *processContext) Timestamp() mtime.Time {
	return pc.cur.Timestamp
}

func (pc *processContext) Windows() []window.Window {
	return pc.cur.Windows
}

func (pc *processContext) Emit(value interface{}) {
	if tv, ok := value.(graph.TaggedValue); ok {
		pc.EmitTagged(tv.Tag, tv.Value)
		return
	}
	pc.route("", FullValue{Elm: value, Timestamp: pc.cur.Timestamp, Windows: pc.cur.Windows})
}

func (pc *processContext) EmitTimestamped(ts mtime.Time, value interface{}) {
	pc.route("", FullValue{Elm: value, Timestamp: ts, Windows: pc.cur.Windows})
}

func (pc *processContext) EmitTagged(tag string, value interface{}) {
	if tag == "" {
		if pc.err == nil {
			pc.err = errors.New("EmitTagged requires a non-empty tag; use Emit for the main output")
		}
		return
	}
	pc.route(tag, FullValue{Elm: value, Timestamp: pc.cur.Timestamp, Windows: pc.cur.Windows})
}

func (pc *processContext) route(tag string, fv FullValue) {
	id, ok := pc.outs[tag]
	if !ok {
		// No consumer observes the tag.
		return
	}
	pc.plan.emit(id, fv)
}

func (pc *processContext) SideInput(i int) interface{} {
	return pc.sides[i].Value()
}

func (pc *processContext) SideIter(i int) func() (interface{}, bool) {
	return pc.sides[i].Iter()
}
