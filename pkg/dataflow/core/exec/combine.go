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

// foldShardCount is the number of partial accumulators a bundle of values is
// folded into before merging. Sharding keeps the execution honest about the
// combiner's required commutativity and associativity.
const foldShardCount = 3

// evalCombine folds the input with the combiner. A per-key combine consumes
// grouped elements and emits one KV per key and window. A global combine
// buckets the input per window, with the same window merging as grouping,
// and emits one value per window. An empty globally-windowed input with
// defaults enabled emits the combiner applied to no values.
func (p *Plan) evalCombine(e *graph.MultiEdge) error {
	if e.PerKey {
		return p.evalCombinePerKey(e)
	}
	return p.evalCombineGlobally(e)
}

func (p *Plan) evalCombinePerKey(e *graph.MultiEdge) error {
	fn := e.CombineFn.Impl()
	out := e.Output[0].To.ID()
	for _, fv := range p.input(e) {
		kv, ok := fv.Elm.(typex.KV)
		if !ok {
			return errors.Errorf("combining a non-grouped element: %v", fv.Elm)
		}
		values, ok := kv.Value.([]interface{})
		if !ok {
			return errors.Errorf("combining a non-grouped element: %v", fv.Elm)
		}
		p.emit(out, FullValue{
			Elm:       typex.KV{Key: kv.Key, Value: fn.ExtractOutput(foldShards(fn, values))},
			Timestamp: fv.Timestamp,
			Windows:   fv.Windows,
		})
	}
	return nil
}

func (p *Plan) evalCombineGlobally(e *graph.MultiEdge) error {
	fn := e.CombineFn.Impl()
	out := e.Output[0].To.ID()
	in := p.input(e)

	if len(in) == 0 {
		if e.WithoutDefaults {
			return nil
		}
		w := window.GlobalWindow{}
		p.emit(out, FullValue{
			Elm:       fn.ExtractOutput(fn.CreateAccumulator()),
			Timestamp: w.MaxTimestamp(),
			Windows:   []window.Window{w},
		})
		return nil
	}

	merging := e.Input[0].From.WindowingStrategy().Fn.Merging()
	buckets, order := bucketByWindow(in, merging)
	for _, w := range order {
		p.emit(out, FullValue{
			Elm:       fn.ExtractOutput(foldShards(fn, buckets[w])),
			Timestamp: w.MaxTimestamp(),
			Windows:   []window.Window{w},
		})
	}
	return nil
}

// foldShards folds the values into up to foldShardCount accumulators round
// robin and merges the partial accumulators last to first.
func foldShards(fn graph.Combiner, values []interface{}) interface{} {
	shards := foldShardCount
	if len(values) < shards {
		shards = 1
	}
	accums := make([]interface{}, shards)
	for i := range accums {
		accums[i] = fn.CreateAccumulator()
	}
	for i, v := range values {
		s := i % shards
		accums[s] = fn.AddInput(accums[s], v)
	}
	for i := len(accums) - 1; i > 0; i-- {
		accums[i-1] = fn.MergeAccumulators(accums[i-1], accums[i])
	}
	return accums[0]
}
