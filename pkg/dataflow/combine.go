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

package dataflow

import (
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/core/graph"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/core/graph/window"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/internal/errors"
)

// TryCombine folds the entire collection into one value per window with the
// given combiner. The runner is free to shard the input, fold the shards
// independently and merge the partial accumulators in any order, so the
// combiner must be commutative and associative.
//
// With defaults, an empty input still yields one element, the combiner
// applied to no values; this requires the global windowing strategy. With
// the WithoutDefaults option, an empty input yields an empty output.
func TryCombine(s Scope, combiner Combiner, a PCollection, opts ...Option) (PCollection, error) {
	if !s.IsValid() {
		return PCollection{}, errors.New("invalid scope")
	}
	if !a.IsValid() {
		return PCollection{}, errors.New("invalid input")
	}
	fn, err := graph.NewCombineFn(combiner)
	if err != nil {
		return PCollection{}, errors.Wrapf(err, "invalid Combiner %v", combiner)
	}
	sides, wod := parseOpts(opts)
	if len(sides) > 0 {
		return PCollection{}, errors.Errorf("Combine %v does not support side inputs", fn.Name())
	}
	if !wod && a.n.WindowingStrategy().Fn.Kind != window.GlobalWindows {
		return PCollection{}, errors.Errorf("default values are not supported in Combine %v over a non-globally-windowed input; use WithoutDefaults", fn.Name())
	}

	edge, err := graph.NewCombine(s.real, s.scope, fn, a.n, false, wod)
	if err != nil {
		return PCollection{}, errors.Wrapf(err, "inserting Combine %v", fn.Name())
	}
	return PCollection{n: edge.Output[0].To}, nil
}

// Combine inserts a global Combine transform into the pipeline. It panics
// if the combiner or input is invalid.
func Combine(s Scope, combiner Combiner, a PCollection, opts ...Option) PCollection {
	ret, err := TryCombine(s, combiner, a, opts...)
	if err != nil {
		panic(err)
	}
	return ret
}

// TryCombinePerKey groups the KV collection per key and window and folds the
// values of each group with the given combiner, yielding one KV per key and
// window. It is a composite of GroupByKey and a per-key Combine.
func TryCombinePerKey(s Scope, combiner Combiner, a PCollection) (PCollection, error) {
	if !s.IsValid() {
		return PCollection{}, errors.New("invalid scope")
	}
	fn, err := graph.NewCombineFn(combiner)
	if err != nil {
		return PCollection{}, errors.Wrapf(err, "invalid Combiner %v", combiner)
	}
	inner := s.Scope(fn.Name())

	grouped, err := TryGroupByKey(inner, a)
	if err != nil {
		return PCollection{}, err
	}
	edge, err := graph.NewCombine(inner.real, inner.scope, fn, grouped.n, true, false)
	if err != nil {
		return PCollection{}, errors.Wrapf(err, "inserting CombinePerKey %v", fn.Name())
	}
	return PCollection{n: edge.Output[0].To}, nil
}

// CombinePerKey inserts a per-key Combine transform into the pipeline. It
// panics if the combiner or input is invalid.
func CombinePerKey(s Scope, combiner Combiner, a PCollection) PCollection {
	ret, err := TryCombinePerKey(s, combiner, a)
	if err != nil {
		panic(err)
	}
	return ret
}
