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
	"context"

	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/core/graph/window"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/internal/errors"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/log"
)

// AsIter returns the forward-only iterable view of the collection, for use
// as a side input. Iteration order is not specified.
func AsIter(col PCollection) SideInput {
	return SideInput{Input: col, kind: sideIter}
}

// AsSingleton returns the singleton view of the collection, for use as a
// side input. The view resolves to the sole element of the collection in
// the window; if the window is empty the view resolves to EmptySideInput,
// and more than one element is an execution-time error.
func AsSingleton(col PCollection) SideInput {
	return SideInput{Input: col, kind: sideSingleton}
}

// AsSingletonWithDefault returns the singleton view of the collection with
// the given default, substituted when the window holds no element.
func AsSingletonWithDefault(col PCollection, def interface{}) SideInput {
	return SideInput{Input: col, kind: sideSingleton, def: def, hasDefault: true}
}

// AsList returns the view of the collection as a single []interface{} per
// window, built by combining the collection to one element and viewing it
// as a singleton.
func AsList(s Scope, col PCollection) SideInput {
	return AsSingleton(ToList(s.Scope("AsList"), col))
}

// AsMap returns the view of a KV collection as a single
// map[interface{}]interface{} per window. Duplicate keys resolve to the
// last value folded in, which is not deterministic; a warning is logged.
func AsMap(s Scope, col PCollection) SideInput {
	return AsSingleton(ToMap(s.Scope("AsMap"), col))
}

// ToList combines the collection into a single []interface{} per window.
func ToList(s Scope, col PCollection) PCollection {
	return Combine(s, &toListFn{}, col, defaultsMode(col)...)
}

// ToMap combines a KV collection into a single map[interface{}]interface{}
// per window. Later values for a duplicate key overwrite earlier ones.
func ToMap(s Scope, col PCollection) PCollection {
	return Combine(s, &toMapFn{}, col, defaultsMode(col)...)
}

// defaultsMode suppresses the default output for non-globally-windowed
// input, where defaults are not supported. An empty window then resolves to
// EmptySideInput rather than an empty list or map.
func defaultsMode(col PCollection) []Option {
	if col.WindowingStrategy().Fn.Kind != window.GlobalWindows {
		return []Option{WithoutDefaults()}
	}
	return nil
}

// toListFn gathers all values into one slice.
type toListFn struct{}

func (f *toListFn) CreateAccumulator() interface{} {
	return []interface{}(nil)
}

func (f *toListFn) AddInput(accum, value interface{}) interface{} {
	return append(accum.([]interface{}), value)
}

func (f *toListFn) MergeAccumulators(a, b interface{}) interface{} {
	return append(a.([]interface{}), b.([]interface{})...)
}

func (f *toListFn) ExtractOutput(accum interface{}) interface{} {
	return accum
}

// toMapFn gathers all KVs into one map.
type toMapFn struct{}

func (f *toMapFn) CreateAccumulator() interface{} {
	return make(map[interface{}]interface{})
}

func (f *toMapFn) AddInput(accum, value interface{}) interface{} {
	kv, ok := value.(KV)
	if !ok {
		panic(errors.Errorf("ToMap requires KV elements: %v", value))
	}
	m := accum.(map[interface{}]interface{})
	if _, dup := m[kv.Key]; dup {
		log.Warnf(context.Background(), "duplicate key %v in map view; keeping the last value seen", kv.Key)
	}
	m[kv.Key] = kv.Value
	return m
}

func (f *toMapFn) MergeAccumulators(a, b interface{}) interface{} {
	ma := a.(map[interface{}]interface{})
	for k, v := range b.(map[interface{}]interface{}) {
		if _, dup := ma[k]; dup {
			log.Warnf(context.Background(), "duplicate key %v in map view; keeping the last value seen", k)
		}
		ma[k] = v
	}
	return ma
}

func (f *toMapFn) ExtractOutput(accum interface{}) interface{} {
	return accum
}
