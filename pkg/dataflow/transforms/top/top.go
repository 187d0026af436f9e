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

// Package top contains transforms for finding the smallest or largest N
// elements based on arbitrary orderings.
package top

import (
	"sort"

	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow"
)

// Largest returns the largest N elements of the collection, per window, as a
// single sorted []interface{}, largest first. The order is defined by the
// given less function.
func Largest(s dataflow.Scope, col dataflow.PCollection, n int, less func(a, b interface{}) bool, opts ...dataflow.Option) dataflow.PCollection {
	return dataflow.Combine(s.Scope("top.Largest"), newCombineFn(n, less, false), col, opts...)
}

// Smallest returns the smallest N elements of the collection, per window, as
// a single sorted []interface{}, smallest first. The order is defined by the
// given less function.
func Smallest(s dataflow.Scope, col dataflow.PCollection, n int, less func(a, b interface{}) bool, opts ...dataflow.Option) dataflow.PCollection {
	return dataflow.Combine(s.Scope("top.Smallest"), newCombineFn(n, less, true), col, opts...)
}

// LargestPerKey returns the largest N values per key and window of a KV
// collection, as a PCollection<KV<K,[]interface{}>>.
func LargestPerKey(s dataflow.Scope, col dataflow.PCollection, n int, less func(a, b interface{}) bool) dataflow.PCollection {
	return dataflow.CombinePerKey(s.Scope("top.LargestPerKey"), newCombineFn(n, less, false), col)
}

// SmallestPerKey returns the smallest N values per key and window of a KV
// collection, as a PCollection<KV<K,[]interface{}>>.
func SmallestPerKey(s dataflow.Scope, col dataflow.PCollection, n int, less func(a, b interface{}) bool) dataflow.PCollection {
	return dataflow.CombinePerKey(s.Scope("top.SmallestPerKey"), newCombineFn(n, less, true), col)
}

func newCombineFn(n int, less func(a, b interface{}) bool, reversed bool) *combineFn {
	return &combineFn{N: n, Less: less, Reversed: reversed}
}

// combineFn keeps its accumulator as a sorted list of at most N elements,
// best first. Merging concatenates, re-sorts with a stable sort and
// truncates, so the result does not depend on how the input was sharded.
type combineFn struct {
	N        int
	Less     func(a, b interface{}) bool
	Reversed bool
}

func (f *combineFn) CreateAccumulator() interface{} {
	return []interface{}(nil)
}

func (f *combineFn) AddInput(accum, value interface{}) interface{} {
	return f.trim(append(accum.([]interface{}), value))
}

func (f *combineFn) MergeAccumulators(a, b interface{}) interface{} {
	return f.trim(append(append([]interface{}(nil), a.([]interface{})...), b.([]interface{})...))
}

func (f *combineFn) ExtractOutput(accum interface{}) interface{} {
	return accum
}

func (f *combineFn) trim(list []interface{}) []interface{} {
	sort.SliceStable(list, func(i, j int) bool {
		if f.Reversed {
			return f.Less(list[i], list[j])
		}
		return f.Less(list[j], list[i])
	})
	if len(list) > f.N {
		list = list[:f.N]
	}
	return list
}
