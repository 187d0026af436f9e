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

// Package stats contains transforms for statistical processing: counting,
// summing and averaging, globally or per key.
package stats

import (
	"context"

	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/internal/errors"
)

// CountPerElement counts the number of occurrences of every distinct element,
// per window. It returns a PCollection<KV<A,int>>.
func CountPerElement(s dataflow.Scope, col dataflow.PCollection) dataflow.PCollection {
	s = s.Scope("stats.CountPerElement")
	keyed := dataflow.ParDo(s, &pairWithOneFn{}, col)
	return dataflow.CombinePerKey(s, &sumFn{}, keyed)
}

// CountGlobally counts the number of elements, per window. It returns a
// PCollection<int> with a single element per window.
func CountGlobally(s dataflow.Scope, col dataflow.PCollection, opts ...dataflow.Option) dataflow.PCollection {
	s = s.Scope("stats.CountGlobally")
	ones := dataflow.ParDo(s, &oneFn{}, col)
	return dataflow.Combine(s, &sumFn{}, ones, opts...)
}

// Sum returns the sum of the elements, per window. Elements must be int or
// float64; a sum over only ints stays an int.
func Sum(s dataflow.Scope, col dataflow.PCollection, opts ...dataflow.Option) dataflow.PCollection {
	return dataflow.Combine(s.Scope("stats.Sum"), &sumFn{}, col, opts...)
}

// SumPerKey returns the per-key sums of a KV collection, per window.
func SumPerKey(s dataflow.Scope, col dataflow.PCollection) dataflow.PCollection {
	return dataflow.CombinePerKey(s.Scope("stats.SumPerKey"), &sumFn{}, col)
}

// Mean returns the arithmetic mean of the elements, per window, as a
// float64. The mean of no elements is NaN.
func Mean(s dataflow.Scope, col dataflow.PCollection, opts ...dataflow.Option) dataflow.PCollection {
	return dataflow.Combine(s.Scope("stats.Mean"), &meanFn{}, col, opts...)
}

// MeanPerKey returns the per-key means of a KV collection, per window.
func MeanPerKey(s dataflow.Scope, col dataflow.PCollection) dataflow.PCollection {
	return dataflow.CombinePerKey(s.Scope("stats.MeanPerKey"), &meanFn{}, col)
}

type pairWithOneFn struct{}

func (f *pairWithOneFn) ProcessElement(ctx context.Context, pc dataflow.ProcessContext) error {
	pc.Emit(dataflow.KV{Key: pc.Element(), Value: 1})
	return nil
}

type oneFn struct{}

func (f *oneFn) ProcessElement(ctx context.Context, pc dataflow.ProcessContext) error {
	pc.Emit(1)
	return nil
}

// sumFn adds int and float64 values. The accumulator stays an int until a
// float64 is folded in.
type sumFn struct{}

func (f *sumFn) CreateAccumulator() interface{} {
	return 0
}

func (f *sumFn) AddInput(accum, value interface{}) interface{} {
	return add(accum, value)
}

func (f *sumFn) MergeAccumulators(a, b interface{}) interface{} {
	return add(a, b)
}

func (f *sumFn) ExtractOutput(accum interface{}) interface{} {
	return accum
}

func add(a, b interface{}) interface{} {
	ai, aok := asInt(a)
	bi, bok := asInt(b)
	if aok && bok {
		return ai + bi
	}
	return asFloat(a) + asFloat(b)
}

func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	default:
		return 0, false
	}
}

func asFloat(v interface{}) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case float64:
		return n
	default:
		panic(errors.Errorf("not a number: %v", v))
	}
}

// meanAccum is the count and sum seen so far.
type meanAccum struct {
	Count int64
	Sum   float64
}

type meanFn struct{}

func (f *meanFn) CreateAccumulator() interface{} {
	return meanAccum{}
}

func (f *meanFn) AddInput(accum, value interface{}) interface{} {
	a := accum.(meanAccum)
	return meanAccum{Count: a.Count + 1, Sum: a.Sum + asFloat(value)}
}

func (f *meanFn) MergeAccumulators(a, b interface{}) interface{} {
	ma, mb := a.(meanAccum), b.(meanAccum)
	return meanAccum{Count: ma.Count + mb.Count, Sum: ma.Sum + mb.Sum}
}

func (f *meanFn) ExtractOutput(accum interface{}) interface{} {
	a := accum.(meanAccum)
	return a.Sum / float64(a.Count)
}
