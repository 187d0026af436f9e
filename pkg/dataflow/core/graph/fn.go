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

package graph

import (
	"context"
	"reflect"
	"strings"

	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/core/graph/mtime"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/core/graph/window"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/core/typex"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/internal/errors"
)

// ProcessContext exposes the current element and the emission surface to an
// element processor. A fresh context is presented for each element; emitted
// values inherit the element's timestamp and windows unless emitted
// timestamped. Side input views are resolved against the windows of the
// current element.
type ProcessContext interface {
	// Element returns the current element. KV elements are typex.KV values.
	Element() interface{}
	// Timestamp returns the event time of the current element.
	Timestamp() mtime.Time
	// Windows returns the windows the current element is in.
	Windows() []window.Window

	// Emit sends a value to the main output.
	Emit(value interface{})
	// EmitTimestamped sends a value to the main output with an overridden
	// event time. The windows are still inherited.
	EmitTimestamped(ts mtime.Time, value interface{})
	// EmitTagged sends a value to the output bound under the given tag.
	// The tag must be non-empty; the main output is reached through Emit
	// only. Values for tags that no consumer observes are dropped.
	EmitTagged(tag string, value interface{})

	// SideInput returns the singleton view of side input i, in declaration
	// order. An empty source without a default yields EmptySideInput.
	SideInput(i int) interface{}
	// SideIter returns a forward-only iterator over the iterable view of
	// side input i.
	SideIter(i int) func() (interface{}, bool)
}

// EmptySideInput is substituted for a singleton side input view whose source
// collection holds no element in the window and that carries no default.
type EmptySideInput struct{}

// TaggedValue routes a value emitted on the main output to the tagged output
// of a multi-output ParDo instead. The tag must be a non-empty string.
type TaggedValue struct {
	Tag   string
	Value interface{}
}

// ElementProcessor is the interface of user element-processing code wrapped
// by a DoFn.
type ElementProcessor interface {
	ProcessElement(ctx context.Context, pc ProcessContext) error
}

// BundleStarter is implemented by processors that need per-bundle setup.
type BundleStarter interface {
	StartBundle(ctx context.Context) error
}

// BundleFinisher is implemented by processors that need per-bundle
// finalization, such as flushing a sink.
type BundleFinisher interface {
	FinishBundle(ctx context.Context) error
}

// OutputTyper is implemented by processors and combiners that declare a
// concrete output element type. Absent the interface, outputs carry the Any
// marker.
type OutputTyper interface {
	OutputType() typex.FullType
}

// DoFn wraps an element processor for use in a ParDo.
type DoFn struct {
	impl ElementProcessor
	name string
}

// NewDoFn wraps the given processor.
func NewDoFn(impl ElementProcessor) (*DoFn, error) {
	if impl == nil {
		return nil, errors.New("nil element processor")
	}
	return &DoFn{impl: impl, name: nameOf(impl)}, nil
}

// Name returns the name of the wrapped processor.
func (f *DoFn) Name() string {
	return f.name
}

// Impl returns the wrapped processor.
func (f *DoFn) Impl() ElementProcessor {
	return f.impl
}

// OutputType returns the declared output element type of the processor.
func (f *DoFn) OutputType() typex.FullType {
	if t, ok := f.impl.(OutputTyper); ok {
		return t.OutputType()
	}
	return typex.Any
}

// Combiner is the interface of user combining code wrapped by a CombineFn.
// AddInput folds one value into an accumulator. MergeAccumulators must be
// commutative and associative: the runner is free to shard the input, fold
// the shards independently and merge the partial accumulators in any order.
type Combiner interface {
	CreateAccumulator() interface{}
	AddInput(accum, value interface{}) interface{}
	MergeAccumulators(a, b interface{}) interface{}
	ExtractOutput(accum interface{}) interface{}
}

// CombineFn wraps a combiner for use in a Combine.
type CombineFn struct {
	impl Combiner
	name string
}

// NewCombineFn wraps the given combiner.
func NewCombineFn(impl Combiner) (*CombineFn, error) {
	if impl == nil {
		return nil, errors.New("nil combiner")
	}
	return &CombineFn{impl: impl, name: nameOf(impl)}, nil
}

// Name returns the name of the wrapped combiner.
func (f *CombineFn) Name() string {
	return f.name
}

// Impl returns the wrapped combiner.
func (f *CombineFn) Impl() Combiner {
	return f.impl
}

// OutputType returns the declared output element type of the combiner.
func (f *CombineFn) OutputType() typex.FullType {
	if t, ok := f.impl.(OutputTyper); ok {
		return t.OutputType()
	}
	return typex.Any
}

// nameOf returns a short name for the dynamic type of the given value, such
// as "stats.countFn".
func nameOf(v interface{}) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.String()
	}
	pkg := t.PkgPath()
	if i := strings.LastIndex(pkg, "/"); i >= 0 {
		pkg = pkg[i+1:]
	}
	if pkg == "" {
		return t.Name()
	}
	return pkg + "." + t.Name()
}
