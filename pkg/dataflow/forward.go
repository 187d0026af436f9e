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
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/core/graph/mtime"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/core/typex"
)

// These types are recreated here, so that the dataflow package is the only
// import needed to write most pipeline code.

// KV is the runtime representation of a two-part key/value element. The key
// must be Go-comparable if the collection is grouped.
type KV = typex.KV

// EventTime is the event time of an element, in milliseconds.
type EventTime = mtime.Time

// DoFn is the interface of user element-processing code. A DoFn is invoked
// once per element with a fresh ProcessContext and may emit any number of
// values.
type DoFn = graph.ElementProcessor

// ProcessContext exposes the current element and emission surface to a DoFn.
type ProcessContext = graph.ProcessContext

// Combiner is the interface of user combining code. MergeAccumulators must
// be commutative and associative.
type Combiner = graph.Combiner

// EmptySideInput is substituted for a singleton side input view whose source
// collection holds no element in the window and that carries no default.
type EmptySideInput = graph.EmptySideInput

// TaggedValue routes a value emitted on the main output of a multi-output
// ParDo to the output bound under Tag instead.
type TaggedValue = graph.TaggedValue

// Tagged wraps a value for emission under the given tag. The tag must be a
// non-empty string; a tagged output cannot shadow the main output.
func Tagged(tag string, value interface{}) TaggedValue {
	if tag == "" {
		panic("output tag must be non-empty")
	}
	return TaggedValue{Tag: tag, Value: value}
}
