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
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/core/typex"
)

// PCollection is an immutable, deferred collection of elements produced by
// exactly one transform application. It holds no data: it is a typed,
// windowed handle into the pipeline graph. Applying a transform to a
// PCollection from a different pipeline is a usage error.
type PCollection struct {
	// n is the graph node that represents this collection.
	n *graph.Node
}

// IsValid returns true iff the PCollection is valid and part of a Pipeline.
// Any use of an invalid PCollection will result in a panic.
func (p PCollection) IsValid() bool {
	return p.n != nil
}

// Type returns the declared element type of the collection, such as
// KV<int,string> or the Any marker.
func (p PCollection) Type() typex.FullType {
	if !p.IsValid() {
		panic("invalid PCollection")
	}
	return p.n.Type()
}

// WindowingStrategy returns the windowing strategy of the collection,
// determined solely by the producing transform.
func (p PCollection) WindowingStrategy() *window.WindowingStrategy {
	if !p.IsValid() {
		panic("invalid PCollection")
	}
	return p.n.WindowingStrategy()
}

// Node returns the underlying graph node. It is intended for runners.
func (p PCollection) Node() *graph.Node {
	return p.n
}

func (p PCollection) String() string {
	if !p.IsValid() {
		return "(invalid)"
	}
	return p.n.String()
}
