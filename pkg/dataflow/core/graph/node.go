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
	"fmt"

	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/core/graph/window"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/core/typex"
)

// Node is a deferred collection: a typed, windowed connector in the graph.
// A node may have multiple outbound connections, but is computed by exactly
// one producing edge, bound once when the edge claims the node as an output.
// A node never holds data before execution.
type Node struct {
	id int
	g  *Graph

	// t is the declared type of the underlying elements and cannot change.
	t typex.FullType
	// w is the windowing strategy, determined solely by the producing edge.
	w *window.WindowingStrategy

	// producer is the id of the edge that computes this node, or -1.
	producer int
	// tag distinguishes this node among sibling outputs of its producer.
	tag string
}

// ID returns the graph-local identifier for the node.
func (n *Node) ID() int {
	return n.id
}

// Type returns the declared element type, such as KV<int,string> or the Any
// marker.
func (n *Node) Type() typex.FullType {
	return n.t
}

// WindowingStrategy returns the windowing strategy of the node.
func (n *Node) WindowingStrategy() *window.WindowingStrategy {
	return n.w
}

// Tag returns the output tag of the node. Empty for main outputs.
func (n *Node) Tag() string {
	return n.tag
}

// Producer returns the id of the producing edge, or false if the node has
// not been claimed yet.
func (n *Node) Producer() (int, bool) {
	if n.producer < 0 {
		return 0, false
	}
	return n.producer, true
}

// bind claims the node as an output of the given edge. A node is claimed
// exactly once.
func (n *Node) bind(edge int, tag string) {
	if n.producer >= 0 {
		panic(fmt.Sprintf("node %v already has a producer: %v", n.id, n.producer))
	}
	n.producer = edge
	n.tag = tag
}

func (n *Node) String() string {
	return fmt.Sprintf("{%v: %v/%v}", n.id, n.t, n.w)
}

// NodeTypes returns the declared element types of the supplied nodes.
func NodeTypes(list []*Node) []typex.FullType {
	var ret []typex.FullType
	for _, c := range list {
		ret = append(ret, c.Type())
	}
	return ret
}
