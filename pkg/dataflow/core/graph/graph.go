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

// Package graph contains the in-progress deferred execution graph: nodes
// (deferred collections), multi-edges (transform applications) and scopes.
// Construction is pure bookkeeping; no data moves until a runner walks the
// graph.
package graph

import (
	"fmt"
	"strings"

	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/core/graph/window"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/core/typex"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/internal/errors"
)

// Graph represents an in-progress deferred execution graph. This graph
// representation allows precise control over scope and connectivity. A graph
// is a DAG: a node may feed any number of edges, but is produced by exactly
// one.
type Graph struct {
	scopes []*Scope
	edges  []*MultiEdge
	nodes  []*Node

	root *Scope
}

// New returns an empty graph with the scope set to the root.
func New() *Graph {
	root := &Scope{0, "root", nil}
	return &Graph{root: root}
}

// Root returns the root scope of the graph.
func (g *Graph) Root() *Scope {
	return g.root
}

// NewScope creates and returns a new scope that is a child of the supplied scope.
func (g *Graph) NewScope(parent *Scope, name string) *Scope {
	id := len(g.scopes) + 1
	s := &Scope{id: id, Label: name, Parent: parent}
	g.scopes = append(g.scopes, s)
	return s
}

// NewEdge creates a new edge of the graph in the supplied scope.
func (g *Graph) NewEdge(parent *Scope) *MultiEdge {
	id := len(g.edges) + 1
	e := &MultiEdge{id: id, parent: parent}
	g.edges = append(g.edges, e)
	return e
}

// NewNode creates a new node in the graph with the supplied element type and
// windowing strategy. The node has no producer until an edge claims it as an
// output.
func (g *Graph) NewNode(t typex.FullType, w *window.WindowingStrategy) *Node {
	if w == nil {
		w = window.DefaultWindowingStrategy()
	}
	id := len(g.nodes) + 1
	n := &Node{id: id, g: g, t: t, w: w, producer: -1}
	g.nodes = append(g.nodes, n)
	return n
}

// Edge returns the edge with the given id, if any.
func (g *Graph) Edge(id int) (*MultiEdge, bool) {
	if id < 1 || id > len(g.edges) {
		return nil, false
	}
	return g.edges[id-1], true
}

// Build performs finalization on the graph. It verifies that every node is
// claimed by a producing edge and returns the edges and nodes of the graph.
func (g *Graph) Build() ([]*MultiEdge, []*Node, error) {
	for _, n := range g.nodes {
		if n.producer < 0 {
			return nil, nil, errors.Errorf("node %v has no producing transform", n)
		}
	}
	return g.edges, g.nodes, nil
}

func (g *Graph) String() string {
	var nodes []string
	for _, node := range g.nodes {
		nodes = append(nodes, node.String())
	}
	var edges []string
	for _, edge := range g.edges {
		edges = append(edges, edge.String())
	}
	return fmt.Sprintf("Nodes: %v\nEdges: %v", strings.Join(nodes, "\n"), strings.Join(edges, "\n"))
}
