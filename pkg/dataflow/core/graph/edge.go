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
	"strings"

	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/core/graph/window"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/core/typex"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/internal/errors"
)

// Opcode represents a primitive Dataflow instruction kind.
type Opcode string

// Valid opcodes.
const (
	Impulse    Opcode = "Impulse"
	ParDo      Opcode = "ParDo"
	GBK        Opcode = "GBK"
	Combine    Opcode = "Combine"
	Flatten    Opcode = "Flatten"
	WindowInto Opcode = "WindowInto"
)

// InputKind represents how an input is accessed by the consuming transform.
type InputKind string

// Valid input kinds.
const (
	// Main is the ordinary element-at-a-time input of a transform.
	Main InputKind = "Main"
	// Singleton is a side input viewed as exactly one value per window.
	Singleton InputKind = "Singleton"
	// Iter is a side input viewed as a forward-only iterable per window.
	Iter InputKind = "Iter"
)

// Inbound represents an inbound data link from a Node.
type Inbound struct {
	// Kind presents the form of the data that the edge expects.
	Kind InputKind
	// From is the incoming node in the graph.
	From *Node
	// Default is the value substituted for an empty Singleton side input,
	// if HasDefault is set.
	Default    interface{}
	HasDefault bool
}

func (i *Inbound) String() string {
	return fmt.Sprintf("In(%v): %v", i.Kind, i.From)
}

// Outbound represents an outbound data link to a Node.
type Outbound struct {
	// To is the outgoing node in the graph.
	To *Node
	// Tag is the label under which the producing transform emits into To.
	// Empty for the main output.
	Tag string
}

func (o *Outbound) String() string {
	return fmt.Sprintf("Out(%v): %v", o.Tag, o.To)
}

// Side is a side input to be attached to a ParDo edge.
type Side struct {
	From       *Node
	Kind       InputKind
	Default    interface{}
	HasDefault bool
}

// MultiEdge represents a primitive data processing operation. Each non-user
// code operation may be implemented by either the harness or the runner.
type MultiEdge struct {
	id     int
	parent *Scope

	Op Opcode

	// DoFn holds the user function for ParDo.
	DoFn *DoFn
	// CombineFn holds the user function for Combine.
	CombineFn *CombineFn
	// PerKey is set on Combine edges that fold grouped values per key
	// rather than a whole collection.
	PerKey bool
	// WithoutDefaults suppresses the default empty-input output of a
	// global Combine.
	WithoutDefaults bool
	// OutputTags are the tags declared for a multi-output ParDo. The main
	// output uses the empty tag and needs no declaration.
	OutputTags []string
	// Value holds the constant element payload for Impulse.
	Value []byte
	// Strategy is the windowing strategy installed by WindowInto.
	Strategy *window.WindowingStrategy

	Input  []*Inbound
	Output []*Outbound
}

// ID returns the graph-local identifier for the edge.
func (e *MultiEdge) ID() int {
	return e.id
}

// Name returns a not-necessarily-unique name for the edge.
func (e *MultiEdge) Name() string {
	if e.DoFn != nil {
		return e.DoFn.Name()
	}
	if e.CombineFn != nil {
		return e.CombineFn.Name()
	}
	return string(e.Op)
}

// Scope returns the scope the edge was applied in.
func (e *MultiEdge) Scope() *Scope {
	return e.parent
}

func (e *MultiEdge) String() string {
	var ins []string
	for _, in := range e.Input {
		ins = append(ins, in.String())
	}
	var outs []string
	for _, out := range e.Output {
		outs = append(outs, out.String())
	}
	return fmt.Sprintf("%v: %v [%v] -> [%v]", e.id, e.Op, strings.Join(ins, ", "), strings.Join(outs, ", "))
}

// NewImpulse inserts a new Impulse edge into the graph. The edge emits a
// single element, value, in the global window at the minimum timestamp.
func NewImpulse(g *Graph, s *Scope, value []byte) *MultiEdge {
	n := g.NewNode(typex.New(typex.ByteSliceType), window.DefaultWindowingStrategy())
	edge := g.NewEdge(s)
	edge.Op = Impulse
	edge.Value = value
	edge.Output = []*Outbound{{To: n, Tag: ""}}
	n.bind(edge.id, "")
	return edge
}

// NewParDo inserts a new ParDo edge into the graph. The main output node is
// created eagerly; outputs for the declared tags are claimed on demand
// through NewTaggedOutput. The side inputs, if any, are resolved per window
// at execution time.
func NewParDo(g *Graph, s *Scope, u *DoFn, in *Node, sides []Side, tags []string) (*MultiEdge, error) {
	if in.g != g {
		return nil, errors.Errorf("input to %v is from a different pipeline", u.Name())
	}
	inputs := []*Inbound{{Kind: Main, From: in}}
	for _, side := range sides {
		if side.From.g != g {
			return nil, errors.Errorf("side input to %v is from a different pipeline", u.Name())
		}
		kind := side.Kind
		if kind == "" {
			kind = Iter
		}
		inputs = append(inputs, &Inbound{
			Kind:       kind,
			From:       side.From,
			Default:    side.Default,
			HasDefault: side.HasDefault,
		})
	}

	for i, tag := range tags {
		if tag == "" {
			return nil, errors.Errorf("output tags for %v must be non-empty", u.Name())
		}
		for _, prev := range tags[:i] {
			if prev == tag {
				return nil, errors.Errorf("duplicate output tag %v on %v", tag, u.Name())
			}
		}
	}

	out := g.NewNode(u.OutputType(), in.WindowingStrategy())
	edge := g.NewEdge(s)
	edge.Op = ParDo
	edge.DoFn = u
	edge.OutputTags = tags
	edge.Input = inputs
	edge.Output = []*Outbound{{To: out, Tag: ""}}
	out.bind(edge.id, "")
	return edge, nil
}

// NewTaggedOutput creates and claims an additional output node for the given
// tag on a ParDo edge. The tag must be declared on the DoFn and must be
// distinct from tags already bound. Elements emitted under the tag carry the
// Any type marker.
func NewTaggedOutput(g *Graph, edge *MultiEdge, tag string) (*Node, error) {
	if edge.Op != ParDo {
		return nil, errors.Errorf("tagged outputs require a ParDo edge, got %v", edge.Op)
	}
	declared := false
	for _, t := range edge.OutputTags {
		if t == tag {
			declared = true
			break
		}
	}
	if !declared {
		return nil, errors.Errorf("tag %v is not declared on %v", tag, edge.DoFn.Name())
	}
	for _, out := range edge.Output {
		if out.Tag == tag {
			return nil, errors.Errorf("tag %v already bound on %v", tag, edge.DoFn.Name())
		}
	}
	n := g.NewNode(typex.Any, edge.Input[0].From.WindowingStrategy())
	edge.Output = append(edge.Output, &Outbound{To: n, Tag: tag})
	n.bind(edge.id, tag)
	return n, nil
}

// NewGBK inserts a new group-by-key edge into the graph. The input node must
// carry KV elements. If the input strategy is merging, grouping first merges
// the windows observed per key into their minimal covering set.
func NewGBK(g *Graph, s *Scope, in *Node) (*MultiEdge, error) {
	if in.g != g {
		return nil, errors.Errorf("input to GroupByKey is from a different pipeline")
	}
	if !typex.IsKV(in.Type()) && !typex.IsAny(in.Type()) {
		return nil, errors.Errorf("input to GroupByKey must be a KV: %v", in.Type())
	}
	k, v := gbkComponents(in.Type())
	t := typex.NewGBK(k, v)

	out := g.NewNode(t, in.WindowingStrategy())
	edge := g.NewEdge(s)
	edge.Op = GBK
	edge.Input = []*Inbound{{Kind: Main, From: in}}
	edge.Output = []*Outbound{{To: out, Tag: ""}}
	out.bind(edge.id, "")
	return edge, nil
}

func gbkComponents(t typex.FullType) (typex.FullType, typex.FullType) {
	if typex.IsKV(t) {
		c := t.Components()
		return c[0], c[1]
	}
	return typex.Any, typex.Any
}

// NewCombine inserts a new Combine edge into the graph. A per-key combine
// consumes a grouped (GBK) node and emits one KV per key and window. A global
// combine consumes an ordinary node and emits one value per window; with
// defaults enabled and the global windowing strategy, an empty input still
// yields the combiner applied to nothing.
func NewCombine(g *Graph, s *Scope, u *CombineFn, in *Node, perKey, withoutDefaults bool) (*MultiEdge, error) {
	if in.g != g {
		return nil, errors.Errorf("input to %v is from a different pipeline", u.Name())
	}
	var t typex.FullType
	if perKey {
		if !typex.IsGBK(in.Type()) {
			return nil, errors.Errorf("per-key input to %v must be grouped: %v", u.Name(), in.Type())
		}
		t = typex.NewKV(in.Type().Components()[0], u.OutputType())
	} else {
		if typex.IsGBK(in.Type()) {
			return nil, errors.Errorf("global input to %v must not be grouped: %v", u.Name(), in.Type())
		}
		t = u.OutputType()
	}

	out := g.NewNode(t, in.WindowingStrategy())
	edge := g.NewEdge(s)
	edge.Op = Combine
	edge.CombineFn = u
	edge.PerKey = perKey
	edge.WithoutDefaults = withoutDefaults
	edge.Input = []*Inbound{{Kind: Main, From: in}}
	edge.Output = []*Outbound{{To: out, Tag: ""}}
	out.bind(edge.id, "")
	return edge, nil
}

// NewFlatten inserts a new Flatten edge into the graph. The inputs must share
// an element type and a windowing strategy.
func NewFlatten(g *Graph, s *Scope, in []*Node) (*MultiEdge, error) {
	if len(in) < 2 {
		return nil, errors.Errorf("flatten needs at least 2 input, got %v", len(in))
	}
	t := in[0].Type()
	w := in[0].WindowingStrategy()
	for _, n := range in {
		if n.g != g {
			return nil, errors.Errorf("input to Flatten is from a different pipeline")
		}
		if !typex.IsEqual(t, n.Type()) {
			return nil, errors.Errorf("mismatched flatten input types: %v, want %v", n.Type(), t)
		}
		if !w.Equals(n.WindowingStrategy()) {
			return nil, errors.Errorf("mismatched flatten window strategies: %v, want %v", n.WindowingStrategy(), w)
		}
	}

	out := g.NewNode(t, w)
	edge := g.NewEdge(s)
	edge.Op = Flatten
	for _, n := range in {
		edge.Input = append(edge.Input, &Inbound{Kind: Main, From: n})
	}
	edge.Output = []*Outbound{{To: out, Tag: ""}}
	out.bind(edge.id, "")
	return edge, nil
}

// NewWindowInto inserts a new WindowInto edge into the graph. Re-windowing
// discards previously assigned windows and reassigns each element from its
// timestamp alone.
func NewWindowInto(g *Graph, s *Scope, ws *window.WindowingStrategy, in *Node) (*MultiEdge, error) {
	if in.g != g {
		return nil, errors.Errorf("input to WindowInto is from a different pipeline")
	}
	out := g.NewNode(in.Type(), ws)
	edge := g.NewEdge(s)
	edge.Op = WindowInto
	edge.Strategy = ws
	edge.Input = []*Inbound{{Kind: Main, From: in}}
	edge.Output = []*Outbound{{To: out, Tag: ""}}
	out.bind(edge.id, "")
	return edge, nil
}
