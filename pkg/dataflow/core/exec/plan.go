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

package exec

import (
	"context"

	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/core/graph"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/internal/errors"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/log"
)

// Plan holds the materialized state of an executing pipeline: the contents of
// every collection computed so far, keyed by node id. Transforms run whole,
// one bundle per transform, in dependency order.
type Plan struct {
	edges []*graph.MultiEdge
	data  map[int][]FullValue
	done  map[int]bool
}

// NewPlan returns an execution plan for the given edges.
func NewPlan(edges []*graph.MultiEdge) *Plan {
	return &Plan{
		edges: edges,
		data:  make(map[int][]FullValue),
		done:  make(map[int]bool),
	}
}

// Execute evaluates every transform in the plan. Each transform runs once all
// of its inputs have been computed. Any user code failure aborts execution
// with an error identifying the failing transform.
func (p *Plan) Execute(ctx context.Context) error {
	remaining := len(p.edges)
	for remaining > 0 {
		progress := false
		for _, e := range p.edges {
			if p.done[e.ID()] || !p.ready(e) {
				continue
			}
			log.Debugf(ctx, "executing %v (%v)", e.Name(), e.Op)
			if err := p.evaluate(ctx, e); err != nil {
				return errors.Wrapf(err, "while executing %v", e.Name())
			}
			p.done[e.ID()] = true
			remaining--
			progress = true
		}
		if !progress {
			return errors.New("pipeline graph is not executable: no transform is ready")
		}
	}
	return nil
}

// ready reports whether every input of the edge has been computed.
func (p *Plan) ready(e *graph.MultiEdge) bool {
	for _, in := range e.Input {
		producer, ok := in.From.Producer()
		if !ok || !p.done[producer] {
			return false
		}
	}
	return true
}

func (p *Plan) evaluate(ctx context.Context, e *graph.MultiEdge) error {
	switch e.Op {
	case graph.Impulse:
		return p.evalImpulse(e)
	case graph.ParDo:
		return p.evalParDo(ctx, e)
	case graph.GBK:
		return p.evalGBK(e)
	case graph.Combine:
		return p.evalCombine(e)
	case graph.Flatten:
		return p.evalFlatten(e)
	case graph.WindowInto:
		return p.evalWindowInto(e)
	default:
		return errors.Errorf("unexpected opcode: %v", e.Op)
	}
}

// Get returns the computed contents of the node with the given id.
func (p *Plan) Get(id int) []FullValue {
	return p.data[id]
}

func (p *Plan) input(e *graph.MultiEdge) []FullValue {
	return p.data[e.Input[0].From.ID()]
}

func (p *Plan) emit(id int, values ...FullValue) {
	p.data[id] = append(p.data[id], values...)
}
