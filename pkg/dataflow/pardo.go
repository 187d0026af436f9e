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
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/internal/errors"
)

// TryParDo applies the DoFn to every element of the collection and returns
// its main output. Side inputs are resolved per window against the windows
// of each main input element. Outputs inherit the input windowing strategy.
func TryParDo(s Scope, dofn DoFn, col PCollection, opts ...Option) (PCollection, error) {
	t, err := TryParDoOutputs(s, dofn, col, nil, opts...)
	if err != nil {
		return PCollection{}, err
	}
	return t.main, nil
}

// TryParDoOutputs applies the DoFn as a multi-output transform. The given
// tags declare the permitted tagged outputs; the main output needs no
// declaration. Tagged output collections are created lazily, on first access.
func TryParDoOutputs(s Scope, dofn DoFn, col PCollection, tags []string, opts ...Option) (*OutputTuple, error) {
	if !s.IsValid() {
		return nil, errors.New("invalid scope")
	}
	if !col.IsValid() {
		return nil, errors.New("invalid main input")
	}
	fn, err := graph.NewDoFn(dofn)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid DoFn %v", dofn)
	}

	sides, wod := parseOpts(opts)
	if wod {
		return nil, errors.Errorf("ParDo %v does not support WithoutDefaults", fn.Name())
	}
	var in []graph.Side
	for _, side := range sides {
		if !side.Input.IsValid() {
			return nil, errors.Errorf("invalid side input to %v", fn.Name())
		}
		kind := graph.Iter
		if side.kind == sideSingleton {
			kind = graph.Singleton
		}
		in = append(in, graph.Side{
			From:       side.Input.n,
			Kind:       kind,
			Default:    side.def,
			HasDefault: side.hasDefault,
		})
	}

	edge, err := graph.NewParDo(s.real, s.scope, fn, col.n, in, tags)
	if err != nil {
		return nil, errors.Wrapf(err, "inserting ParDo %v", fn.Name())
	}
	return &OutputTuple{
		real:  s.real,
		edge:  edge.ID(),
		main:  PCollection{n: edge.Output[0].To},
		cache: make(map[string]PCollection),
	}, nil
}

// ParDo inserts a ParDo transform into the pipeline. It panics if the DoFn
// or inputs are invalid.
func ParDo(s Scope, dofn DoFn, col PCollection, opts ...Option) PCollection {
	ret, err := TryParDo(s, dofn, col, opts...)
	if err != nil {
		panic(err)
	}
	return ret
}

// ParDo0 inserts a ParDo with no observed outputs, such as a sink.
func ParDo0(s Scope, dofn DoFn, col PCollection, opts ...Option) {
	ParDo(s, dofn, col, opts...)
}

// ParDoOutputs inserts a multi-output ParDo with the given declared tags.
// It panics if the DoFn or inputs are invalid.
func ParDoOutputs(s Scope, dofn DoFn, col PCollection, tags []string, opts ...Option) *OutputTuple {
	ret, err := TryParDoOutputs(s, dofn, col, tags, opts...)
	if err != nil {
		panic(err)
	}
	return ret
}
