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

// TryFlatten merges the given collections into one. The inputs must share an
// element type and a windowing strategy. Elements keep their timestamps and
// windows.
func TryFlatten(s Scope, cols ...PCollection) (PCollection, error) {
	if !s.IsValid() {
		return PCollection{}, errors.New("invalid scope")
	}
	var in []*graph.Node
	for i, col := range cols {
		if !col.IsValid() {
			return PCollection{}, errors.Errorf("invalid input %v to Flatten", i)
		}
		in = append(in, col.n)
	}
	edge, err := graph.NewFlatten(s.real, s.scope, in)
	if err != nil {
		return PCollection{}, errors.Wrap(err, "inserting Flatten")
	}
	return PCollection{n: edge.Output[0].To}, nil
}

// Flatten inserts a Flatten transform into the pipeline. It panics if the
// inputs are invalid or mismatched.
func Flatten(s Scope, cols ...PCollection) PCollection {
	ret, err := TryFlatten(s, cols...)
	if err != nil {
		panic(err)
	}
	return ret
}
