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
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/internal/errors"
)

// TryWindowInto reassigns the windows of every element according to the
// given window fn, from the element timestamp alone. Windows assigned
// earlier are discarded; timestamps are unchanged. The assignment takes
// effect at the next grouping or combining operation.
func TryWindowInto(s Scope, wfn *window.Fn, col PCollection) (PCollection, error) {
	if !s.IsValid() {
		return PCollection{}, errors.New("invalid scope")
	}
	if !col.IsValid() {
		return PCollection{}, errors.New("invalid input")
	}
	if wfn == nil {
		return PCollection{}, errors.New("nil window fn")
	}
	if err := wfn.Valid(); err != nil {
		return PCollection{}, errors.Wrap(err, "invalid window fn")
	}
	edge, err := graph.NewWindowInto(s.real, s.scope, &window.WindowingStrategy{Fn: wfn}, col.n)
	if err != nil {
		return PCollection{}, errors.Wrap(err, "inserting WindowInto")
	}
	return PCollection{n: edge.Output[0].To}, nil
}

// WindowInto inserts a WindowInto transform into the pipeline. It panics if
// the input is invalid.
func WindowInto(s Scope, wfn *window.Fn, col PCollection) PCollection {
	ret, err := TryWindowInto(s, wfn, col)
	if err != nil {
		panic(err)
	}
	return ret
}
