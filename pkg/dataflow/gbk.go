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

// TryGroupByKey groups the values of a KV collection per key and window. If
// the windowing strategy is merging, such as sessions, the windows observed
// for each key are first merged into their minimal covering set. Each
// grouped element is emitted at the maximum timestamp of its window.
func TryGroupByKey(s Scope, a PCollection) (PCollection, error) {
	if !s.IsValid() {
		return PCollection{}, errors.New("invalid scope")
	}
	if !a.IsValid() {
		return PCollection{}, errors.New("invalid input")
	}
	edge, err := graph.NewGBK(s.real, s.scope, a.n)
	if err != nil {
		return PCollection{}, errors.Wrap(err, "inserting GroupByKey")
	}
	return PCollection{n: edge.Output[0].To}, nil
}

// GroupByKey inserts a GroupByKey transform into the pipeline. It panics if
// the input is not a KV collection.
func GroupByKey(s Scope, a PCollection) PCollection {
	ret, err := TryGroupByKey(s, a)
	if err != nil {
		panic(err)
	}
	return ret
}
