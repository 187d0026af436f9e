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
	"strconv"

	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/core/graph"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/internal/errors"
)

// OutputTuple is the result of a multi-output ParDo. The main output is
// available immediately; tagged outputs come into existence when first
// requested and are cached thereafter, so repeated access yields the same
// PCollection. Requesting a tag that was not declared is an error.
//
// The tuple refers to its transform by id through the pipeline graph; it
// does not own any part of it.
type OutputTuple struct {
	real  *graph.Graph
	edge  int
	main  PCollection
	cache map[string]PCollection
}

// Main returns the main (untagged) output of the transform.
func (t *OutputTuple) Main() PCollection {
	return t.main
}

// TryGet returns the output bound under the given tag, creating it on first
// access. The tag is a string or an int; int tags are coerced to their
// decimal form, so Get(1) and Get("1") name the same output.
func (t *OutputTuple) TryGet(tag interface{}) (PCollection, error) {
	key, err := coerceTag(tag)
	if err != nil {
		return PCollection{}, err
	}
	if key == "" {
		return t.main, nil
	}
	if col, ok := t.cache[key]; ok {
		return col, nil
	}
	edge, ok := t.real.Edge(t.edge)
	if !ok {
		return PCollection{}, errors.Errorf("no edge %v in the pipeline graph", t.edge)
	}
	n, err := graph.NewTaggedOutput(t.real, edge, key)
	if err != nil {
		return PCollection{}, err
	}
	col := PCollection{n: n}
	t.cache[key] = col
	return col, nil
}

// Get returns the output bound under the given tag. It panics if the tag
// was not declared on the transform.
func (t *OutputTuple) Get(tag interface{}) PCollection {
	col, err := t.TryGet(tag)
	if err != nil {
		panic(err)
	}
	return col
}

func coerceTag(tag interface{}) (string, error) {
	switch v := tag.(type) {
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	default:
		return "", errors.Errorf("output tag must be an int or string: %v", tag)
	}
}
