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

package dataflow_test

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/core/graph/window"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/testing/passert"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/testing/ptest"
)

// addSingletonFn adds the singleton side input to each element. An empty
// view without a default renders as "empty".
type addSingletonFn struct{}

func (f *addSingletonFn) ProcessElement(ctx context.Context, pc dataflow.ProcessContext) error {
	side := pc.SideInput(0)
	if _, empty := side.(dataflow.EmptySideInput); empty {
		pc.Emit(fmt.Sprintf("%v+empty", pc.Element()))
		return nil
	}
	pc.Emit(fmt.Sprintf("%v+%v", pc.Element(), side))
	return nil
}

func TestSideInputSingleton(t *testing.T) {
	p, s := ptest.Create()
	col := dataflow.Create(s, "a", "b")
	side := dataflow.Create(s, 7)
	out := dataflow.ParDo(s, &addSingletonFn{}, col, dataflow.AsSingleton(side))
	passert.Equals(s, out, "a+7", "b+7")
	ptest.RunAndValidate(t, p)
}

func TestSideInputSingletonEmpty(t *testing.T) {
	p, s := ptest.Create()
	col := dataflow.Create(s, "a")
	side := dataflow.CreateList(s, []int{})
	out := dataflow.ParDo(s, &addSingletonFn{}, col, dataflow.AsSingleton(side))
	passert.Equals(s, out, "a+empty")
	ptest.RunAndValidate(t, p)
}

func TestSideInputSingletonDefault(t *testing.T) {
	p, s := ptest.Create()
	col := dataflow.Create(s, "a")
	side := dataflow.CreateList(s, []int{})
	out := dataflow.ParDo(s, &addSingletonFn{}, col, dataflow.AsSingletonWithDefault(side, 7))
	passert.Equals(s, out, "a+7")
	ptest.RunAndValidate(t, p)
}

// TestSideInputSingletonMultiValued verifies that viewing a collection of
// more than one element as a singleton fails the pipeline.
func TestSideInputSingletonMultiValued(t *testing.T) {
	p, s := ptest.Create()
	col := dataflow.Create(s, "a")
	side := dataflow.Create(s, 7, 8)
	dataflow.ParDo(s, &addSingletonFn{}, col, dataflow.AsSingleton(side))
	if err := ptest.Run(p); err == nil {
		t.Fatalf("multi-valued singleton view succeeded, want error")
	}
}

// sumSideFn emits the element plus the sum of the iterable side input.
type sumSideFn struct{}

func (f *sumSideFn) ProcessElement(ctx context.Context, pc dataflow.ProcessContext) error {
	sum := 0
	iter := pc.SideIter(0)
	for {
		v, ok := iter()
		if !ok {
			break
		}
		sum += v.(int)
	}
	pc.Emit(pc.Element().(int) + sum)
	return nil
}

func TestSideInputIter(t *testing.T) {
	p, s := ptest.Create()
	col := dataflow.Create(s, 100, 200)
	side := dataflow.Create(s, 1, 2, 3)
	out := dataflow.ParDo(s, &sumSideFn{}, col, dataflow.AsIter(side))
	passert.Equals(s, out, 106, 206)
	ptest.RunAndValidate(t, p)
}

// joinListFn renders the element and the sorted list side input.
type joinListFn struct{}

func (f *joinListFn) ProcessElement(ctx context.Context, pc dataflow.ProcessContext) error {
	list, ok := pc.SideInput(0).([]interface{})
	if !ok {
		pc.Emit(fmt.Sprintf("%v+empty", pc.Element()))
		return nil
	}
	var parts []string
	for _, v := range list {
		parts = append(parts, fmt.Sprintf("%v", v))
	}
	sort.Strings(parts)
	pc.Emit(fmt.Sprintf("%v+[%v]", pc.Element(), strings.Join(parts, " ")))
	return nil
}

func TestSideInputAsList(t *testing.T) {
	p, s := ptest.Create()
	col := dataflow.Create(s, "x")
	side := dataflow.Create(s, 3, 1, 2)
	out := dataflow.ParDo(s, &joinListFn{}, col, dataflow.AsList(s, side))
	passert.Equals(s, out, "x+[1 2 3]")
	ptest.RunAndValidate(t, p)
}

// lookupFn maps each element through the map side input.
type lookupFn struct{}

func (f *lookupFn) ProcessElement(ctx context.Context, pc dataflow.ProcessContext) error {
	m := pc.SideInput(0).(map[interface{}]interface{})
	pc.Emit(m[pc.Element()])
	return nil
}

func TestSideInputAsMap(t *testing.T) {
	p, s := ptest.Create()
	col := dataflow.Create(s, "a", "b")
	side := dataflow.Create(s,
		dataflow.KV{Key: "a", Value: 1},
		dataflow.KV{Key: "b", Value: 2},
		dataflow.KV{Key: "c", Value: 3},
	)
	out := dataflow.ParDo(s, &lookupFn{}, col, dataflow.AsMap(s, side))
	passert.Equals(s, out, 1, 2)
	ptest.RunAndValidate(t, p)
}

// TestSideInputPerWindow verifies that a side input is resolved against the
// windows of each main element: an element only sees the side value whose
// window it intersects.
func TestSideInputPerWindow(t *testing.T) {
	p, s := ptest.Create()

	main := dataflow.WindowInto(s, window.NewFixedWindows(10*time.Second), stamped(s, map[float64][]interface{}{
		1:  {"early"},
		11: {"late"},
	}))
	side := dataflow.WindowInto(s, window.NewFixedWindows(10*time.Second), stamped(s, map[float64][]interface{}{
		2:  {100},
		12: {200},
	}))

	out := dataflow.ParDo(s, &addSingletonFn{}, main, dataflow.AsSingleton(side))
	passert.Equals(s, out, "early+100", "late+200")
	ptest.RunAndValidate(t, p)
}
