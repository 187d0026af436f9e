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

// Package passert contains verification transforms for pipeline unit tests.
// The transforms are deferred like any other: a failed assertion fails the
// pipeline at execution time.
package passert

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/core/graph/window"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/internal/errors"
)

// Equals verifies that the collection contains exactly the given values,
// disregarding order, timestamps and windows. Cardinality matters: a value
// occurring twice must be expected twice.
func Equals(s dataflow.Scope, col dataflow.PCollection, values ...interface{}) {
	expected := dataflow.Create(s.Scope("expected"), values...)
	EqualsList(s, col, expected)
}

// Empty verifies that the collection contains no elements.
func Empty(s dataflow.Scope, col dataflow.PCollection) {
	diff(s.Scope("passert.Empty"), col, dataflow.CreateList(s, []interface{}{}))
}

// EqualsList verifies that the two collections contain the same elements,
// disregarding order, timestamps and windows.
func EqualsList(s dataflow.Scope, actual, expected dataflow.PCollection) {
	diff(s.Scope("passert.Equals"), actual, expected)
}

func diff(s dataflow.Scope, actual, expected dataflow.PCollection) {
	// Rewindow into the global window so that the views see the entire
	// collections regardless of upstream windowing.
	a := dataflow.WindowInto(s, window.NewGlobalWindows(), actual)
	e := dataflow.WindowInto(s, window.NewGlobalWindows(), expected)
	dataflow.ParDo0(s, &diffFn{}, dataflow.Impulse(s), dataflow.AsIter(a), dataflow.AsIter(e))
}

// diffFn compares the actual (side input 0) and expected (side input 1)
// collections as multisets.
type diffFn struct{}

func (f *diffFn) ProcessElement(ctx context.Context, pc dataflow.ProcessContext) error {
	actual := multiset(pc.SideIter(0))
	expected := multiset(pc.SideIter(1))
	if d := cmp.Diff(expected, actual); d != "" {
		return errors.Errorf("collections differ (-want +got):\n%v", d)
	}
	return nil
}

// multiset renders the iterated values as sorted value->count lines, so
// that the comparison is insensitive to order but not cardinality.
func multiset(iter func() (interface{}, bool)) []string {
	counts := make(map[string]int)
	for {
		v, ok := iter()
		if !ok {
			break
		}
		counts[fmt.Sprintf("%#v", v)]++
	}
	var ret []string
	for k, n := range counts {
		ret = append(ret, fmt.Sprintf("%v x%v", k, n))
	}
	sort.Strings(ret)
	return ret
}

// Count verifies the number of elements in the collection.
func Count(s dataflow.Scope, col dataflow.PCollection, name string, count int) {
	g := dataflow.WindowInto(s.Scope("passert.Count"), window.NewGlobalWindows(), col)
	dataflow.ParDo0(s, &countFn{Name: name, Want: count}, dataflow.Impulse(s), dataflow.AsIter(g))
}

type countFn struct {
	Name string
	Want int
}

func (f *countFn) ProcessElement(ctx context.Context, pc dataflow.ProcessContext) error {
	n := 0
	iter := pc.SideIter(0)
	for {
		if _, ok := iter(); !ok {
			break
		}
		n++
	}
	if n != f.Want {
		return errors.Errorf("%v: has %v elements, want %v", f.Name, n, f.Want)
	}
	return nil
}

// True verifies that all elements satisfy the predicate.
func True(s dataflow.Scope, col dataflow.PCollection, pred func(interface{}) bool) {
	dataflow.ParDo0(s, &satisfiedFn{Pred: pred, Want: true}, col)
}

// False verifies that no element satisfies the predicate.
func False(s dataflow.Scope, col dataflow.PCollection, pred func(interface{}) bool) {
	dataflow.ParDo0(s, &satisfiedFn{Pred: pred, Want: false}, col)
}

type satisfiedFn struct {
	Pred func(interface{}) bool
	Want bool
}

func (f *satisfiedFn) ProcessElement(ctx context.Context, pc dataflow.ProcessContext) error {
	if f.Pred(pc.Element()) != f.Want {
		verb := "satisfies"
		if f.Want {
			verb = "does not satisfy"
		}
		return errors.Errorf("element %v %v the predicate", render(pc.Element()), verb)
	}
	return nil
}

func render(v interface{}) string {
	s := fmt.Sprintf("%v", v)
	if strings.TrimSpace(s) == "" {
		return fmt.Sprintf("%q", s)
	}
	return s
}
