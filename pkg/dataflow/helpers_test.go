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
	"strconv"
	"strings"
	"testing"

	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/core/graph/mtime"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/core/graph/window"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/testing/ptest"
)

func TestMain(m *testing.M) {
	ptest.Main(m)
}

// stampFn re-emits the value of each KV at the event time given by its key,
// in seconds.
type stampFn struct{}

func (f *stampFn) ProcessElement(ctx context.Context, pc dataflow.ProcessContext) error {
	kv := pc.Element().(dataflow.KV)
	pc.EmitTimestamped(mtime.FromSeconds(kv.Key.(float64)), kv.Value)
	return nil
}

// stamped inserts the given values at the given event times, in seconds.
func stamped(s dataflow.Scope, at map[float64][]interface{}) dataflow.PCollection {
	var kvs []interface{}
	var keys []float64
	for ts := range at {
		keys = append(keys, ts)
	}
	sort.Float64s(keys)
	for _, ts := range keys {
		for _, v := range at[ts] {
			kvs = append(kvs, dataflow.KV{Key: ts, Value: v})
		}
	}
	return dataflow.ParDo(s, &stampFn{}, dataflow.Create(s, kvs...))
}

// describeFn renders each element with its windows, such as
// "a@[0.0, 10.0)". Grouped values are rendered sorted.
type describeFn struct{}

func (f *describeFn) ProcessElement(ctx context.Context, pc dataflow.ProcessContext) error {
	var ws []string
	for _, w := range pc.Windows() {
		ws = append(ws, describeWindow(w))
	}
	pc.Emit(fmt.Sprintf("%v@%v", describeValue(pc.Element()), strings.Join(ws, ",")))
	return nil
}

func describeValue(v interface{}) string {
	switch e := v.(type) {
	case dataflow.KV:
		return fmt.Sprintf("%v:%v", describeValue(e.Key), describeValue(e.Value))
	case []interface{}:
		var parts []string
		for _, x := range e {
			parts = append(parts, describeValue(x))
		}
		sort.Strings(parts)
		return "[" + strings.Join(parts, " ") + "]"
	default:
		return fmt.Sprintf("%v", v)
	}
}

func describeWindow(w window.Window) string {
	iw, ok := w.(window.IntervalWindow)
	if !ok {
		return fmt.Sprintf("%v", w)
	}
	return fmt.Sprintf("[%v, %v)", formatSec(iw.Start), formatSec(iw.End))
}

func formatSec(t mtime.Time) string {
	s := strconv.FormatFloat(t.Seconds(), 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// sumIntsFn adds int values.
type sumIntsFn struct{}

func (f *sumIntsFn) CreateAccumulator() interface{} {
	return 0
}

func (f *sumIntsFn) AddInput(accum, value interface{}) interface{} {
	return accum.(int) + value.(int)
}

func (f *sumIntsFn) MergeAccumulators(a, b interface{}) interface{} {
	return a.(int) + b.(int)
}

func (f *sumIntsFn) ExtractOutput(accum interface{}) interface{} {
	return accum
}
