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
	"testing"
	"time"

	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/core/graph/mtime"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/core/graph/window"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/core/typex"
)

// concatFn records fold order, so tests can tell sharding happened.
type concatFn struct{}

func (f *concatFn) CreateAccumulator() interface{} {
	return ""
}

func (f *concatFn) AddInput(accum, value interface{}) interface{} {
	return accum.(string) + value.(string)
}

func (f *concatFn) MergeAccumulators(a, b interface{}) interface{} {
	return a.(string) + b.(string)
}

func (f *concatFn) ExtractOutput(accum interface{}) interface{} {
	return accum.(string)
}

func TestFoldShardsSmallInput(t *testing.T) {
	got := foldShards(&concatFn{}, []interface{}{"a", "b"})
	if got != "ab" {
		t.Errorf("foldShards = %v, want ab; small inputs must fold in order", got)
	}
}

// TestFoldShardsSharded verifies that larger inputs are folded through
// several accumulators: every element appears exactly once, even though the
// fold order differs from the input order.
func TestFoldShardsSharded(t *testing.T) {
	values := []interface{}{"a", "b", "c", "d", "e", "f", "g"}
	got := foldShards(&concatFn{}, values).(string)

	if len(got) != len(values) {
		t.Fatalf("foldShards produced %q, want a permutation of abcdefg", got)
	}
	seen := map[rune]int{}
	for _, r := range got {
		seen[r]++
	}
	for _, v := range values {
		if seen[rune(v.(string)[0])] != 1 {
			t.Errorf("foldShards produced %q; %v must appear exactly once", got, v)
		}
	}
	if got == "abcdefg" {
		t.Errorf("foldShards folded in input order; sharding should reorder the fold")
	}
}

func TestGroupByKeyOrder(t *testing.T) {
	in := []FullValue{
		kvAt("b", 1, 0),
		kvAt("a", 2, 0),
		kvAt("b", 3, 0),
	}
	groups, keys, err := groupByKey(in)
	if err != nil {
		t.Fatalf("groupByKey: %v", err)
	}
	if len(keys) != 2 || keys[0] != "b" || keys[1] != "a" {
		t.Errorf("keys = %v, want first-seen order [b a]", keys)
	}
	if len(groups["b"]) != 2 || groups["b"][0].Elm != 1 || groups["b"][1].Elm != 3 {
		t.Errorf("groups[b] = %v, want values 1, 3 in order", groups["b"])
	}
}

func TestGroupByKeyNonKV(t *testing.T) {
	if _, _, err := groupByKey([]FullValue{{Elm: "plain"}}); err == nil {
		t.Fatal("groupByKey succeeded on a non-KV element")
	}
}

func TestBucketByWindowMerging(t *testing.T) {
	sessions := window.NewSessions(10 * time.Second)
	elms := []FullValue{
		at(1, 1*time.Second, sessions),
		at(2, 5*time.Second, sessions),
		at(3, 40*time.Second, sessions),
	}
	buckets, order := bucketByWindow(elms, true)

	if len(order) != 2 {
		t.Fatalf("bucketByWindow produced %v windows, want 2: %v", len(order), order)
	}
	want := window.IntervalWindow{Start: mtime.FromDuration(1 * time.Second), End: mtime.FromDuration(15 * time.Second)}
	if !order[0].Equals(want) {
		t.Errorf("merged window = %v, want %v", order[0], want)
	}
	if got := buckets[order[0]]; len(got) != 2 {
		t.Errorf("merged bucket = %v, want the two session elements", got)
	}
}

func TestBucketByWindowNonMerging(t *testing.T) {
	fixed := window.NewFixedWindows(10 * time.Second)
	elms := []FullValue{
		at(1, 1*time.Second, fixed),
		at(2, 5*time.Second, fixed),
		at(3, 40*time.Second, fixed),
	}
	buckets, order := bucketByWindow(elms, false)

	if len(order) != 2 {
		t.Fatalf("bucketByWindow produced %v windows, want 2: %v", len(order), order)
	}
	if got := buckets[order[0]]; len(got) != 2 {
		t.Errorf("first bucket = %v, want two elements", got)
	}
}

func kvAt(key string, value interface{}, sec int) FullValue {
	return FullValue{
		Elm:       typex.KV{Key: key, Value: value},
		Timestamp: mtime.FromSeconds(float64(sec)),
		Windows:   window.SingleGlobalWindow,
	}
}

func at(value interface{}, offset time.Duration, fn *window.Fn) FullValue {
	ts := mtime.FromDuration(offset)
	return FullValue{Elm: value, Timestamp: ts, Windows: fn.AssignWindows(ts)}
}
