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
	"context"
	"strconv"

	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/internal/errors"
)

// PartitionFn assigns an element to one of n partitions.
type PartitionFn func(element interface{}) int

// TryPartition splits the collection into n collections by the given
// function. It is built as a multi-output ParDo with one integer tag per
// partition. A partition index outside [0,n) fails the pipeline at
// execution time.
func TryPartition(s Scope, n int, f PartitionFn, col PCollection) ([]PCollection, error) {
	if n <= 0 {
		return nil, errors.Errorf("partition count must be positive: %v", n)
	}
	var tags []string
	for i := 0; i < n; i++ {
		tags = append(tags, strconv.Itoa(i))
	}
	t, err := TryParDoOutputs(s, &partitionFn{N: n, F: f}, col, tags)
	if err != nil {
		return nil, err
	}
	var ret []PCollection
	for i := 0; i < n; i++ {
		part, err := t.TryGet(i)
		if err != nil {
			return nil, err
		}
		ret = append(ret, part)
	}
	return ret, nil
}

// Partition inserts a Partition transform into the pipeline. It panics if
// the inputs are invalid.
func Partition(s Scope, n int, f PartitionFn, col PCollection) []PCollection {
	ret, err := TryPartition(s, n, f, col)
	if err != nil {
		panic(err)
	}
	return ret
}

type partitionFn struct {
	N int
	F PartitionFn
}

func (f *partitionFn) ProcessElement(ctx context.Context, pc ProcessContext) error {
	n := f.F(pc.Element())
	if n < 0 || n >= f.N {
		return errors.Errorf("partition(%v) = %v, want [0,%v)", pc.Element(), n, f.N)
	}
	pc.EmitTagged(strconv.Itoa(n), pc.Element())
	return nil
}
