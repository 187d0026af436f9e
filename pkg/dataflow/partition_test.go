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
	"testing"

	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/testing/passert"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/testing/ptest"
)

func TestPartition(t *testing.T) {
	p, s := ptest.Create()
	col := dataflow.Create(s, 1, 2, 3, 4, 5)
	parts := dataflow.Partition(s, 2, func(v interface{}) int {
		return v.(int) % 2
	}, col)

	passert.Equals(s, parts[0], 2, 4)
	passert.Equals(s, parts[1], 1, 3, 5)
	ptest.RunAndValidate(t, p)
}

func TestPartitionOutOfRange(t *testing.T) {
	p, s := ptest.Create()
	col := dataflow.Create(s, 1)
	dataflow.Partition(s, 2, func(v interface{}) int { return 5 }, col)
	if err := ptest.Run(p); err == nil {
		t.Fatalf("out-of-range partition succeeded, want error")
	}
}

func TestPartitionInvalidCount(t *testing.T) {
	_, s := ptest.Create()
	col := dataflow.Create(s, 1)
	if _, err := dataflow.TryPartition(s, 0, func(v interface{}) int { return 0 }, col); err == nil {
		t.Fatalf("zero partitions succeeded, want error")
	}
}
