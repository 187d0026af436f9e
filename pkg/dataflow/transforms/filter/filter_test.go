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

package filter

import (
	"testing"

	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/testing/passert"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/testing/ptest"
)

func TestMain(m *testing.M) {
	ptest.Main(m)
}

func isOdd(v interface{}) bool {
	return v.(int)%2 == 1
}

func TestInclude(t *testing.T) {
	p, s, col := ptest.CreateList([]int{1, 2, 3, 4, 5})
	passert.Equals(s, Include(s, col, isOdd), 1, 3, 5)
	ptest.RunAndValidate(t, p)
}

func TestExclude(t *testing.T) {
	p, s, col := ptest.CreateList([]int{1, 2, 3, 4, 5})
	passert.Equals(s, Exclude(s, col, isOdd), 2, 4)
	ptest.RunAndValidate(t, p)
}

func TestIncludeNone(t *testing.T) {
	p, s, col := ptest.CreateList([]int{2, 4})
	passert.Empty(s, Include(s, col, isOdd))
	ptest.RunAndValidate(t, p)
}

func TestFilterKV(t *testing.T) {
	p, s, col := ptest.CreateList([]dataflow.KV{
		{Key: "a", Value: 1},
		{Key: "b", Value: 9},
	})
	big := Include(s, col, func(v interface{}) bool {
		return v.(dataflow.KV).Value.(int) > 5
	})
	passert.Equals(s, big, dataflow.KV{Key: "b", Value: 9})
	ptest.RunAndValidate(t, p)
}
