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

// Package exec contains runtime plan representation and execution. A pipeline
// graph is compiled into a Plan that materializes every collection in memory,
// evaluating one transform at a time in dependency order.
package exec

import (
	"fmt"

	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/core/graph/mtime"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/core/graph/window"
)

// FullValue is one windowed element: the value itself together with its
// event time and assigned windows. KV elements hold a typex.KV value.
type FullValue struct {
	Elm       interface{}
	Timestamp mtime.Time
	Windows   []window.Window
}

func (v FullValue) String() string {
	return fmt.Sprintf("%v [@%v:%v]", v.Elm, v.Timestamp, v.Windows)
}

// Elements returns the bare values of the given windowed elements.
func Elements(list []FullValue) []interface{} {
	var ret []interface{}
	for _, fv := range list {
		ret = append(ret, fv.Elm)
	}
	return ret
}
