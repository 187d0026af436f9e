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
)

// Impulse emits a single empty []byte into the global window at the minimum
// timestamp. It is the root of every source transform.
func Impulse(s Scope) PCollection {
	return ImpulseValue(s, []byte{})
}

// ImpulseValue emits a single []byte with the given value into the global
// window at the minimum timestamp.
func ImpulseValue(s Scope, value []byte) PCollection {
	if !s.IsValid() {
		panic("invalid scope")
	}
	edge := graph.NewImpulse(s.real, s.scope, value)
	return PCollection{n: edge.Output[0].To}
}
