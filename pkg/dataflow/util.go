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

// Must returns the input, but panics if err != nil. It is a convenience for
// the Try forms of transforms.
func Must(col PCollection, err error) PCollection {
	if err != nil {
		panic(err)
	}
	return col
}

// MustN returns the inputs, but panics if err != nil.
func MustN(list []PCollection, err error) []PCollection {
	if err != nil {
		panic(err)
	}
	return list
}

// Seq applies the DoFns in order, passing the output of one as the input of
// the next.
func Seq(s Scope, col PCollection, dofns ...DoFn) PCollection {
	cur := col
	for _, fn := range dofns {
		cur = ParDo(s, fn, cur)
	}
	return cur
}
