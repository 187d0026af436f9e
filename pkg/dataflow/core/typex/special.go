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

package typex

import "reflect"

// Convenience Go types for declaring collection element types.
var (
	BoolType      = reflect.TypeOf((*bool)(nil)).Elem()
	IntType       = reflect.TypeOf((*int)(nil)).Elem()
	Int64Type     = reflect.TypeOf((*int64)(nil)).Elem()
	Float64Type   = reflect.TypeOf((*float64)(nil)).Elem()
	StringType    = reflect.TypeOf((*string)(nil)).Elem()
	ByteSliceType = reflect.TypeOf((*[]byte)(nil)).Elem()
)

// KV is the runtime representation of a two-part key/value element. The key
// must be Go-comparable if the element is later grouped.
type KV struct {
	Key   interface{}
	Value interface{}
}
