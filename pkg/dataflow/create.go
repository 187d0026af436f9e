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
	"reflect"

	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/core/typex"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/internal/errors"
)

// Create inserts a fixed non-empty set of values into the pipeline. The
// values are emitted in the global window at the minimum timestamp. The
// collection carries the common dynamic type of the values, or the Any
// marker if they differ.
func Create(s Scope, values ...interface{}) PCollection {
	ret, err := TryCreate(s, values...)
	if err != nil {
		panic(err)
	}
	return ret
}

// CreateList inserts a fixed set of values into the pipeline from a slice or
// array. Unlike Create, it accepts an empty input.
func CreateList(s Scope, list interface{}) PCollection {
	var values []interface{}
	v := reflect.ValueOf(list)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		panic(errors.Errorf("create: not a slice or array: %v", v.Kind()))
	}
	for i := 0; i < v.Len(); i++ {
		values = append(values, v.Index(i).Interface())
	}
	ret, err := tryCreateList(s, values)
	if err != nil {
		panic(err)
	}
	return ret
}

// TryCreate inserts a fixed non-empty set of values into the pipeline.
func TryCreate(s Scope, values ...interface{}) (PCollection, error) {
	if len(values) == 0 {
		return PCollection{}, errors.New("create: no values")
	}
	return tryCreateList(s, values)
}

func tryCreateList(s Scope, values []interface{}) (PCollection, error) {
	imp := Impulse(s)
	return TryParDo(s, &createFn{Values: values, T: commonType(values)}, imp)
}

func commonType(values []interface{}) typex.FullType {
	if len(values) == 0 {
		return typex.Any
	}
	t := typex.NewOf(values[0])
	for _, v := range values[1:] {
		if !typex.IsEqual(t, typex.NewOf(v)) {
			return typex.Any
		}
	}
	return t
}

// createFn emits the stored values for each (single) impulse.
type createFn struct {
	Values []interface{}
	T      typex.FullType
}

func (c *createFn) ProcessElement(ctx context.Context, pc ProcessContext) error {
	for _, v := range c.Values {
		pc.Emit(v)
	}
	return nil
}

func (c *createFn) OutputType() typex.FullType {
	return c.T
}
