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

// Package filter contains transforms for removing pipeline elements based on
// predicates.
package filter

import (
	"context"

	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow"
)

// Include filters the elements of a PCollection<A> based on the given
// predicate, keeping the elements that it returns true for.
func Include(s dataflow.Scope, col dataflow.PCollection, pred func(interface{}) bool) dataflow.PCollection {
	return dataflow.ParDo(s.Scope("filter.Include"), &filterFn{Pred: pred, Include: true}, col)
}

// Exclude filters the elements of a PCollection<A> based on the given
// predicate, removing the elements that it returns true for.
func Exclude(s dataflow.Scope, col dataflow.PCollection, pred func(interface{}) bool) dataflow.PCollection {
	return dataflow.ParDo(s.Scope("filter.Exclude"), &filterFn{Pred: pred, Include: false}, col)
}

type filterFn struct {
	Pred    func(interface{}) bool
	Include bool
}

func (f *filterFn) ProcessElement(ctx context.Context, pc dataflow.ProcessContext) error {
	if f.Pred(pc.Element()) == f.Include {
		pc.Emit(pc.Element())
	}
	return nil
}
