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

	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/internal/errors"
)

// Result is the result of executing a pipeline.
type Result interface {
	// JobID returns the unique id assigned to the executed job.
	JobID() string
	// Contents returns the computed elements of the given collection, if
	// the runner materialized it, and nil otherwise.
	Contents(col PCollection) []interface{}
}

// RunnerFunc executes the given pipeline.
type RunnerFunc func(ctx context.Context, p *Pipeline) (Result, error)

var runners = make(map[string]RunnerFunc)

// RegisterRunner associates the name with the runner, such that Run of that
// name uses the runner. Intended to be called in init().
func RegisterRunner(name string, fn RunnerFunc) {
	if _, ok := runners[name]; ok {
		panic(errors.Errorf("runner %v already defined", name))
	}
	runners[name] = fn
}

// Run executes the pipeline using the runner registered under the given
// name. It blocks until the job completes.
func Run(ctx context.Context, runner string, p *Pipeline) (Result, error) {
	fn, ok := runners[runner]
	if !ok {
		return nil, errors.Errorf("runner %v not registered; forgot to import it?", runner)
	}
	return fn(ctx, p)
}
