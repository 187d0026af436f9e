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

// Package ptest contains utilities for pipeline unit tests.
package ptest

import (
	"context"
	"flag"
	"testing"

	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow"

	// The direct runner is used unless the runner flag says otherwise.
	_ "github.com/CSberger/DataflowPythonSDK/pkg/dataflow/runners/direct"
)

// Runner is a flag that sets which runner pipelines under test will use.
var Runner = flag.String("runner", "direct", "Pipeline runner.")

func getRunner() string {
	r := *Runner
	if r == "" {
		r = "direct"
	}
	return r
}

// Create creates a pipeline and its root scope.
func Create() (*dataflow.Pipeline, dataflow.Scope) {
	p := dataflow.NewPipeline()
	return p, p.Root()
}

// CreateList creates a pipeline with a collection of the given values.
func CreateList(values interface{}) (*dataflow.Pipeline, dataflow.Scope, dataflow.PCollection) {
	p := dataflow.NewPipeline()
	s := p.Root()
	return p, s, dataflow.CreateList(s, values)
}

// Run runs the pipeline on the runner selected by the flag.
func Run(p *dataflow.Pipeline) error {
	_, err := dataflow.Run(context.Background(), getRunner(), p)
	return err
}

// RunWithResult runs the pipeline and returns the result, which gives
// access to the materialized collections.
func RunWithResult(p *dataflow.Pipeline) (dataflow.Result, error) {
	return dataflow.Run(context.Background(), getRunner(), p)
}

// RunAndValidate runs the pipeline and fails the test on error.
func RunAndValidate(t *testing.T, p *dataflow.Pipeline) {
	t.Helper()
	if err := Run(p); err != nil {
		t.Fatalf("pipeline failed: %v", err)
	}
}

// Main is an implementation of testing's TestMain to permit testing
// pipelines on runners other than the direct runner.
//
// To enable this behavior, _test files must include a TestMain:
//
//	func TestMain(m *testing.M) {
//		ptest.Main(m)
//	}
func Main(m *testing.M) {
	flag.Parse()
	m.Run()
}
