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

// Package direct contains the direct runner, which executes the entire
// pipeline in memory, one transform at a time. It is the runner of choice
// for tests and small local jobs.
package direct

import (
	"context"

	"github.com/google/uuid"

	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/core/exec"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/internal/errors"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/log"
)

func init() {
	dataflow.RegisterRunner("direct", Execute)
}

// Run executes the pipeline with the direct runner.
func Run(ctx context.Context, p *dataflow.Pipeline) (dataflow.Result, error) {
	return Execute(ctx, p)
}

// Execute builds an execution plan from the pipeline and runs it to
// completion. Every collection is materialized and available on the result.
func Execute(ctx context.Context, p *dataflow.Pipeline) (dataflow.Result, error) {
	edges, _, err := p.Build()
	if err != nil {
		return nil, errors.Wrap(err, "invalid pipeline")
	}

	id := uuid.NewString()
	log.Infof(ctx, "executing job %v on the direct runner", id)
	plan := exec.NewPlan(edges)
	if err := plan.Execute(ctx); err != nil {
		return nil, errors.Wrapf(err, "job %v failed", id)
	}
	return &result{id: id, plan: plan}, nil
}

type result struct {
	id   string
	plan *exec.Plan
}

func (r *result) JobID() string {
	return r.id
}

func (r *result) Contents(col dataflow.PCollection) []interface{} {
	if !col.IsValid() {
		return nil
	}
	return exec.Elements(r.plan.Get(col.Node().ID()))
}
