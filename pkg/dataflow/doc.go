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

// Package dataflow is an SDK for constructing and executing deferred data
// processing pipelines.
//
// A Pipeline is a directed acyclic graph of transforms over immutable,
// deferred collections. Applying a transform records an edge in the graph
// and returns new deferred collections; no data moves until the pipeline is
// handed to a runner. Elements carry an event timestamp and a set of
// windows, and grouping and combining operate per key and window.
//
// A minimal pipeline:
//
//	p := dataflow.NewPipeline()
//	s := p.Root()
//	lines := textio.Read(s, "input.txt")
//	words := dataflow.ParDo(s, &extractWordsFn{}, lines)
//	counted := stats.CountPerElement(s, words)
//	textio.Write(s, "output.txt", dataflow.ParDo(s, &formatFn{}, counted))
//
//	if _, err := direct.Run(ctx, p); err != nil {
//		log.Exitf(ctx, "pipeline failed: %v", err)
//	}
package dataflow
