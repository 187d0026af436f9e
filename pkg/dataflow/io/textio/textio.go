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

// Package textio contains transforms for reading and writing local text
// files, one element per line.
package textio

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/core/typex"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/internal/errors"
	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/log"
)

// Read reads a set of files indicated by the glob pattern and returns the
// lines as a PCollection<string>. The pattern is expanded at execution time;
// matching no files is an error.
func Read(s dataflow.Scope, glob string) dataflow.PCollection {
	s = s.Scope("textio.Read")
	imp := dataflow.Impulse(s)
	return dataflow.ParDo(s, &readFn{Glob: glob}, imp)
}

type readFn struct {
	Glob string
}

func (f *readFn) OutputType() typex.FullType {
	return typex.New(typex.StringType)
}

func (f *readFn) ProcessElement(ctx context.Context, pc dataflow.ProcessContext) error {
	files, err := filepath.Glob(f.Glob)
	if err != nil {
		return errors.Wrapf(err, "invalid pattern %v", f.Glob)
	}
	if len(files) == 0 {
		return errors.Errorf("no files matched %v", f.Glob)
	}
	for _, name := range files {
		log.Infof(ctx, "reading from %v", name)
		if err := readLines(name, pc); err != nil {
			return err
		}
	}
	return nil
}

func readLines(name string, pc dataflow.ProcessContext) error {
	fd, err := os.Open(name)
	if err != nil {
		return err
	}
	defer fd.Close()

	sc := bufio.NewScanner(fd)
	sc.Buffer(nil, 1<<20)
	for sc.Scan() {
		pc.Emit(sc.Text())
	}
	return sc.Err()
}

// Write writes a PCollection<string> to the given file, one element per
// line. The file is written whole when the bundle completes; element order
// is not specified.
func Write(s dataflow.Scope, filename string, col dataflow.PCollection) {
	s = s.Scope("textio.Write")
	dataflow.ParDo0(s, &writeFn{Filename: filename}, col)
}

type writeFn struct {
	Filename string

	lines []string
}

func (f *writeFn) StartBundle(ctx context.Context) error {
	f.lines = nil
	return nil
}

func (f *writeFn) ProcessElement(ctx context.Context, pc dataflow.ProcessContext) error {
	f.lines = append(f.lines, fmt.Sprintf("%v", pc.Element()))
	return nil
}

func (f *writeFn) FinishBundle(ctx context.Context) error {
	log.Infof(ctx, "writing %v lines to %v", len(f.lines), f.Filename)
	fd, err := os.Create(f.Filename)
	if err != nil {
		return err
	}
	defer fd.Close()

	w := bufio.NewWriter(fd)
	for _, line := range f.lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return w.Flush()
}
