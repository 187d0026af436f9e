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

package runtime

import "testing"

func newOptions() *Options {
	return &Options{opt: make(map[string]string)}
}

func TestOptionsGetSet(t *testing.T) {
	opt := newOptions()
	opt.Set("a", "1")
	opt.Set("b", "2")

	if got := opt.Get("a"); got != "1" {
		t.Errorf("Get(a) = %v, want 1", got)
	}
	if got := opt.Get("missing"); got != "" {
		t.Errorf("Get(missing) = %q, want empty", got)
	}
}

func TestOptionsExportImport(t *testing.T) {
	opt := newOptions()
	opt.Set("b", "2")

	opt2 := newOptions()
	opt2.Import(opt.Export())
	if got := opt2.Get("b"); got != "2" {
		t.Errorf("Get(b) after export/import = %v, want 2", got)
	}
}

func TestOptionsReadOnlyAfterImport(t *testing.T) {
	opt := newOptions()
	opt.Set("key", "before")
	opt.Import(opt.Export())
	opt.Set("key", "after")

	if got := opt.Get("key"); got != "before" {
		t.Errorf("Get(key) = %v, want before; Set after import must be ignored", got)
	}
}

func TestOptionsImportTwicePanics(t *testing.T) {
	opt := newOptions()
	opt.Import(RawOptions{})

	defer func() {
		if recover() == nil {
			t.Error("second Import did not panic")
		}
	}()
	opt.Import(RawOptions{})
}
