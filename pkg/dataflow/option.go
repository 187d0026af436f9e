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

// Option is an optional value or context to a transform application, such as
// a side input or a combine mode.
type Option interface {
	private()
}

// SideInput provides a view of the given PCollection to the transform in
// addition to its main input. The zero Kind is the iterable view; use the
// As* functions for other views.
type SideInput struct {
	Input PCollection

	kind       sideKind
	def        interface{}
	hasDefault bool
}

type sideKind int

const (
	sideIter sideKind = iota
	sideSingleton
)

func (s SideInput) private() {}

// withoutDefaults marks a global combine as emitting nothing on empty input.
type withoutDefaults struct{}

func (withoutDefaults) private() {}

// WithoutDefaults returns the option that makes a global combine emit
// nothing at all when its input is empty, instead of the combiner applied
// to no values.
func WithoutDefaults() Option {
	return withoutDefaults{}
}

func parseOpts(opts []Option) (sides []SideInput, wod bool) {
	for _, opt := range opts {
		switch o := opt.(type) {
		case SideInput:
			sides = append(sides, o)
		case withoutDefaults:
			wod = true
		default:
			panic("invalid option")
		}
	}
	return sides, wod
}
