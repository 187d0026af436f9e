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

// Package typex contains the declared element types of collections. Every
// collection carries a FullType: a concrete Go type, a KV or grouped
// composite, or the explicit Any marker when the type is not statically
// known. The types are used for construction-time validation only; they
// impose no runtime representation.
package typex

import (
	"fmt"
	"reflect"

	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/core/graph/mtime"
)

// EventTime is the event time of an element.
type EventTime = mtime.Time

// Kind classifies a FullType.
type Kind int

const (
	// AnyKind marks a statically unknown element type.
	AnyKind Kind = iota
	// ConcreteKind is a plain Go type, such as int or string.
	ConcreteKind
	// KVKind is a two-part key/value entry.
	KVKind
	// GBKKind is the result of grouping a KV collection: a key with all of
	// its values in a window.
	GBKKind
)

// FullType is the declared element type of a collection. The zero value is
// the Any marker.
type FullType struct {
	kind       Kind
	t          reflect.Type // ConcreteKind only
	components []FullType   // KVKind, GBKKind
}

// Any is the explicit marker for a statically unknown element type.
var Any = FullType{kind: AnyKind}

// New returns the FullType for a concrete Go type.
func New(t reflect.Type) FullType {
	if t == nil {
		return Any
	}
	return FullType{kind: ConcreteKind, t: t}
}

// NewOf returns the FullType of the given value's dynamic type.
func NewOf(value interface{}) FullType {
	if value == nil {
		return Any
	}
	return New(reflect.TypeOf(value))
}

// NewKV returns the KV composite of the given key and value types.
func NewKV(k, v FullType) FullType {
	return FullType{kind: KVKind, components: []FullType{k, v}}
}

// NewGBK returns the grouped composite of the given key and value types.
func NewGBK(k, v FullType) FullType {
	return FullType{kind: GBKKind, components: []FullType{k, v}}
}

// Kind returns the kind of the type.
func (t FullType) Kind() Kind {
	return t.kind
}

// Type returns the underlying Go type for a concrete FullType and nil
// otherwise.
func (t FullType) Type() reflect.Type {
	return t.t
}

// Components returns the key and value types of a KV or GBK composite.
func (t FullType) Components() []FullType {
	return t.components
}

// IsAny returns true iff the type is the Any marker.
func IsAny(t FullType) bool {
	return t.kind == AnyKind
}

// IsKV returns true iff the type is a KV composite.
func IsKV(t FullType) bool {
	return t.kind == KVKind
}

// IsGBK returns true iff the type is a grouped composite.
func IsGBK(t FullType) bool {
	return t.kind == GBKKind
}

// IsEqual returns true iff the types are structurally identical. The Any
// marker is equal only to itself.
func IsEqual(a, b FullType) bool {
	if a.kind != b.kind || a.t != b.t || len(a.components) != len(b.components) {
		return false
	}
	for i := range a.components {
		if !IsEqual(a.components[i], b.components[i]) {
			return false
		}
	}
	return true
}

func (t FullType) String() string {
	switch t.kind {
	case AnyKind:
		return "any"
	case ConcreteKind:
		return t.t.String()
	case KVKind:
		return fmt.Sprintf("KV<%v,%v>", t.components[0], t.components[1])
	case GBKKind:
		return fmt.Sprintf("GBK<%v,%v>", t.components[0], t.components[1])
	default:
		panic(fmt.Sprintf("invalid type kind: %v", t.kind))
	}
}
