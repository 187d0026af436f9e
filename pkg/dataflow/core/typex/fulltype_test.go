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

package typex

import "testing"

func TestIsEqual(t *testing.T) {
	tests := []struct {
		a, b FullType
		want bool
	}{
		{New(IntType), New(IntType), true},
		{New(IntType), New(StringType), false},
		{New(IntType), Any, false},
		{Any, Any, true},
		{NewKV(New(StringType), New(IntType)), NewKV(New(StringType), New(IntType)), true},
		{NewKV(New(StringType), New(IntType)), NewKV(New(IntType), New(IntType)), false},
		{NewKV(New(StringType), New(IntType)), NewGBK(New(StringType), New(IntType)), false},
		{NewGBK(Any, Any), NewGBK(Any, Any), true},
	}
	for _, test := range tests {
		if got := IsEqual(test.a, test.b); got != test.want {
			t.Errorf("IsEqual(%v, %v) = %v, want %v", test.a, test.b, got, test.want)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		t    FullType
		want string
	}{
		{New(IntType), "int"},
		{Any, "any"},
		{NewKV(New(IntType), New(StringType)), "KV<int,string>"},
		{NewGBK(New(StringType), Any), "GBK<string,any>"},
	}
	for _, test := range tests {
		if got := test.t.String(); got != test.want {
			t.Errorf("String() = %v, want %v", got, test.want)
		}
	}
}

func TestPredicates(t *testing.T) {
	kv := NewKV(Any, Any)
	if !IsKV(kv) || IsGBK(kv) || IsAny(kv) {
		t.Errorf("NewKV misclassified: IsKV=%v IsGBK=%v IsAny=%v", IsKV(kv), IsGBK(kv), IsAny(kv))
	}
	gbk := NewGBK(Any, Any)
	if !IsGBK(gbk) || IsKV(gbk) {
		t.Errorf("NewGBK misclassified: IsGBK=%v IsKV=%v", IsGBK(gbk), IsKV(gbk))
	}
	if !IsAny(Any) {
		t.Error("IsAny(Any) = false, want true")
	}
}
