/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package strategy

import (
	"reflect"

	"dirpx.dev/rfield/apis"
	"dirpx.dev/rfield/value"
)

// NewPrimitiveStrategy creates an apis.Strategy that maps the built-in
// primitive types, plus any extra descriptors, by exact type match.
// An extra descriptor replaces a built-in one for the same type.
func NewPrimitiveStrategy(extra ...apis.Value) apis.Strategy {
	table := make(map[reflect.Type]apis.Value, len(extra)+10)
	for _, v := range value.Primitives() {
		table[v.Type()] = v
	}
	for _, v := range extra {
		if v == nil || v.Type() == nil || v.Kind() == apis.KindNone {
			continue
		}
		table[v.Type()] = v
	}
	return primitiveStrategy{table: table}
}

// primitiveStrategy is an immutable exact-match table. Named types such as
// `type Age uint32` do not match uint32; they need an extra descriptor or
// apis.Describer.
type primitiveStrategy struct {
	table map[reflect.Type]apis.Value
}

// Ensure primitiveStrategy implements apis.Strategy.
var _ apis.Strategy = primitiveStrategy{}

// TryResolveType looks t up in the table.
func (s primitiveStrategy) TryResolveType(t reflect.Type, _ apis.Resolver, _ apis.Config) (apis.Value, bool) {
	if t == nil {
		return nil, false
	}
	v, ok := s.table[t]
	return v, ok
}
