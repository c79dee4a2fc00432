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

// NewObjectStrategy creates an apis.Strategy that maps a struct type
// registered in reg to an object (held by value) descriptor.
func NewObjectStrategy(reg apis.Registry) apis.Strategy {
	return &objectStrategy{reg: reg}
}

// objectStrategy consults a provided apis.Registry.
type objectStrategy struct {
	reg apis.Registry
}

// Ensure objectStrategy implements apis.Strategy.
var _ apis.Strategy = (*objectStrategy)(nil)

// TryResolveType handles registered struct types.
func (s *objectStrategy) TryResolveType(t reflect.Type, _ apis.Resolver, _ apis.Config) (apis.Value, bool) {
	if t == nil || s.reg == nil || t.Kind() != reflect.Struct {
		return nil, false
	}
	c, ok := s.reg.Lookup(t)
	if !ok || c.Type() != t {
		return nil, false
	}
	return value.Object(c), true
}
