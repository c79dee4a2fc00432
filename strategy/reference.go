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
	uref "dirpx.dev/rfield/utils/reflect"
	"dirpx.dev/rfield/value"
)

// NewReferenceStrategy creates an apis.Strategy that maps reference types
// to object_ref descriptors: pointers to registered structs, and interface
// types bound to a class with Registry.Bind.
func NewReferenceStrategy(reg apis.Registry) apis.Strategy {
	return &referenceStrategy{reg: reg}
}

// referenceStrategy consults a provided apis.Registry.
type referenceStrategy struct {
	reg apis.Registry
}

// Ensure referenceStrategy implements apis.Strategy.
var _ apis.Strategy = (*referenceStrategy)(nil)

// TryResolveType handles *S for registered S, and bound interfaces.
func (s *referenceStrategy) TryResolveType(t reflect.Type, _ apis.Resolver, _ apis.Config) (apis.Value, bool) {
	if t == nil || s.reg == nil || !uref.IsReference(t) {
		return nil, false
	}
	var (
		c  apis.Class
		ok bool
	)
	switch t.Kind() {
	case reflect.Interface:
		c, ok = s.reg.Lookup(t)
	case reflect.Pointer:
		// Only one level of indirection: **S is not a reference.
		c, ok = s.reg.Lookup(t.Elem())
		ok = ok && c.Type() == t.Elem()
	}
	if !ok {
		return nil, false
	}
	return value.ObjectRef(c, t), true
}
