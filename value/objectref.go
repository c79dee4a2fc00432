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

package value

import (
	"reflect"

	"dirpx.dev/rfield/apis"
	uref "dirpx.dev/rfield/utils/reflect"
)

// ObjectRef returns the descriptor of a reference to an instance of class
// c or of any class derived from it. t is the Go type of the reference
// storage: an interface implying apis.Object, or a pointer to a
// reflectable struct. A nil c or t yields an inert descriptor.
//
// Go has no implicit conversion between struct pointers, so a
// pointer-typed reference only ever accepts its exact pointee type.
// Interface-typed references accept any derived instance.
func ObjectRef(c apis.Class, t reflect.Type) apis.Value {
	return objectRef{class: c, typ: t}
}

type objectRef struct {
	class apis.Class
	typ   reflect.Type
}

// Ensure objectRef implements apis.Value.
var _ apis.Value = objectRef{}

func (r objectRef) Kind() apis.Kind    { return apis.KindObjectRef }
func (r objectRef) Class() apis.Class  { return r.class }
func (r objectRef) Elem() apis.Value   { return nil }
func (r objectRef) Type() reflect.Type { return r.typ }

// slot returns the settable reference storage behind loc.
func (r objectRef) slot(loc any) (reflect.Value, bool) {
	if uref.IsNil(r.class) || r.typ == nil {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(loc)
	if !rv.IsValid() || rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Type().Elem() != r.typ {
		return reflect.Value{}, false
	}
	return rv.Elem(), true
}

// Get returns the referenced instance, or a nil value if the reference is
// empty.
func (r objectRef) Get(loc any) (any, bool) {
	s, ok := r.slot(loc)
	if !ok {
		return nil, false
	}
	if s.IsNil() {
		return nil, true
	}
	o, ok := s.Interface().(apis.Object)
	if !ok {
		return nil, false
	}
	return o, true
}

// Set binds the reference to v. A nil v clears it. Otherwise v's exact
// class must be derived from the declared class and v must be assignable
// to the reference type; on failure loc is left as it was.
func (r objectRef) Set(loc any, v any) bool {
	s, ok := r.slot(loc)
	if !ok {
		return false
	}
	if uref.IsNil(v) {
		s.SetZero()
		return true
	}
	o, ok := v.(apis.Object)
	if !ok || !Derives(o, r.class) {
		return false
	}
	vv := reflect.ValueOf(v)
	if !vv.Type().AssignableTo(r.typ) {
		return false
	}
	s.Set(vv)
	return true
}

// Derives reports whether the exact class of o is declared or derived
// from it. It is the gate for every reference assignment.
func Derives(o apis.Object, declared apis.Class) bool {
	if uref.IsNil(o) || uref.IsNil(declared) {
		return false
	}
	c := o.ClassType()
	return !uref.IsNil(c) && c.IsDerivedFrom(declared)
}
