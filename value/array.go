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
)

// Array returns the descriptor of a slice of type t whose elements are
// described by elem. It returns None if t is not a slice or elem does not
// describe t's element type.
//
// Elements are addressed through elem, so every element write is subject
// to the same checks as a field of the element's kind (exact class for
// objects, subtype check for references).
func Array(t reflect.Type, elem apis.Value) apis.Sequence {
	if t == nil || t.Kind() != reflect.Slice || elem == nil || elem.Type() != t.Elem() {
		return None
	}
	return array{typ: t, elem: elem}
}

type array struct {
	typ  reflect.Type
	elem apis.Value
}

// Ensure array implements apis.Sequence.
var _ apis.Sequence = array{}

func (a array) Kind() apis.Kind    { return apis.KindArray }
func (a array) Class() apis.Class  { return nil }
func (a array) Elem() apis.Value   { return a.elem }
func (a array) Type() reflect.Type { return a.typ }

// slice returns the settable slice behind loc.
func (a array) slice(loc any) (reflect.Value, bool) {
	rv := reflect.ValueOf(loc)
	if !rv.IsValid() || rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Type().Elem() != a.typ {
		return reflect.Value{}, false
	}
	return rv.Elem(), true
}

// arg converts a slice element into the form elem.Set expects: objects
// are passed by address, everything else by value.
func (a array) arg(e reflect.Value) any {
	if a.elem.Kind() == apis.KindObject {
		return e.Addr().Interface()
	}
	return e.Interface()
}

// Get returns a copy of the slice stored at loc.
func (a array) Get(loc any) (any, bool) {
	s, ok := a.slice(loc)
	if !ok {
		return nil, false
	}
	if s.IsNil() {
		return s.Interface(), true
	}
	out := reflect.MakeSlice(a.typ, s.Len(), s.Len())
	reflect.Copy(out, s)
	return out.Interface(), true
}

// Set replaces the slice at loc with the elements of v, which must have
// the same slice type. Every element is applied through the element
// descriptor into a fresh backing array; loc is only updated if all of
// them are accepted. A nil v clears the slice.
func (a array) Set(loc any, v any) bool {
	s, ok := a.slice(loc)
	if !ok {
		return false
	}
	if v == nil {
		s.SetZero()
		return true
	}
	src := reflect.ValueOf(v)
	if src.Type() != a.typ {
		return false
	}
	n := src.Len()
	fresh := reflect.MakeSlice(a.typ, n, n)
	for i := 0; i < n; i++ {
		if !a.elem.Set(fresh.Index(i).Addr().Interface(), a.arg(src.Index(i))) {
			return false
		}
	}
	s.Set(fresh)
	return true
}

// Len returns the number of elements at loc.
func (a array) Len(loc any) (int, bool) {
	s, ok := a.slice(loc)
	if !ok {
		return 0, false
	}
	return s.Len(), true
}

// Index returns element i as the element descriptor reports it.
func (a array) Index(loc any, i int) (any, bool) {
	el, ok := a.Locate(loc, i)
	if !ok {
		return nil, false
	}
	return a.elem.Get(el)
}

// SetIndex writes v to element i through the element descriptor.
func (a array) SetIndex(loc any, i int, v any) bool {
	el, ok := a.Locate(loc, i)
	if !ok {
		return false
	}
	return a.elem.Set(el, v)
}

// Insert adds an element at i; see apis.Sequence.
func (a array) Insert(loc any, i int, v any) bool {
	s, ok := a.slice(loc)
	if !ok {
		return false
	}
	n := s.Len()
	if i < 0 || i > n {
		i = n
	}
	z := reflect.New(a.typ.Elem())
	if v != nil && !a.elem.Set(z.Interface(), v) {
		return false
	}
	s.Set(reflect.Append(s, z.Elem()))
	if i < n {
		reflect.Copy(s.Slice(i+1, n+1), s.Slice(i, n))
		s.Index(i).Set(z.Elem())
	}
	return true
}

// Remove deletes element i and shifts the tail left.
func (a array) Remove(loc any, i int) bool {
	s, ok := a.slice(loc)
	if !ok {
		return false
	}
	n := s.Len()
	if i < 0 || i >= n {
		return false
	}
	reflect.Copy(s.Slice(i, n-1), s.Slice(i+1, n))
	s.Index(n - 1).SetZero()
	s.SetLen(n - 1)
	return true
}

// Clear zeroes every element and truncates the slice, keeping its
// capacity.
func (a array) Clear(loc any) bool {
	s, ok := a.slice(loc)
	if !ok {
		return false
	}
	s.Clear()
	s.SetLen(0)
	return true
}

// Locate returns a pointer to element i.
func (a array) Locate(loc any, i int) (any, bool) {
	s, ok := a.slice(loc)
	if !ok || i < 0 || i >= s.Len() {
		return nil, false
	}
	return s.Index(i).Addr().Interface(), true
}
