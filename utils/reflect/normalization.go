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

package reflect

import (
	"errors"
	"reflect"

	"dirpx.dev/rfield/apis"
	"dirpx.dev/rfield/config"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectTypeNotNamed indicates that the provided type (after unwrapping pointers)
	// is not a named type (e.g., anonymous struct, func, interface{}).
	ErrReflectTypeNotNamed = errors.New("reflect: type has no name")
	// ErrReflectNotStruct indicates that the unwrapped type is not a struct.
	ErrReflectNotStruct = errors.New("reflect: type is not a struct")
)

// objectType is the reflect.Type of apis.Object.
var objectType = reflect.TypeFor[apis.Object]()

// Normalize unwraps pointers according to config (MaxUnwrap) and returns
// the named struct type underneath, or an error if none is found.
//
// Unwrapping policy:
//   - ptr -> Elem(), at most MaxUnwrap times
//   - struct with a name -> returned as is
//   - anything else -> ErrReflectNotStruct or ErrReflectTypeNotNamed
//
// If MaxUnwrap <= 0, DefaultMaxUnwrap is used.
func Normalize(t reflect.Type, cfg apis.Config) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	maxUnwrap := cfg.MaxUnwrap
	if maxUnwrap <= 0 {
		maxUnwrap = config.DefaultMaxUnwrap
	}

	for i := 0; i < maxUnwrap && t.Kind() == reflect.Pointer; i++ {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return nil, ErrReflectNotStruct
	}
	if t.Name() == "" {
		return nil, ErrReflectTypeNotNamed
	}
	return t, nil
}

// SliceDepth returns how many slice levels wrap t and the innermost
// non-slice type: []int -> (1, int), [][]T -> (2, T), T -> (0, T).
func SliceDepth(t reflect.Type) (int, reflect.Type) {
	depth := 0
	for t != nil && t.Kind() == reflect.Slice {
		depth++
		t = t.Elem()
	}
	return depth, t
}

// IsReflectable reports whether *t implements apis.Object, i.e. whether
// struct t can back a reflectable class.
func IsReflectable(t reflect.Type) bool {
	if t == nil || t.Kind() != reflect.Struct {
		return false
	}
	return reflect.PointerTo(t).Implements(objectType)
}

// IsReference reports whether t can hold a reference to a reflectable
// instance: an interface type that implies apis.Object, or a pointer to
// a reflectable struct.
func IsReference(t reflect.Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case reflect.Interface:
		return t.Implements(objectType)
	case reflect.Pointer:
		return IsReflectable(t.Elem())
	}
	return false
}

// IsNil reports whether v is nil or a nil pointer, interface, map, slice,
// func or chan wrapped in an interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
