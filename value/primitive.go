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

// Storable is the set of Go types that can back a primitive kind.
// Named types with one of these underlying types are accepted too
// (e.g. `type Age uint32`), which lets callers describe their own
// primitive-like types via apis.Describer.
type Storable interface {
	~bool | ~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64 | ~string
}

// Primitive descriptors for the built-in primitive types.
var (
	Bool   = Primitive[bool]()
	Int8   = Primitive[int8]()
	Uint8  = Primitive[uint8]()
	Int16  = Primitive[int16]()
	Uint16 = Primitive[uint16]()
	Int32  = Primitive[int32]()
	Uint32 = Primitive[uint32]()
	Int64  = Primitive[int64]()
	Uint64 = Primitive[uint64]()
	Text   = Primitive[string]()
)

// Primitives returns the built-in primitive descriptors in kind order.
func Primitives() []apis.Value {
	return []apis.Value{Bool, Int8, Uint8, Int16, Uint16, Int32, Uint32, Int64, Uint64, Text}
}

// Primitive returns a descriptor for T. The kind follows T's underlying type.
func Primitive[T Storable]() apis.Value {
	t := reflect.TypeFor[T]()
	return primitive[T]{kind: kindOf(t), typ: t}
}

// primitive reads and writes a *T location. Set is an unconditional
// overwrite; values of any other type, including other integer widths,
// are rejected.
type primitive[T Storable] struct {
	kind apis.Kind
	typ  reflect.Type
}

// Ensure primitive implements apis.Value.
var _ apis.Value = primitive[bool]{}

func (p primitive[T]) Kind() apis.Kind    { return p.kind }
func (p primitive[T]) Class() apis.Class  { return nil }
func (p primitive[T]) Elem() apis.Value   { return nil }
func (p primitive[T]) Type() reflect.Type { return p.typ }

// Get returns the T stored at loc.
func (p primitive[T]) Get(loc any) (any, bool) {
	ptr, ok := loc.(*T)
	if !ok || ptr == nil {
		return nil, false
	}
	return *ptr, true
}

// Set stores v at loc if v is a T.
func (p primitive[T]) Set(loc any, v any) bool {
	ptr, ok := loc.(*T)
	if !ok || ptr == nil {
		return false
	}
	val, ok := v.(T)
	if !ok {
		return false
	}
	*ptr = val
	return true
}

// kindOf maps the underlying reflect.Kind of a Storable type to apis.Kind.
func kindOf(t reflect.Type) apis.Kind {
	switch t.Kind() {
	case reflect.Bool:
		return apis.KindBool
	case reflect.Int8:
		return apis.KindInt8
	case reflect.Uint8:
		return apis.KindUint8
	case reflect.Int16:
		return apis.KindInt16
	case reflect.Uint16:
		return apis.KindUint16
	case reflect.Int32:
		return apis.KindInt32
	case reflect.Uint32:
		return apis.KindUint32
	case reflect.Int64:
		return apis.KindInt64
	case reflect.Uint64:
		return apis.KindUint64
	case reflect.String:
		return apis.KindText
	}
	return apis.KindNone
}
