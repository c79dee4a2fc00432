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

package class

import (
	"fmt"
	"reflect"
	"unsafe"

	"dirpx.dev/rfield/apis"
	uref "dirpx.dev/rfield/utils/reflect"
	"dirpx.dev/rfield/value"
)

// Declarer collects the field declarations of a class of Go type C while
// the class initializes. It is only valid inside a Declare callback.
type Declarer[C any] struct {
	class *Class
	table *table
	env   environment
	self  func(apis.Object) (*C, bool)
}

// Class returns the class being declared.
func (d *Declarer[C]) Class() *Class { return d.class }

// Config returns the configuration the class is initialized with.
func (d *Declarer[C]) Config() apis.Config { return d.env.cfg }

// fail reports a registration error: a panic in strict mode, a warning
// otherwise. The offending declaration is dropped.
func (d *Declarer[C]) fail(err error) {
	if d.env.cfg.Strict {
		panic(err)
	}
	log.Warningf("%v; field dropped", err)
}

// Field declares a field whose descriptor is resolved from T.
// loc must return the address of the field's storage inside x.
func Field[C, T any](d *Declarer[C], name string, loc func(x *C) *T) {
	t := reflect.TypeFor[T]()
	var desc apis.Value
	if d.env.res != nil {
		desc = d.env.res.ResolveType(t, d.env.cfg)
	}
	if desc == nil {
		d.fail(fmt.Errorf("%w: %s.%s (%s)", ErrUnresolvedType, d.class.name, name, t))
		return
	}
	FieldOf(d, name, desc, loc)
}

// FieldOf declares a field with an explicit descriptor, bypassing the
// resolver. desc must describe T.
func FieldOf[C, T any](d *Declarer[C], name string, desc apis.Value, loc func(x *C) *T) {
	if name == "" {
		d.fail(fmt.Errorf("%w: %s", ErrEmptyFieldName, d.class.name))
		return
	}
	t := reflect.TypeFor[T]()
	if desc == nil || desc.Kind() == apis.KindNone {
		d.fail(fmt.Errorf("%w: %s.%s (%s)", ErrUnresolvedType, d.class.name, name, t))
		return
	}
	if desc.Type() != t {
		d.fail(fmt.Errorf("%w: %s.%s is %s, descriptor is for %v", ErrDescriptorMismatch, d.class.name, name, t, desc.Type()))
		return
	}
	if loc == nil {
		d.fail(fmt.Errorf("%w: %s.%s has no accessor", ErrUnresolvedType, d.class.name, name))
		return
	}

	var zero C
	off := offsetOf(unsafe.Pointer(&zero), unsafe.Sizeof(zero), func() unsafe.Pointer {
		return unsafe.Pointer(loc(&zero))
	})
	self := d.self
	d.table.add(&field{
		name:   name,
		offset: off,
		value:  desc,
		owner:  d.class,
		locate: func(o apis.Object) (any, bool) {
			x, ok := self(o)
			if !ok {
				return nil, false
			}
			p := loc(x)
			if p == nil {
				return nil, false
			}
			return p, true
		},
	})
}

// Ref declares a reference field whose declared class is given
// explicitly. R is an interface implying apis.Object or a pointer to a
// reflectable struct; use it when R is not bound to a class in the
// registry (e.g. a field of type apis.Object).
func Ref[C, R any](d *Declarer[C], name string, declared apis.Class, loc func(x *C) *R) {
	t := reflect.TypeFor[R]()
	if uref.IsNil(declared) || !uref.IsReference(t) {
		d.fail(fmt.Errorf("%w: %s.%s (%s) is not a reference to a reflectable class", ErrUnresolvedType, d.class.name, name, t))
		return
	}
	FieldOf(d, name, value.ObjectRef(declared, t), loc)
}
