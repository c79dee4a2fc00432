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

package rfield

import (
	"errors"
	"fmt"
	"reflect"

	"dirpx.dev/rfield/apis"
	"dirpx.dev/rfield/class"
	uref "dirpx.dev/rfield/utils/reflect"
	"dirpx.dev/rfield/value"
)

var (
	// ErrNilObject is returned when a nil instance is provided.
	ErrNilObject = errors.New("rfield: nil object")
	// ErrNoClass is returned when an instance reports a nil class.
	ErrNoClass = errors.New("rfield: object reports no class")
	// ErrFieldNotFound is returned when a class has no field of that name.
	ErrFieldNotFound = errors.New("rfield: field not found")
	// ErrNotArray is returned when an array operation targets a field of
	// another kind.
	ErrNotArray = errors.New("rfield: field is not an array")
	// ErrTypeMismatch is returned when a value cannot be stored in a field.
	ErrTypeMismatch = errors.New("rfield: value type does not match field")
	// ErrNotDerived is returned when a reference to an instance whose class
	// is not derived from the field's declared class is assigned.
	ErrNotDerived = errors.New("rfield: class is not derived from declared class")
	// ErrClassMismatch is returned when an object is assigned from an
	// instance of a different class.
	ErrClassMismatch = errors.New("rfield: class mismatch")
)

// ClassOf returns the exact class of obj.
func ClassOf(obj apis.Object) (apis.Class, error) {
	if uref.IsNil(obj) {
		return nil, ErrNilObject
	}
	c := obj.ClassType()
	if uref.IsNil(c) {
		return nil, fmt.Errorf("%w: %T", ErrNoClass, obj)
	}
	return c, nil
}

// Lookup returns the globally registered class called name, initialized.
func Lookup(name string) (apis.Class, bool) {
	c, ok := st.Load().reg.LookupName(name)
	if !ok {
		return nil, false
	}
	c.Initialize()
	return c, true
}

// Classes returns every globally registered class, initialized and sorted
// by name.
func Classes() []apis.Class {
	cs := st.Load().reg.Classes()
	for _, c := range cs {
		c.Initialize()
	}
	return cs
}

// IsDerivedFrom reports whether candidate is declared or one of its
// descendants. Both must be non-nil.
func IsDerivedFrom(candidate, declared apis.Class) bool {
	if uref.IsNil(candidate) || uref.IsNil(declared) {
		return false
	}
	return candidate.IsDerivedFrom(declared)
}

// FieldInfo is a flat view of one field, for generic consumers.
type FieldInfo struct {
	Name   string
	Kind   apis.Kind
	Offset uintptr
	// Owner is the class that declared the field; it differs from the
	// described class for inherited fields.
	Owner string
	// Class is the declared class of object and object_ref fields, or of
	// the elements of an array of them.
	Class string
	// Elem is the element kind of array fields.
	Elem apis.Kind
}

// Describe lists the fields of c in table order.
func Describe(c apis.Class) []FieldInfo {
	if uref.IsNil(c) {
		return nil
	}
	fields := c.Fields()
	out := make([]FieldInfo, 0, fields.Len())
	for f := range fields.All() {
		v := f.Value()
		info := FieldInfo{
			Name:   f.Name(),
			Kind:   v.Kind(),
			Offset: f.Offset(),
			Owner:  class.Origin(f).Name(),
		}
		if v.Kind().IsSequence() && v.Elem() != nil {
			info.Elem = v.Elem().Kind()
			v = v.Elem()
		}
		if cls := v.Class(); cls != nil {
			info.Class = cls.Name()
		}
		out = append(out, info)
	}
	return out
}

// field returns the named field of obj and its location.
func field(obj apis.Object, name string) (apis.Field, any, error) {
	c, err := ClassOf(obj)
	if err != nil {
		return nil, nil, err
	}
	f, ok := c.Fields().Lookup(name)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s.%s", ErrFieldNotFound, c.Name(), name)
	}
	loc, ok := f.Locate(obj)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s.%s cannot be located", ErrFieldNotFound, c.Name(), name)
	}
	return f, loc, nil
}

// Get reads the named field of obj. Primitive and array values are
// returned by value; object fields return a pointer to the nested instance
// and object_ref fields the referenced instance (nil if unset).
func Get(obj apis.Object, name string) (any, error) {
	f, loc, err := field(obj, name)
	if err != nil {
		return nil, err
	}
	v, ok := f.Value().Get(loc)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTypeMismatch, f.Name())
	}
	return v, nil
}

// GetAs is Get followed by a type assertion to T.
func GetAs[T any](obj apis.Object, name string) (T, error) {
	var zero T
	v, err := Get(obj, name)
	if err != nil {
		return zero, err
	}
	if v == nil {
		return zero, nil
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s is %T", ErrTypeMismatch, name, v)
	}
	return t, nil
}

// Set writes v to the named field of obj. A rejected value leaves the
// field unchanged.
func Set(obj apis.Object, name string, v any) error {
	f, loc, err := field(obj, name)
	if err != nil {
		return err
	}
	if f.Value().Set(loc, v) {
		return nil
	}
	return rejected(f.Value(), f.Name(), v)
}

// Move is Set for descriptors that support move-assignment (objects): the
// source is reset after the copy. Other kinds behave like Set.
func Move(obj apis.Object, name string, v any) error {
	f, loc, err := field(obj, name)
	if err != nil {
		return err
	}
	desc := f.Value()
	m, ok := desc.(apis.Mover)
	if !ok {
		return Set(obj, name, v)
	}
	if m.Move(loc, v) {
		return nil
	}
	return rejected(desc, f.Name(), v)
}

// rejected explains why desc refused v.
func rejected(desc apis.Value, name string, v any) error {
	o, isObj := v.(apis.Object)
	if !isObj || uref.IsNil(o) || uref.IsNil(o.ClassType()) {
		return fmt.Errorf("%w: %s (%s) given %T", ErrTypeMismatch, name, desc.Kind(), v)
	}
	switch desc.Kind() {
	case apis.KindObject:
		if o.ClassType() != desc.Class() {
			return fmt.Errorf("%w: %s wants %s, got %s", ErrClassMismatch, name, desc.Class().Name(), o.ClassType().Name())
		}
	case apis.KindObjectRef:
		if !value.Derives(o, desc.Class()) {
			return fmt.Errorf("%w: %s wants %s, got %s", ErrNotDerived, name, desc.Class().Name(), o.ClassType().Name())
		}
		if t := desc.Type(); t != nil && t.Kind() == reflect.Pointer {
			return fmt.Errorf("%w: %s is a pointer reference and accepts only %s, got %T", ErrTypeMismatch, name, t, v)
		}
	}
	return fmt.Errorf("%w: %s (%s) given %T", ErrTypeMismatch, name, desc.Kind(), v)
}

// CopyFrom copies src into dst. Both must be instances of the same class.
func CopyFrom(dst, src apis.Object) error {
	return transfer(dst, src, apis.Class.Assign)
}

// MoveFrom copies src into dst and resets src. Both must be instances of
// the same class.
func MoveFrom(dst, src apis.Object) error {
	return transfer(dst, src, apis.Class.Move)
}

func transfer(dst, src apis.Object, op func(apis.Class, apis.Object, apis.Object) bool) error {
	dc, err := ClassOf(dst)
	if err != nil {
		return err
	}
	sc, err := ClassOf(src)
	if err != nil {
		return err
	}
	if dc != sc {
		return fmt.Errorf("%w: %s from %s", ErrClassMismatch, dc.Name(), sc.Name())
	}
	if !op(dc, dst, src) {
		return fmt.Errorf("%w: %s is not copyable", ErrTypeMismatch, dc.Name())
	}
	return nil
}
