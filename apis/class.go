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

package apis

import (
	"iter"
	"reflect"
)

// Object is the capability every reflectable instance provides.
//
// ClassType must report the instance's exact class, never an ancestor.
// It is implemented on the pointer type of the reflectable struct and
// must not dereference the receiver, so it is safe on nil pointers.
type Object interface {
	ClassType() Class
}

// Class describes one reflectable class.
//
// Exactly one Class exists per reflectable type for the lifetime of the
// process. Identity is pointer identity: two Class values are the same
// class iff they compare equal.
type Class interface {
	// Name returns the class name, unique within a Registry.
	Name() string

	// Parent returns the declared superclass, or nil for root classes.
	Parent() Class

	// IsDerivedFrom reports whether other is this class or one of its
	// ancestors. It is false for a nil other.
	IsDerivedFrom(other Class) bool

	// Type returns the Go struct type backing the class.
	Type() reflect.Type

	// Initialize builds the field table once. The parent chain is
	// initialized first. Subsequent calls are no-ops.
	Initialize()

	// Initialized reports whether Initialize has completed.
	Initialized() bool

	// Fields returns the field table, initializing the class if needed.
	Fields() FieldTable

	// New allocates a zero instance of the class.
	New() Object

	// Assign copies src into dst. Both must be instances of exactly this
	// class; anything else is refused without modifying dst.
	Assign(dst, src Object) bool

	// Move is Assign followed by resetting src to its zero value.
	Move(dst, src Object) bool
}

// Field is a named, typed accessor owned by exactly one Class.
type Field interface {
	// Name returns the field name, unique within its table.
	Name() string

	// Offset returns the byte offset of the storage within the owning
	// struct, as observed when the field was declared.
	Offset() uintptr

	// Value returns the descriptor used to read and write the field.
	Value() Value

	// Kind is shorthand for Value().Kind().
	Kind() Kind

	// Owner returns the class whose table holds the field.
	Owner() Class

	// Locate returns the storage location of the field within obj.
	// It reports false when obj is nil or not an instance of Owner.
	Locate(obj Object) (any, bool)
}

// FieldTable is an ordered, name-keyed, read-only view of a class's fields.
// Iteration follows insertion order.
type FieldTable interface {
	Len() int
	At(i int) Field
	Lookup(name string) (Field, bool)
	Names() []string
	All() iter.Seq[Field]
}
