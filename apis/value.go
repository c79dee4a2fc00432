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

import "reflect"

// Value describes how to read and write one shape of field storage.
//
// A location is a typed pointer to the storage of a single value
// (for example *uint32, *string, *[]int64, or the address of a nested
// struct). Values are stateless: one instance serves every field and every
// object of the same shape, so implementations must be safe for concurrent
// use. Per-instance serialization of Get/Set is the caller's job.
type Value interface {
	// Kind reports the value kind this descriptor handles.
	Kind() Kind

	// Class returns the declared class for KindObject and KindObjectRef,
	// and nil for every other kind.
	Class() Class

	// Elem returns the element descriptor for sequence kinds, nil otherwise.
	Elem() Value

	// Type returns the Go type of the storage a location points to.
	Type() reflect.Type

	// Get reads the value stored at loc.
	// It reports false if loc is nil, of the wrong type, or the descriptor
	// is inert.
	Get(loc any) (any, bool)

	// Set writes v to loc.
	// It reports false and leaves loc untouched when v is rejected.
	Set(loc any, v any) bool
}

// Sequence is implemented by descriptors of array kinds.
//
// Every index is bounds-checked: an out-of-range index is a failure that
// leaves the sequence unchanged.
type Sequence interface {
	Value

	// Len returns the number of elements stored at loc.
	Len(loc any) (int, bool)

	// Index returns the element at i.
	Index(loc any, i int) (any, bool)

	// SetIndex replaces the element at i through the element descriptor.
	SetIndex(loc any, i int, v any) bool

	// Insert adds an element at i, shifting later elements right.
	// A negative or out-of-range i appends. A nil v inserts the element
	// zero value; otherwise v is applied through the element descriptor
	// and a rejected v leaves the sequence unchanged.
	Insert(loc any, i int, v any) bool

	// Remove deletes the element at i, preserving the order of the rest.
	Remove(loc any, i int) bool

	// Clear removes every element.
	Clear(loc any) bool

	// Locate returns the location of element i so nested descriptors can
	// operate on it directly. Sequences whose elements are not
	// addressable always report false.
	Locate(loc any, i int) (any, bool)
}

// Mover is implemented by descriptors that support move-assignment.
// Move behaves like Set but leaves the source reset to its zero value.
type Mover interface {
	Move(loc any, v any) bool
}

// Describer lets a Go type supply its own value descriptor.
// Resolvers consult it before any built-in mapping.
type Describer interface {
	DescribeValue() Value
}
