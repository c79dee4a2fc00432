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
	"fmt"

	"dirpx.dev/rfield/apis"
)

// ArrayRef binds an array field of one instance to its sequence descriptor.
// Every index is bounds-checked; failures are reported as false and leave
// the array unchanged.
type ArrayRef struct {
	field apis.Field
	seq   apis.Sequence
	loc   any
}

// Array returns an ArrayRef for the named array field of obj.
func Array(obj apis.Object, name string) (*ArrayRef, error) {
	f, loc, err := field(obj, name)
	if err != nil {
		return nil, err
	}
	seq, ok := f.Value().(apis.Sequence)
	if !ok || !f.Kind().IsSequence() {
		return nil, fmt.Errorf("%w: %s is %s", ErrNotArray, f.Name(), f.Kind())
	}
	return &ArrayRef{field: f, seq: seq, loc: loc}, nil
}

// Field returns the underlying field.
func (a *ArrayRef) Field() apis.Field { return a.field }

// Elem returns the element descriptor.
func (a *ArrayRef) Elem() apis.Value { return a.seq.Elem() }

// Len returns the number of elements.
func (a *ArrayRef) Len() int {
	n, _ := a.seq.Len(a.loc)
	return n
}

// Get returns element i.
func (a *ArrayRef) Get(i int) (any, bool) {
	return a.seq.Index(a.loc, i)
}

// Set replaces element i.
func (a *ArrayRef) Set(i int, v any) bool {
	return a.seq.SetIndex(a.loc, i, v)
}

// Add inserts v (or the zero element if v is nil) at i. An out-of-range
// i appends.
func (a *ArrayRef) Add(i int, v any) bool {
	return a.seq.Insert(a.loc, i, v)
}

// Append adds v (or the zero element if v is nil) at the end.
func (a *ArrayRef) Append(v any) bool {
	return a.seq.Insert(a.loc, -1, v)
}

// Remove deletes element i.
func (a *ArrayRef) Remove(i int) bool {
	return a.seq.Remove(a.loc, i)
}

// Clear removes every element.
func (a *ArrayRef) Clear() bool {
	return a.seq.Clear(a.loc)
}

// Locate returns the storage of element i, for arrays whose elements are
// addressable.
func (a *ArrayRef) Locate(i int) (any, bool) {
	return a.seq.Locate(a.loc, i)
}
