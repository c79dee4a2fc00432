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
	"iter"
	"slices"

	"dirpx.dev/rfield/apis"
)

// field is a field declared directly on its owning class.
type field struct {
	name   string
	offset uintptr
	value  apis.Value
	owner  apis.Class
	locate func(apis.Object) (any, bool)
}

// Ensure field implements apis.Field.
var _ apis.Field = (*field)(nil)

func (f *field) Name() string      { return f.name }
func (f *field) Offset() uintptr   { return f.offset }
func (f *field) Value() apis.Value { return f.value }
func (f *field) Kind() apis.Kind   { return f.value.Kind() }
func (f *field) Owner() apis.Class { return f.owner }
func (f *field) String() string    { return f.owner.Name() + "." + f.name }

func (f *field) Locate(obj apis.Object) (any, bool) {
	return f.locate(obj)
}

// inherited rebinds a parent field onto a subclass: the subclass instance
// is upcast to its embedded parent before the parent field locates it.
type inherited struct {
	apis.Field
	owner  apis.Class
	offset uintptr
	upcast func(apis.Object) (apis.Object, bool)
}

func (f *inherited) Owner() apis.Class { return f.owner }
func (f *inherited) Offset() uintptr   { return f.offset }
func (f *inherited) String() string    { return f.owner.Name() + "." + f.Name() }

func (f *inherited) Locate(obj apis.Object) (any, bool) {
	p, ok := f.upcast(obj)
	if !ok {
		return nil, false
	}
	return f.Field.Locate(p)
}

// Origin returns the class that declared f, looking through inheritance.
// For fields not built by this package it returns f.Owner().
func Origin(f apis.Field) apis.Class {
	for {
		in, ok := f.(*inherited)
		if !ok {
			return f.Owner()
		}
		f = in.Field
	}
}

// table is the ordered field table of one class. It is only mutated while
// the owning class initializes.
type table struct {
	owner  *Class
	strict bool
	order  []apis.Field
	index  map[string]int
}

// Ensure table implements apis.FieldTable.
var _ apis.FieldTable = (*table)(nil)

var emptyTable = &table{index: map[string]int{}}

func newTable(owner *Class, strict bool) *table {
	return &table{owner: owner, strict: strict, index: map[string]int{}}
}

// add appends f. A name that is already present is a registration error:
// strict tables panic, lenient ones drop the old entry and append f, so a
// name never appears twice.
func (t *table) add(f apis.Field) {
	name := f.Name()
	if i, dup := t.index[name]; dup {
		err := fmt.Errorf("%w: %s.%s", ErrDuplicateField, t.owner.Name(), name)
		if t.strict {
			panic(err)
		}
		log.Warningf("%v; previous declaration replaced", err)
		t.order = slices.Delete(t.order, i, i+1)
		t.reindex()
	}
	t.index[name] = len(t.order)
	t.order = append(t.order, f)
}

func (t *table) reindex() {
	clear(t.index)
	for i, f := range t.order {
		t.index[f.Name()] = i
	}
}

// Len returns the number of fields.
func (t *table) Len() int { return len(t.order) }

// At returns the i-th field in declaration order, or nil if i is out of range.
func (t *table) At(i int) apis.Field {
	if i < 0 || i >= len(t.order) {
		return nil
	}
	return t.order[i]
}

// Lookup returns the field named name.
func (t *table) Lookup(name string) (apis.Field, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.order[i], true
}

// Names returns the field names in declaration order.
func (t *table) Names() []string {
	out := make([]string, len(t.order))
	for i, f := range t.order {
		out[i] = f.Name()
	}
	return out
}

// All iterates the fields in declaration order.
func (t *table) All() iter.Seq[apis.Field] {
	return func(yield func(apis.Field) bool) {
		for _, f := range t.order {
			if !yield(f) {
				return
			}
		}
	}
}
