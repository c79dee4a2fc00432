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
	"slices"

	"dirpx.dev/rfield/apis"
)

// BoolArray is the descriptor of []bool. Its elements are read and
// written by value only; Locate always fails so callers never hold
// element addresses, mirroring packed boolean storage.
var BoolArray apis.Sequence = boolArray{}

type boolArray struct{}

var boolSliceType = reflect.TypeFor[[]bool]()

func (boolArray) Kind() apis.Kind    { return apis.KindBoolArray }
func (boolArray) Class() apis.Class  { return nil }
func (boolArray) Elem() apis.Value   { return Bool }
func (boolArray) Type() reflect.Type { return boolSliceType }

func (boolArray) ptr(loc any) (*[]bool, bool) {
	p, ok := loc.(*[]bool)
	return p, ok && p != nil
}

func (b boolArray) Get(loc any) (any, bool) {
	p, ok := b.ptr(loc)
	if !ok {
		return nil, false
	}
	return slices.Clone(*p), true
}

func (b boolArray) Set(loc any, v any) bool {
	p, ok := b.ptr(loc)
	if !ok {
		return false
	}
	if v == nil {
		*p = nil
		return true
	}
	src, ok := v.([]bool)
	if !ok {
		return false
	}
	*p = slices.Clone(src)
	return true
}

func (b boolArray) Len(loc any) (int, bool) {
	p, ok := b.ptr(loc)
	if !ok {
		return 0, false
	}
	return len(*p), true
}

func (b boolArray) Index(loc any, i int) (any, bool) {
	p, ok := b.ptr(loc)
	if !ok || i < 0 || i >= len(*p) {
		return nil, false
	}
	return (*p)[i], true
}

func (b boolArray) SetIndex(loc any, i int, v any) bool {
	p, ok := b.ptr(loc)
	if !ok || i < 0 || i >= len(*p) {
		return false
	}
	val, ok := v.(bool)
	if !ok {
		return false
	}
	(*p)[i] = val
	return true
}

func (b boolArray) Insert(loc any, i int, v any) bool {
	p, ok := b.ptr(loc)
	if !ok {
		return false
	}
	var val bool
	if v != nil {
		if val, ok = v.(bool); !ok {
			return false
		}
	}
	if i < 0 || i > len(*p) {
		i = len(*p)
	}
	*p = slices.Insert(*p, i, val)
	return true
}

func (b boolArray) Remove(loc any, i int) bool {
	p, ok := b.ptr(loc)
	if !ok || i < 0 || i >= len(*p) {
		return false
	}
	*p = slices.Delete(*p, i, i+1)
	return true
}

func (b boolArray) Clear(loc any) bool {
	p, ok := b.ptr(loc)
	if !ok {
		return false
	}
	*p = (*p)[:0]
	return true
}

func (boolArray) Locate(any, int) (any, bool) { return nil, false }
