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
	uref "dirpx.dev/rfield/utils/reflect"
)

// Object returns the descriptor of a nested instance of class c held by
// value. A nil c yields an inert descriptor whose operations all fail.
//
// Set and Move delegate to c.Assign and c.Move, so assigning an instance
// of any class other than exactly c is refused: copying a derived
// instance into base storage would drop the derived state.
func Object(c apis.Class) apis.Value {
	return object{class: c}
}

type object struct {
	class apis.Class
}

// Ensure object implements apis.Value and apis.Mover.
var (
	_ apis.Value = object{}
	_ apis.Mover = object{}
)

func (o object) Kind() apis.Kind   { return apis.KindObject }
func (o object) Class() apis.Class { return o.class }
func (o object) Elem() apis.Value  { return nil }

func (o object) Type() reflect.Type {
	if uref.IsNil(o.class) {
		return nil
	}
	return o.class.Type()
}

// target returns the instance at loc if it is an instance of o.class.
func (o object) target(loc any) (apis.Object, bool) {
	if uref.IsNil(o.class) {
		return nil, false
	}
	dst, ok := loc.(apis.Object)
	if !ok || uref.IsNil(dst) || dst.ClassType() != o.class {
		return nil, false
	}
	return dst, true
}

// Get returns the nested instance itself; writes through it are writes to
// the owning object.
func (o object) Get(loc any) (any, bool) {
	dst, ok := o.target(loc)
	if !ok {
		return nil, false
	}
	return dst, true
}

// Set copies v, which must be an instance of exactly o.class, into loc.
func (o object) Set(loc any, v any) bool {
	dst, ok := o.target(loc)
	if !ok {
		return false
	}
	src, ok := v.(apis.Object)
	if !ok || uref.IsNil(src) {
		return false
	}
	return o.class.Assign(dst, src)
}

// Move is Set followed by resetting v to its zero value.
func (o object) Move(loc any, v any) bool {
	dst, ok := o.target(loc)
	if !ok {
		return false
	}
	src, ok := v.(apis.Object)
	if !ok || uref.IsNil(src) {
		return false
	}
	return o.class.Move(dst, src)
}
