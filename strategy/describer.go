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

package strategy

import (
	"reflect"

	"dirpx.dev/rfield/apis"
)

// NewDescriberStrategy creates an apis.Strategy that uses apis.Describer.
func NewDescriberStrategy() apis.Strategy {
	return &describerStrategy{}
}

// describerStrategy is the opt-in fast path: if T (or *T) implements
// apis.Describer, its DescribeValue() wins over every built-in mapping.
type describerStrategy struct{}

// Ensure describerStrategy implements apis.Strategy.
var _ apis.Strategy = (*describerStrategy)(nil)

var describerType = reflect.TypeFor[apis.Describer]()

// TryResolveType asks a zero T for its descriptor. Descriptors whose Type
// is not t are ignored, since they could not operate on *t locations.
func (*describerStrategy) TryResolveType(t reflect.Type, _ apis.Resolver, _ apis.Config) (apis.Value, bool) {
	if t == nil || t.Kind() == reflect.Interface {
		return nil, false
	}
	var d apis.Describer
	switch {
	case t.Implements(describerType):
		d, _ = reflect.Zero(t).Interface().(apis.Describer)
	case reflect.PointerTo(t).Implements(describerType):
		d, _ = reflect.New(t).Interface().(apis.Describer)
	default:
		return nil, false
	}
	if d == nil {
		return nil, false
	}
	v := describe(d)
	if v == nil || v.Type() != t {
		return nil, false
	}
	return v, true
}

// describe calls DescribeValue, treating a panic (e.g. a value receiver
// dereferencing a nil pointer) as "no descriptor".
func describe(d apis.Describer) (v apis.Value) {
	defer func() {
		if recover() != nil {
			v = nil
		}
	}()
	return d.DescribeValue()
}
