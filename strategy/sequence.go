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
	"dirpx.dev/rfield/config"
	uref "dirpx.dev/rfield/utils/reflect"
	"dirpx.dev/rfield/value"
)

// NewSequenceStrategy creates an apis.Strategy for slices: []bool maps to
// value.BoolArray, any other []E to value.Array over the resolved E.
func NewSequenceStrategy() apis.Strategy {
	return sequenceStrategy{}
}

// sequenceStrategy resolves element types recursively through the calling
// resolver, so nested slices and slices of objects or references work.
// Nesting deeper than Config.MaxUnwrap is not handled.
type sequenceStrategy struct{}

// Ensure sequenceStrategy implements apis.Strategy.
var _ apis.Strategy = sequenceStrategy{}

var boolSliceType = reflect.TypeFor[[]bool]()

// TryResolveType handles slice types.
func (sequenceStrategy) TryResolveType(t reflect.Type, res apis.Resolver, cfg apis.Config) (apis.Value, bool) {
	if t == nil || t.Kind() != reflect.Slice {
		return nil, false
	}
	if t == boolSliceType {
		return value.BoolArray, true
	}
	maxUnwrap := cfg.MaxUnwrap
	if maxUnwrap <= 0 {
		maxUnwrap = config.DefaultMaxUnwrap
	}
	if depth, _ := uref.SliceDepth(t); depth > maxUnwrap || res == nil {
		return nil, false
	}
	elem := res.ResolveType(t.Elem(), cfg)
	if elem == nil {
		return nil, false
	}
	seq := value.Array(t, elem)
	if seq.Kind() == apis.KindNone {
		return nil, false
	}
	return seq, true
}
