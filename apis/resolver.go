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
	"reflect"
)

// Resolver maps a declared Go type to the descriptor that represents it.
// Typical chain: Describer -> Primitive -> Sequence -> Object -> Reference.
type Resolver interface {
	// Resolve returns the descriptor for the dynamic type of v, or nil.
	Resolve(v any, cfg Config) Value

	// ResolveType returns the descriptor for t, or nil if no strategy
	// handles it.
	ResolveType(t reflect.Type, cfg Config) Value
}
