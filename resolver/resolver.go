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

package resolver

import (
	"reflect"
	"sync"

	"dirpx.dev/rfield/apis"
)

// New constructs an apis.Resolver that tries the given strategies in order.
// Nil strategies are ignored. The returned resolver is safe for concurrent use
// provided strategies themselves are safe for concurrent TryResolveType calls.
//
// Successful resolutions are memoized per (type, MaxUnwrap). Misses are not,
// so a class registered after a failed lookup is picked up on the next call.
func New(strategies ...apis.Strategy) apis.Resolver {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return &chain{strats: out}
}

// chain is an order-preserving resolver over an immutable set of strategies.
type chain struct {
	strats []apis.Strategy
	memo   sync.Map // map[memoKey]apis.Value
}

type memoKey struct {
	t         reflect.Type
	maxUnwrap int
}

// Resolve resolves the dynamic type of v.
// Returns nil if v is nil or no strategy produced a descriptor.
func (r *chain) Resolve(v any, cfg apis.Config) apis.Value {
	if v == nil {
		return nil
	}
	return r.ResolveType(reflect.TypeOf(v), cfg)
}

// ResolveType runs strategies in order until one handles the type.
// Returns nil if no strategy produced a descriptor.
func (r *chain) ResolveType(t reflect.Type, cfg apis.Config) apis.Value {
	if t == nil {
		return nil
	}
	key := memoKey{t: t, maxUnwrap: cfg.MaxUnwrap}
	if v, ok := r.memo.Load(key); ok {
		return v.(apis.Value)
	}
	for _, s := range r.strats {
		if v, ok := s.TryResolveType(t, r, cfg); ok && v != nil {
			actual, _ := r.memo.LoadOrStore(key, v)
			return actual.(apis.Value)
		}
	}
	return nil
}
