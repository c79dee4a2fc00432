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

package registry

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sync"

	"github.com/tliron/commonlog"

	"dirpx.dev/rfield/apis"
	"dirpx.dev/rfield/config"
	uref "dirpx.dev/rfield/utils/reflect"
)

var (
	// ErrNilClass is returned when a nil class is provided.
	ErrNilClass = errors.New("rfield(registry): nil class provided")
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("rfield(registry): nil reflect.Type provided")
	// ErrEmptyName is returned when a class has an empty name.
	ErrEmptyName = errors.New("rfield(registry): empty class name")
	// ErrConflictingRegistration indicates an attempt to register a
	// different class under a name or type that is already taken.
	ErrConflictingRegistration = errors.New("rfield(registry): conflicting class registration")
	// ErrNotReference is returned when Bind is given a type that cannot
	// hold a reflectable instance.
	ErrNotReference = errors.New("rfield(registry): type cannot reference a reflectable instance")
)

var log = commonlog.GetLogger("rfield.registry")

// New constructs a Registry. Only MaxUnwrap is used here, to normalize
// pointer types on lookup.
func New(cfg apis.Config) apis.Registry {
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = config.DefaultMaxUnwrap
	}
	return &registry{cfg: cfg}
}

// registry is a Registry backed by two sync.Maps: one keyed by type, one by
// class name (the directory).
type registry struct {
	// cfg is the configuration used for type normalization.
	cfg apis.Config
	// mu guards write-side consistency and counter.
	mu sync.Mutex
	// types maps reflect.Type to apis.Class.
	types sync.Map // map[reflect.Type]apis.Class
	// names maps class name to apis.Class.
	names sync.Map // map[string]apis.Class
	// count tracks the number of registered classes.
	count int
}

// Register adds c under its name and struct type.
// It is idempotent for the same class.
func (r *registry) Register(c apis.Class) error {
	// Validate inputs early.
	if uref.IsNil(c) {
		return ErrNilClass
	}
	name := c.Name()
	if name == "" {
		return ErrEmptyName
	}
	t := c.Type()
	if t == nil {
		return ErrNilType
	}

	// Fast read path: idempotency / conflict check without locking.
	if done, err := r.check(name, t, c); done || err != nil {
		return err
	}

	// Write path: guard with a mutex to keep counter consistent and avoid ABA.
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if done, err := r.check(name, t, c); done || err != nil {
		return err
	}

	r.names.Store(name, c)
	r.types.Store(t, c)
	r.count++
	log.Debugf("registered class %s (%s)", name, t)
	return nil
}

// check reports done=true if c is already registered under name and t,
// or an error if either key is taken by another class.
func (r *registry) check(name string, t reflect.Type, c apis.Class) (bool, error) {
	byName, nameTaken := r.names.Load(name)
	byType, typeTaken := r.types.Load(t)
	switch {
	case nameTaken && byName.(apis.Class) != c:
		return false, fmt.Errorf("%w: name %q already used by another class", ErrConflictingRegistration, name)
	case typeTaken && byType.(apis.Class) != c:
		return false, fmt.Errorf("%w: type %s already bound to class %q", ErrConflictingRegistration, t, byType.(apis.Class).Name())
	case nameTaken && typeTaken:
		return true, nil
	}
	return false, nil
}

// Bind associates t with c so fields of type t resolve to references of
// class c. t must be an interface implying apis.Object or a pointer to a
// reflectable struct. Binding the same pair twice is a no-op.
func (r *registry) Bind(t reflect.Type, c apis.Class) error {
	if t == nil {
		return ErrNilType
	}
	if uref.IsNil(c) {
		return ErrNilClass
	}
	if !uref.IsReference(t) {
		return fmt.Errorf("%w: %s", ErrNotReference, t)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.types.Load(t); ok {
		if old.(apis.Class) == c {
			return nil
		}
		return fmt.Errorf("%w: type %s already bound to class %q", ErrConflictingRegistration, t, old.(apis.Class).Name())
	}
	r.types.Store(t, c)
	return nil
}

// Lookup returns the class bound to t. Interface types must be bound
// explicitly; pointer types are normalized to their struct type.
func (r *registry) Lookup(t reflect.Type) (apis.Class, bool) {
	if t == nil {
		return nil, false
	}
	if v, ok := r.types.Load(t); ok {
		return v.(apis.Class), true
	}
	if t.Kind() != reflect.Pointer {
		return nil, false
	}
	nt, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return nil, false
	}
	if v, ok := r.types.Load(nt); ok {
		return v.(apis.Class), true
	}
	return nil, false
}

// LookupName returns the class registered under name.
func (r *registry) LookupName(name string) (apis.Class, bool) {
	if v, ok := r.names.Load(name); ok {
		return v.(apis.Class), true
	}
	return nil, false
}

// Classes returns every registered class sorted by name.
func (r *registry) Classes() []apis.Class {
	out := make([]apis.Class, 0, r.Count())
	r.names.Range(func(_, value any) bool {
		out = append(out, value.(apis.Class))
		return true
	})
	slices.SortFunc(out, func(a, b apis.Class) int {
		return cmp.Compare(a.Name(), b.Name())
	})
	return out
}

// Entries returns every type binding, sorted by class name then type.
func (r *registry) Entries() []apis.Entry {
	var entries []apis.Entry
	r.types.Range(func(key, value any) bool {
		entries = append(entries, apis.Entry{
			Type:  key.(reflect.Type),
			Class: value.(apis.Class),
		})
		return true
	})
	slices.SortFunc(entries, func(a, b apis.Entry) int {
		return cmp.Or(
			cmp.Compare(a.Class.Name(), b.Class.Name()),
			cmp.Compare(a.Type.String(), b.Type.String()),
		)
	})
	return entries
}

// Count returns the number of registered classes.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered classes and bindings.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types.Clear()
	r.names.Clear()
	r.count = 0
}
