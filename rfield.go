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
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/tliron/commonlog"

	"dirpx.dev/rfield/apis"
	"dirpx.dev/rfield/builder"
	"dirpx.dev/rfield/class"
	"dirpx.dev/rfield/config"
)

// init initializes the global state.
func init() {
	// Initialize state with default cfg, reg, and res.
	s := &state{cfg: config.DefaultConfig()}
	b := builder.New()
	s.reg = b.BuildRegistry(s.cfg, nil, nil)
	s.res = b.BuildResolver(s.cfg, s.reg, nil, nil)
	s.bld = b
	publish(s)
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("rfield: builder returned nil registry")
	// ErrNilResolver is returned when a builder returns a nil resolver.
	ErrNilResolver = errors.New("rfield: builder returned nil resolver")
)

var log = commonlog.GetLogger("rfield")

// Resolve returns the descriptor for the dynamic type of v using the
// global resolver, or nil.
func Resolve(v any) apis.Value {
	s := st.Load()
	return s.res.Resolve(v, s.cfg)
}

// ResolveType returns the descriptor for t using the global resolver, or nil.
func ResolveType(t reflect.Type) apis.Value {
	s := st.Load()
	return s.res.ResolveType(t, s.cfg)
}

// Register adds c to the global registry.
func Register(c apis.Class) error {
	return st.Load().reg.Register(c)
}

// Bind associates the reference type T (an interface implying apis.Object,
// or a pointer to a reflectable struct) with c in the global registry, so
// fields of type T resolve to object_ref descriptors of class c.
func Bind[T any](c apis.Class) error {
	return st.Load().reg.Bind(reflect.TypeFor[T](), c)
}

// NewClass declares the class of struct type C and registers it globally.
// It is meant for package-level variables:
//
//	var dogClass = rfield.NewClass[Dog]("zoo.Dog",
//		class.Extends(animalClass, func(d *Dog) *Animal { return &d.Animal }),
//		class.Declare(func(d *class.Declarer[Dog]) {
//			class.Field(d, "name", func(x *Dog) *string { return &x.Name })
//		}))
//
// A registration failure panics in strict mode and is logged otherwise;
// the class is returned either way.
func NewClass[C any, P interface {
	*C
	apis.Object
}](name string, opts ...class.Option[C]) *class.Class {
	c := class.New[C, P](name, opts...)
	if err := Register(c); err != nil {
		if Config().Strict {
			panic(err)
		}
		log.Warningf("class %s not registered: %v", name, err)
	}
	return c
}

// SetAll explicitly sets all global state components.
//
// Nil arguments leave the corresponding component unchanged,
// except for ext which is always replaced.
//
// This is a convenience wrapper around the global state.
func SetAll(cfg *apis.Config, ext any, reg apis.Registry, res apis.Resolver, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Configuration
	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}

	// Builder
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	// Registry
	nreg := reg
	npreg := false
	if nreg == nil {
		nreg = nbld.BuildRegistry(ncfg, old.reg, ext)
	} else {
		npreg = true
	}

	// Resolver
	nres := res
	npres := false
	if nres == nil {
		nres = nbld.BuildResolver(ncfg, nreg, old.res, ext)
	} else {
		npres = true
	}

	publish(&state{
		cfg:  ncfg,
		ext:  ext,
		reg:  nreg,
		res:  nres,
		bld:  nbld,
		preg: npreg,
		pres: npres,
	})
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global configuration to cfg.
// It rebuilds the global reg and res using the new configuration.
// Classes that are already initialized keep their field tables.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := old.with()
	next.cfg = cfg
	rebuild(next, old)
	publish(next)
}

// Registry returns the global registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry sets the global registry to reg and pins it.
// It uses the global configuration to rebuild the global res.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := old.with()
	next.reg = reg
	next.preg = true
	rebuild(next, old)
	publish(next)
}

// Resolver returns the global resolver.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver sets the global resolver to res and pins it.
func SetResolver(res apis.Resolver) {
	if res == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	next := st.Load().with()
	next.res = res
	next.pres = true
	publish(next)
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global builder to b and rebuilds non-pinned layers.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := old.with()
	next.bld = b
	rebuild(next, old)
	publish(next)
}

// SetExt replaces extension config and rebuilds non-pinned layers via the builder.
// The default builder understands builder.Extension.
func SetExt[T any](ext T) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := old.with()
	next.ext = ext
	rebuild(next, old)
	publish(next)
}

// ExtAs returns the global extension config as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// IsRegistryPinned returns whether the global registry is pinned.
func IsRegistryPinned() bool {
	return st.Load().preg
}

// PinRegistry stops the global registry from being rebuilt.
func PinRegistry() {
	pin(func(s *state) { s.preg = true })
}

// UnpinRegistry lets the global registry be rebuilt again.
func UnpinRegistry() {
	pin(func(s *state) { s.preg = false })
}

// IsResolverPinned returns whether the global resolver is pinned.
func IsResolverPinned() bool {
	return st.Load().pres
}

// PinResolver stops the global resolver from being rebuilt.
func PinResolver() {
	pin(func(s *state) { s.pres = true })
}

// UnpinResolver lets the global resolver be rebuilt again.
func UnpinResolver() {
	pin(func(s *state) { s.pres = false })
}

func pin(fn func(*state)) {
	buildMu.Lock()
	defer buildMu.Unlock()

	next := st.Load().with()
	fn(next)
	publish(next)
}

// rebuild replaces the non-pinned layers of next using its builder.
func rebuild(next, old *state) {
	if !next.preg {
		next.reg = next.bld.BuildRegistry(next.cfg, old.reg, next.ext)
	}
	if !next.pres {
		next.res = next.bld.BuildResolver(next.cfg, next.reg, old.res, next.ext)
	}
}

// publish validates s, stores it and hands its resolver and config to
// classes that initialize from now on. Callers hold buildMu, except init.
func publish(s *state) {
	// Ensure non-nil reg and res.
	if s.reg == nil {
		panic(ErrNilRegistry)
	}
	if s.res == nil {
		panic(ErrNilResolver)
	}
	st.Store(s)
	class.SetDefaults(s.res, s.cfg)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global state.
var st atomic.Pointer[state]

// state is the global state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global configuration.
	cfg apis.Config
	// ext is the global extension configuration.
	ext any
	// reg is the global registry.
	reg apis.Registry
	// res is the global resolver.
	res apis.Resolver
	// bld is the global builder.
	bld apis.Builder
	// preg indicates whether the reg is pinned.
	preg bool
	// pres indicates whether the res is pinned.
	pres bool
}

// with returns an unpublished copy of s.
func (s *state) with() *state {
	c := *s
	return &c
}
