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
	"reflect"
	"sync"
	"sync/atomic"
	"unsafe"

	"dirpx.dev/rfield/apis"
	uref "dirpx.dev/rfield/utils/reflect"
)

// Class is the descriptor of one reflectable struct type.
//
// A Class is created once with New and shared by reference; it must never
// be copied. All methods are safe for concurrent use. The field table is
// built on first use and immutable afterwards.
type Class struct {
	name   string
	typ    reflect.Type
	parent apis.Class

	// upcast returns the parent-class view embedded in an instance.
	upcast   func(apis.Object) (apis.Object, bool)
	upOffset uintptr

	env     *environment
	declare func(c *Class, t *table, env environment)
	newFn   func() apis.Object
	copyFn  func(dst, src apis.Object) bool
	resetFn func(apis.Object)

	once   sync.Once
	ready  atomic.Bool
	fields atomic.Pointer[table]
}

// Ensure Class implements apis.Class.
var _ apis.Class = (*Class)(nil)

// Option configures a class of Go type C at declaration time.
type Option[C any] func(*settings[C])

type settings[C any] struct {
	parent   apis.Class
	upcast   func(*C) apis.Object
	upOffset uintptr
	decls    []func(*Declarer[C])
	env      *environment
	copy     func(dst, src *C)
	noCopy   bool
}

// Extends declares parent as the superclass. up returns the embedded
// parent instance of a C; the parent's fields are inherited through it.
func Extends[C, B any, PB interface {
	*B
	apis.Object
}](parent apis.Class, up func(*C) *B) Option[C] {
	return func(s *settings[C]) {
		if uref.IsNil(parent) || up == nil {
			return
		}
		s.parent = parent
		s.upcast = func(c *C) apis.Object { return PB(up(c)) }
		var zero C
		s.upOffset = offsetOf(unsafe.Pointer(&zero), unsafe.Sizeof(zero), func() unsafe.Pointer {
			return unsafe.Pointer(up(&zero))
		})
	}
}

// Declare adds a field declaration callback. Callbacks run in order, once,
// when the class is initialized.
func Declare[C any](fn func(d *Declarer[C])) Option[C] {
	return func(s *settings[C]) {
		if fn != nil {
			s.decls = append(s.decls, fn)
		}
	}
}

// WithResolver pins the resolver and config used to initialize this class
// instead of the process defaults.
func WithResolver[C any](res apis.Resolver, cfg apis.Config) Option[C] {
	return func(s *settings[C]) {
		s.env = &environment{res: res, cfg: cfg}
	}
}

// CopyWith replaces the plain struct assignment used by Assign and Move,
// e.g. to deep-copy slices or maps.
func CopyWith[C any](fn func(dst, src *C)) Option[C] {
	return func(s *settings[C]) {
		s.copy = fn
	}
}

// NoCopy marks the class as non-copyable: Assign and Move always fail.
func NoCopy[C any]() Option[C] {
	return func(s *settings[C]) {
		s.noCopy = true
	}
}

// New declares the class of struct type C under name. P is inferred as *C
// and must implement apis.Object, reporting the returned class.
func New[C any, P interface {
	*C
	apis.Object
}](name string, opts ...Option[C]) *Class {
	s := &settings[C]{}
	for _, opt := range opts {
		opt(s)
	}

	self := func(o apis.Object) (*C, bool) {
		p, ok := o.(P)
		if !ok || p == nil {
			return nil, false
		}
		return (*C)(p), true
	}

	c := &Class{
		name:     name,
		typ:      reflect.TypeFor[C](),
		upOffset: s.upOffset,
		env:      s.env,
	}
	if s.parent != nil {
		c.parent = s.parent
		c.upcast = func(o apis.Object) (apis.Object, bool) {
			x, ok := self(o)
			if !ok {
				return nil, false
			}
			return s.upcast(x), true
		}
	}

	c.newFn = func() apis.Object { return P(new(C)) }
	c.copyFn = func(dst, src apis.Object) bool {
		if s.noCopy {
			return false
		}
		d, ok := self(dst)
		if !ok {
			return false
		}
		x, ok := self(src)
		if !ok {
			return false
		}
		if s.copy != nil {
			s.copy(d, x)
			return true
		}
		*d = *x
		return true
	}
	c.resetFn = func(o apis.Object) {
		if x, ok := self(o); ok {
			var zero C
			*x = zero
		}
	}
	c.declare = func(owner *Class, t *table, env environment) {
		d := &Declarer[C]{class: owner, table: t, env: env, self: self}
		for _, fn := range s.decls {
			fn(d)
		}
	}
	return c
}

// Name returns the class name.
func (c *Class) Name() string { return c.name }

// String implements fmt.Stringer.
func (c *Class) String() string { return c.name }

// Parent returns the superclass, or nil for a root class.
func (c *Class) Parent() apis.Class { return c.parent }

// Type returns the Go struct type of the class.
func (c *Class) Type() reflect.Type { return c.typ }

// ParentOffset returns the byte offset of the embedded parent instance.
func (c *Class) ParentOffset() uintptr { return c.upOffset }

// IsDerivedFrom reports whether other is c or one of its ancestors.
// It checks identity first and then defers to the parent, so every class
// in the chain answers for itself.
func (c *Class) IsDerivedFrom(other apis.Class) bool {
	if uref.IsNil(other) {
		return false
	}
	if other == apis.Class(c) {
		return true
	}
	if c.parent == nil {
		return false
	}
	return c.parent.IsDerivedFrom(other)
}

// Initialize builds the field table on first call: parent chain first,
// then inherited fields, then this class's own declarations.
func (c *Class) Initialize() {
	c.once.Do(c.initialize)
}

// Initialized reports whether the field table has been built.
func (c *Class) Initialized() bool {
	return c.ready.Load()
}

// Fields returns the field table, initializing the class if needed.
func (c *Class) Fields() apis.FieldTable {
	c.Initialize()
	if t := c.fields.Load(); t != nil {
		return t
	}
	return emptyTable
}

// New allocates a zero instance.
func (c *Class) New() apis.Object {
	return c.newFn()
}

// Assign copies src into dst when both are instances of exactly c.
func (c *Class) Assign(dst, src apis.Object) bool {
	if !c.owns(dst) || !c.owns(src) {
		return false
	}
	return c.copyFn(dst, src)
}

// Move assigns src to dst and resets src to its zero value.
// Moving an instance onto itself leaves it unchanged.
func (c *Class) Move(dst, src apis.Object) bool {
	if !c.Assign(dst, src) {
		return false
	}
	if dst != src {
		c.resetFn(src)
	}
	return true
}

// owns reports whether o reports c as its exact class.
func (c *Class) owns(o apis.Object) bool {
	return !uref.IsNil(o) && o.ClassType() == apis.Class(c)
}

func (c *Class) environment() environment {
	if c.env != nil {
		return *c.env
	}
	res, cfg := Defaults()
	return environment{res: res, cfg: cfg}
}

func (c *Class) initialize() {
	env := c.environment()
	t := newTable(c, env.cfg.Strict)
	// Published before declarations run so a strict-mode panic leaves a
	// usable (partial) table behind.
	c.fields.Store(t)

	if c.parent != nil {
		c.parent.Initialize()
		for pf := range c.parent.Fields().All() {
			t.add(&inherited{Field: pf, owner: c, offset: c.upOffset + pf.Offset(), upcast: c.upcast})
		}
	}
	if env.res == nil {
		log.Warningf("class %s: no resolver configured; only explicitly described fields will be registered", c.name)
	}
	c.declare(c, t, env)

	c.ready.Store(true)
	log.Debugf("class %s initialized with %d fields", c.name, t.Len())
}

// offsetOf returns addr()-base if it lies within [0, size], and 0 when the
// accessor leaves the struct or panics on a zero value.
func offsetOf(base unsafe.Pointer, size uintptr, addr func() unsafe.Pointer) (off uintptr) {
	defer func() {
		if recover() != nil {
			off = 0
		}
	}()
	p := uintptr(addr())
	b := uintptr(base)
	if p < b || p-b > size {
		return 0
	}
	return p - b
}
