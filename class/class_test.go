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

package class_test

import (
	"errors"
	"reflect"
	"slices"
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"

	"dirpx.dev/rfield/apis"
	"dirpx.dev/rfield/class"
	"dirpx.dev/rfield/config"
	"dirpx.dev/rfield/resolver"
	"dirpx.dev/rfield/strategy"
	"dirpx.dev/rfield/value"
)

// Fixtures: shape <- circle <- ring. circle embeds shape after its own
// field, so the parent view sits at a non-zero offset.
type shape struct {
	ID   uint32
	Name string
}

type circle struct {
	R int64
	shape
}

type ring struct {
	circle
	Inner int64
}

type link struct {
	Next   apis.Object
	Head   *shape
	Origin shape
}

type bag struct {
	Items []int32
}

type sealed struct {
	N int8
}

// scratch backs throwaway classes whose instances are never needed.
type scratch struct {
	A int32
	B string
	C float64
}

var (
	testRes = resolver.New(strategy.NewPrimitiveStrategy(), strategy.NewSequenceStrategy())
	lenient = config.NewConfig()
	strict  = config.NewConfig(config.WithStrict(true))

	shapeClass = class.New[shape]("shape",
		class.WithResolver[shape](testRes, lenient),
		class.Declare(func(d *class.Declarer[shape]) {
			class.Field(d, "id", func(x *shape) *uint32 { return &x.ID })
			class.Field(d, "name", func(x *shape) *string { return &x.Name })
		}))

	circleClass = class.New[circle]("circle",
		class.WithResolver[circle](testRes, lenient),
		class.Extends(shapeClass, func(c *circle) *shape { return &c.shape }),
		class.Declare(func(d *class.Declarer[circle]) {
			class.Field(d, "r", func(x *circle) *int64 { return &x.R })
		}))

	ringClass = class.New[ring]("ring",
		class.WithResolver[ring](testRes, lenient),
		class.Extends(circleClass, func(r *ring) *circle { return &r.circle }),
		class.Declare(func(d *class.Declarer[ring]) {
			class.Field(d, "inner", func(x *ring) *int64 { return &x.Inner })
		}))

	linkClass = class.New[link]("link",
		class.WithResolver[link](testRes, lenient),
		class.Declare(func(d *class.Declarer[link]) {
			class.Ref(d, "next", shapeClass, func(x *link) *apis.Object { return &x.Next })
			class.Ref(d, "head", shapeClass, func(x *link) **shape { return &x.Head })
			class.FieldOf(d, "origin", value.Object(shapeClass), func(x *link) *shape { return &x.Origin })
		}))

	bagClass = class.New[bag]("bag",
		class.WithResolver[bag](testRes, lenient),
		class.CopyWith(func(dst, src *bag) { dst.Items = slices.Clone(src.Items) }),
		class.Declare(func(d *class.Declarer[bag]) {
			class.Field(d, "items", func(x *bag) *[]int32 { return &x.Items })
		}))

	sealedClass = class.New[sealed]("sealed", class.NoCopy[sealed]())
)

func (*shape) ClassType() apis.Class   { return shapeClass }
func (*circle) ClassType() apis.Class  { return circleClass }
func (*ring) ClassType() apis.Class    { return ringClass }
func (*link) ClassType() apis.Class    { return linkClass }
func (*bag) ClassType() apis.Class     { return bagClass }
func (*sealed) ClassType() apis.Class  { return sealedClass }
func (*scratch) ClassType() apis.Class { return nil }

func scratchClass(cfg apis.Config, fn func(d *class.Declarer[scratch])) *class.Class {
	return class.New[scratch]("scratch", class.WithResolver[scratch](testRes, cfg), class.Declare(fn))
}

func TestFields_InheritedFirst(t *testing.T) {
	cases := []struct {
		c    apis.Class
		want []string
	}{
		{shapeClass, []string{"id", "name"}},
		{circleClass, []string{"id", "name", "r"}},
		{ringClass, []string{"id", "name", "r", "inner"}},
	}
	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, tc.c.Fields().Names()); diff != "" {
			t.Errorf("%s fields mismatch (-want +got):\n%s", tc.c.Name(), diff)
		}
		if !tc.c.Initialized() {
			t.Errorf("%s: Initialized() = false after Fields()", tc.c.Name())
		}
	}
	if !shapeClass.Initialized() {
		t.Errorf("parent must be initialized with its subclasses")
	}
}

func TestFields_Table(t *testing.T) {
	ft := circleClass.Fields()
	if ft.Len() != 3 {
		t.Fatalf("Len = %d, want 3", ft.Len())
	}
	if f := ft.At(2); f == nil || f.Name() != "r" || f.Kind() != apis.KindInt64 {
		t.Fatalf("At(2) = %v, want circle.r int64", f)
	}
	if ft.At(-1) != nil || ft.At(3) != nil {
		t.Fatalf("At out of range must be nil")
	}
	if _, ok := ft.Lookup("missing"); ok {
		t.Fatalf("Lookup(missing) should fail")
	}
	var seen []string
	for f := range ft.All() {
		seen = append(seen, f.Name())
		if f.Name() == "name" {
			break
		}
	}
	if diff := cmp.Diff([]string{"id", "name"}, seen); diff != "" {
		t.Fatalf("All() early stop mismatch (-want +got):\n%s", diff)
	}
}

func TestFields_Offsets(t *testing.T) {
	var c circle
	var r ring
	cases := []struct {
		c    apis.Class
		name string
		want uintptr
	}{
		{shapeClass, "name", unsafe.Offsetof(shape{}.Name)},
		{circleClass, "r", 0},
		{circleClass, "id", unsafe.Offsetof(c.shape) + unsafe.Offsetof(shape{}.ID)},
		{circleClass, "name", unsafe.Offsetof(c.shape) + unsafe.Offsetof(shape{}.Name)},
		{ringClass, "name", unsafe.Offsetof(r.circle) + unsafe.Offsetof(c.shape) + unsafe.Offsetof(shape{}.Name)},
		{ringClass, "inner", unsafe.Offsetof(r.Inner)},
	}
	for _, tc := range cases {
		f, ok := tc.c.Fields().Lookup(tc.name)
		if !ok {
			t.Fatalf("%s.%s missing", tc.c.Name(), tc.name)
		}
		if f.Offset() != tc.want {
			t.Errorf("%s.%s offset = %d, want %d", tc.c.Name(), tc.name, f.Offset(), tc.want)
		}
	}
	if circleClass.ParentOffset() != unsafe.Offsetof(c.shape) {
		t.Errorf("ParentOffset = %d, want %d", circleClass.ParentOffset(), unsafe.Offsetof(c.shape))
	}
}

func TestField_OwnerAndOrigin(t *testing.T) {
	f, _ := ringClass.Fields().Lookup("id")
	if f.Owner() != apis.Class(ringClass) {
		t.Errorf("Owner = %v, want ring", f.Owner())
	}
	if class.Origin(f) != apis.Class(shapeClass) {
		t.Errorf("Origin = %v, want shape", class.Origin(f))
	}
	if s, ok := f.(interface{ String() string }); !ok || s.String() != "ring.id" {
		t.Errorf("String() = %v, want ring.id", f)
	}
	own, _ := ringClass.Fields().Lookup("inner")
	if class.Origin(own) != apis.Class(ringClass) {
		t.Errorf("Origin(inner) = %v, want ring", class.Origin(own))
	}
}

func TestField_Locate(t *testing.T) {
	r := &ring{}
	id, _ := ringClass.Fields().Lookup("id")
	loc, ok := id.Locate(r)
	if !ok {
		t.Fatalf("Locate(ring) failed")
	}
	if p, _ := loc.(*uint32); p != &r.ID {
		t.Fatalf("Locate returned %p, want %p", p, &r.ID)
	}
	if !id.Value().Set(loc, uint32(7)) || r.ID != 7 {
		t.Fatalf("write through location did not reach ring.ID")
	}

	shapeID, _ := shapeClass.Fields().Lookup("id")
	if _, ok := shapeID.Locate(&circle{}); ok {
		t.Errorf("shape.id must not locate in a circle")
	}
	if _, ok := shapeID.Locate(nil); ok {
		t.Errorf("Locate(nil) must fail")
	}
	if _, ok := shapeID.Locate((*shape)(nil)); ok {
		t.Errorf("Locate(typed nil) must fail")
	}
}

func TestDeclare_RefAndObject(t *testing.T) {
	ft := linkClass.Fields()
	want := map[string]apis.Kind{"next": apis.KindObjectRef, "head": apis.KindObjectRef, "origin": apis.KindObject}
	for name, kind := range want {
		f, ok := ft.Lookup(name)
		if !ok {
			t.Fatalf("link.%s missing", name)
		}
		if f.Kind() != kind || f.Value().Class() != apis.Class(shapeClass) {
			t.Errorf("link.%s = %v/%v, want %v/shape", name, f.Kind(), f.Value().Class(), kind)
		}
	}

	l := &link{}
	next, _ := ft.Lookup("next")
	loc, _ := next.Locate(l)
	if !next.Value().Set(loc, &circle{R: 2}) {
		t.Fatalf("next must accept a circle")
	}
	if _, ok := l.Next.(*circle); !ok {
		t.Fatalf("Next = %T, want *circle", l.Next)
	}
	head, _ := ft.Lookup("head")
	loc, _ = head.Locate(l)
	if head.Value().Set(loc, &circle{}) {
		t.Fatalf("*shape reference must refuse a circle")
	}
}

func TestDeclare_RefErrors(t *testing.T) {
	c := scratchClass(lenient, func(d *class.Declarer[scratch]) {
		class.Ref(d, "a", shapeClass, func(x *scratch) *int32 { return &x.A })
		class.Ref(d, "b", nil, func(x *scratch) *string { return &x.B })
	})
	if n := c.Fields().Len(); n != 0 {
		t.Fatalf("invalid refs must be dropped, got %d fields", n)
	}
}

func TestDeclare_DuplicateLenient(t *testing.T) {
	c := scratchClass(lenient, func(d *class.Declarer[scratch]) {
		class.Field(d, "a", func(x *scratch) *int32 { return &x.A })
		class.Field(d, "b", func(x *scratch) *string { return &x.B })
		class.Field(d, "a", func(x *scratch) *string { return &x.B })
	})
	ft := c.Fields()
	if diff := cmp.Diff([]string{"b", "a"}, ft.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if f, _ := ft.Lookup("a"); f.Kind() != apis.KindText {
		t.Fatalf("a must carry the latest declaration, got %v", f.Kind())
	}
	if f := ft.At(1); f.Name() != "a" {
		t.Fatalf("At(1) = %s, want a", f.Name())
	}
}

func TestDeclare_ShadowInherited(t *testing.T) {
	c := class.New[wrapped]("wrapped",
		class.WithResolver[wrapped](testRes, lenient),
		class.Extends(shapeClass, func(w *wrapped) *shape { return &w.shape }),
		class.Declare(func(d *class.Declarer[wrapped]) {
			class.Field(d, "id", func(x *wrapped) *string { return &x.Alt })
		}))
	if diff := cmp.Diff([]string{"name", "id"}, c.Fields().Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

type wrapped struct {
	shape
	Alt string
}

func (*wrapped) ClassType() apis.Class { return nil }

func TestDeclare_StrictPanics(t *testing.T) {
	cases := []struct {
		name string
		fn   func(d *class.Declarer[scratch])
		want error
	}{
		{"duplicate", func(d *class.Declarer[scratch]) {
			class.Field(d, "a", func(x *scratch) *int32 { return &x.A })
			class.Field(d, "a", func(x *scratch) *int32 { return &x.A })
		}, class.ErrDuplicateField},
		{"unresolved", func(d *class.Declarer[scratch]) {
			class.Field(d, "c", func(x *scratch) *float64 { return &x.C })
		}, class.ErrUnresolvedType},
		{"mismatch", func(d *class.Declarer[scratch]) {
			class.FieldOf(d, "a", value.Uint8, func(x *scratch) *int32 { return &x.A })
		}, class.ErrDescriptorMismatch},
		{"empty name", func(d *class.Declarer[scratch]) {
			class.Field(d, "", func(x *scratch) *int32 { return &x.A })
		}, class.ErrEmptyFieldName},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := scratchClass(strict, tc.fn)
			func() {
				defer func() {
					err, _ := recover().(error)
					if !errors.Is(err, tc.want) {
						t.Fatalf("recovered %v, want %v", err, tc.want)
					}
				}()
				c.Initialize()
			}()
			if c.Initialized() {
				t.Fatalf("a class whose declarations panicked must not report Initialized")
			}
		})
	}
}

func TestDeclare_LenientDrops(t *testing.T) {
	c := scratchClass(lenient, func(d *class.Declarer[scratch]) {
		class.Field(d, "c", func(x *scratch) *float64 { return &x.C })
		class.FieldOf(d, "a", value.Uint8, func(x *scratch) *int32 { return &x.A })
		class.FieldOf(d, "n", value.None, func(x *scratch) *int32 { return &x.A })
		class.Field(d, "", func(x *scratch) *int32 { return &x.A })
		class.Field(d, "b", func(x *scratch) *string { return &x.B })
	})
	if diff := cmp.Diff([]string{"b"}, c.Fields().Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if !c.Initialized() {
		t.Fatalf("lenient class must initialize despite dropped fields")
	}
}

func TestDeclarer_Accessors(t *testing.T) {
	var gotClass *class.Class
	var gotCfg apis.Config
	c := scratchClass(strict, func(d *class.Declarer[scratch]) {
		gotClass = d.Class()
		gotCfg = d.Config()
	})
	c.Initialize()
	if gotClass != c || !gotCfg.Strict {
		t.Fatalf("Declarer reported (%v,%+v), want (%v,strict)", gotClass, gotCfg, c)
	}
}

func TestDefaults(t *testing.T) {
	prevRes, prevCfg := class.Defaults()
	t.Cleanup(func() { class.SetDefaults(prevRes, prevCfg) })

	decl := func(d *class.Declarer[scratch]) {
		class.Field(d, "a", func(x *scratch) *int32 { return &x.A })
	}

	class.SetDefaults(nil, lenient)
	bare := class.New[scratch]("bare", class.Declare(decl))
	if n := bare.Fields().Len(); n != 0 {
		t.Fatalf("without a resolver no field resolves, got %d", n)
	}

	class.SetDefaults(testRes, lenient)
	if res, _ := class.Defaults(); res != testRes {
		t.Fatalf("Defaults() did not return the published resolver")
	}
	dressed := class.New[scratch]("dressed", class.Declare(decl))
	if n := dressed.Fields().Len(); n != 1 {
		t.Fatalf("with the default resolver want 1 field, got %d", n)
	}
	// Already initialized classes keep their table.
	if n := bare.Fields().Len(); n != 0 {
		t.Fatalf("bare class changed after SetDefaults: %d fields", n)
	}
}

func TestIsDerivedFrom(t *testing.T) {
	cases := []struct {
		c, other apis.Class
		want     bool
	}{
		{shapeClass, shapeClass, true},
		{ringClass, ringClass, true},
		{circleClass, shapeClass, true},
		{ringClass, shapeClass, true},
		{ringClass, circleClass, true},
		{shapeClass, circleClass, false},
		{circleClass, ringClass, false},
		{linkClass, shapeClass, false},
		{shapeClass, nil, false},
	}
	for _, tc := range cases {
		if got := tc.c.IsDerivedFrom(tc.other); got != tc.want {
			t.Errorf("%v.IsDerivedFrom(%v) = %v, want %v", tc.c, tc.other, got, tc.want)
		}
	}
}

func TestClassMetadata(t *testing.T) {
	if ringClass.Name() != "ring" || ringClass.String() != "ring" {
		t.Errorf("Name/String = %q/%q", ringClass.Name(), ringClass.String())
	}
	if ringClass.Parent() != apis.Class(circleClass) || shapeClass.Parent() != nil {
		t.Errorf("unexpected parents")
	}
	if ringClass.Type() != reflect.TypeFor[ring]() {
		t.Errorf("Type = %v", ringClass.Type())
	}
	o := ringClass.New()
	if _, ok := o.(*ring); !ok || o.ClassType() != apis.Class(ringClass) {
		t.Errorf("New() = %T", o)
	}
}

func TestAssignAndMove(t *testing.T) {
	src := &circle{R: 3, shape: shape{ID: 1, Name: "c"}}
	dst := &circle{}
	if !circleClass.Assign(dst, src) || *dst != *src {
		t.Fatalf("Assign: dst = %+v, want %+v", dst, src)
	}

	// Exact class only.
	if circleClass.Assign(&circle{}, &ring{}) || shapeClass.Assign(&shape{}, &circle{}) {
		t.Fatalf("Assign must refuse instances of other classes")
	}
	if circleClass.Assign(nil, src) || circleClass.Assign(dst, (*circle)(nil)) {
		t.Fatalf("Assign must refuse nil")
	}

	moved := &circle{}
	if !circleClass.Move(moved, src) {
		t.Fatalf("Move failed")
	}
	if moved.R != 3 || moved.Name != "c" || *src != (circle{}) {
		t.Fatalf("Move: dst=%+v src=%+v", moved, src)
	}

	self := &circle{R: 9}
	if !circleClass.Move(self, self) || self.R != 9 {
		t.Fatalf("self-move must leave the instance unchanged, got %+v", self)
	}
}

func TestCopyWithAndNoCopy(t *testing.T) {
	src := &bag{Items: []int32{1, 2}}
	dst := &bag{}
	if !bagClass.Assign(dst, src) {
		t.Fatalf("Assign failed")
	}
	src.Items[0] = 100
	if dst.Items[0] != 1 {
		t.Fatalf("CopyWith must deep-copy, dst shares storage: %v", dst.Items)
	}

	if sealedClass.Assign(&sealed{}, &sealed{N: 1}) || sealedClass.Move(&sealed{}, &sealed{N: 1}) {
		t.Fatalf("NoCopy class must refuse Assign and Move")
	}
}
