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


// Package rfield provides runtime class and field reflection for Go structs.
//
// A reflectable struct declares, once, a Class: a name, an optional parent
// class, and an ordered table of named fields. Each field pairs a typed
// accessor with a value descriptor (apis.Value) of a closed set of kinds:
// booleans, fixed-width integers, text, nested objects, references to
// objects, arrays and boolean arrays. Generic code can then list, read
// and write the fields of any instance by name without knowing its
// concrete type at compile time:
//
//	c, _ := rfield.ClassOf(obj)
//	for _, f := range rfield.Describe(c) {
//		v, _ := rfield.Get(obj, f.Name)
//		fmt.Println(f.Name, f.Kind, v)
//	}
//
// # Declaring a class
//
// The instance side is a single method on the struct's pointer type:
//
//	type Dog struct {
//		Animal
//		Name string
//		Age  uint32
//	}
//
//	var dogClass = rfield.NewClass[Dog]("zoo.Dog",
//		class.Extends(animalClass, func(d *Dog) *Animal { return &d.Animal }),
//		class.Declare(func(d *class.Declarer[Dog]) {
//			class.Field(d, "name", func(x *Dog) *string { return &x.Name })
//			class.Field(d, "age", func(x *Dog) *uint32 { return &x.Age })
//		}))
//
//	func (*Dog) ClassType() apis.Class { return dogClass }
//
// Field tables are built lazily, exactly once, on first use. Parent
// fields come first, then the class's own declarations in order.
//
// # Design
//
// Like the type layer it is built on, rfield keeps a read-mostly global
// snapshot (state) holding four things:
//
//   - Config: Strict (registration errors panic instead of being logged)
//     and MaxUnwrap (slice nesting guard).
//
//   - Registry: a process-wide directory from Go types and class names to
//     classes. NewClass registers into it; Bind adds interface types used
//     for polymorphic references.
//
//   - Resolver: maps a field's Go type to its value descriptor, trying in
//     order: apis.Describer, the primitive table, slices, registered
//     structs (objects), then pointers and bound interfaces (references).
//
//   - Builder: a pluggable factory that constructs Registry and Resolver
//     for a given Config and optional extension data (builder.Extension
//     for the default builder).
//
// Readers load the current snapshot atomically and never lock. Writers
// (SetConfig, SetBuilder, SetExt, SetRegistry, SetResolver, SetAll, Pin*
// and Unpin*) take a short build mutex, assemble a new snapshot and
// publish it. Every published resolver and config also becomes the
// default used by classes that initialize afterwards.
//
// # Pinning
//
// SetRegistry and SetResolver pin the layer they replace: it is no longer
// rebuilt on SetConfig, SetBuilder or SetExt until UnpinRegistry or
// UnpinResolver.
//
// # Assignment rules
//
// Object fields hold nested instances by value; assignment requires the
// exact same class, so a derived instance is never truncated into a base.
// Reference fields accept any instance whose class is the declared class
// or one of its descendants. Concurrent Get/Set on one instance must be
// serialized by the caller.
package rfield
