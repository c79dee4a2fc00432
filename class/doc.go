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

// Package class implements class descriptors: per-class singletons that
// own an ordered field table, know their parent class, and perform the
// exact-class structural copy behind object-valued fields.
//
// A class is declared once, usually as a package-level variable, with a
// builder-style option list:
//
//	var DogClass = class.New[Dog]("Dog",
//		class.Extends(AnimalClass, func(d *Dog) *Animal { return &d.Animal }),
//		class.Declare(func(d *class.Declarer[Dog]) {
//			class.Field(d, "name", func(x *Dog) *string { return &x.Name })
//			class.Field(d, "age", func(x *Dog) *uint32 { return &x.Age })
//		}),
//	)
//
//	func (*Dog) ClassType() apis.Class { return DogClass }
//
// The declarations run lazily, on the first call to Initialize or Fields.
// At that point the parent chain is initialized (root first), the parent's
// fields are inherited through the upcast accessor, and each declared
// field's Go type is turned into a value descriptor by the resolver.
//
// Fields are addressed through typed accessor closures rather than raw
// offsets; the offset of each field is still computed at declaration time
// and reported for diagnostics.
//
// Declaration callbacks must not call Fields or Initialize on the class
// being declared: initialization runs under a sync.Once.
package class
