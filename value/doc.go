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

// Package value implements the value descriptors: stateless strategy
// objects that read and write one shape of field storage through a typed
// location pointer.
//
// Primitive descriptors are package-level singletons (Bool, Int8, ...,
// Text). Object, ObjectRef and Array descriptors are built by the resolver
// for each distinct declared type and cached there. None is the inert
// descriptor returned for shapes that could not be built.
package value
