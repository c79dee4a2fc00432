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

import "reflect"

// Registry binds Go types to classes and serves as the process-wide
// name directory.
type Registry interface {
	// Register adds c under its name and its struct type.
	// Re-registering the same class is a no-op; a different class under an
	// existing name or type is rejected.
	Register(c Class) error

	// Bind associates an additional type (typically an interface used for
	// polymorphic references) with an already usable class.
	Bind(t reflect.Type, c Class) error

	// Lookup returns the class bound to t.
	Lookup(t reflect.Type) (Class, bool)

	// LookupName returns the class registered under name.
	LookupName(name string) (Class, bool)

	// Classes returns every registered class sorted by name.
	Classes() []Class

	// Entries returns every type binding sorted by class name, then type.
	Entries() []Entry

	// Count returns the number of registered classes.
	Count() int

	// Reset clears all classes and bindings.
	Reset()
}

// Entry is a single (type, class) binding in a Registry snapshot.
type Entry struct {
	// Type is the bound reflect.Type.
	Type reflect.Type
	// Class is the associated class.
	Class Class
}
