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

// Config carries read-only knobs for class registration and resolution.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// Strict turns registration errors (duplicate field names, field types
	// with no descriptor, conflicting class registrations) into panics.
	// When false they are logged and the offending entry is replaced or
	// dropped.
	Strict bool

	// MaxUnwrap limits slice nesting when resolving array descriptors
	// ([][]T counts as 2). Acts as a guard against pathological nesting.
	MaxUnwrap int
}
