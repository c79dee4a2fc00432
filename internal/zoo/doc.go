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


// Package zoo is a small class hierarchy used by tests and the rfield
// command:
//
//	Animal            (root, no fields)
//	├── Dog           name, age
//	│   └── Puppy     trained
//	└── Cat           name, lives, indoor
//	Owner             name, pet (ref Animal), best (ref Dog), collar (Collar)
//	Collar            tag, size
//	Rock              unrelated to Animal
//	Kennel            arrays of every flavour
package zoo
