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

package value

import (
	"reflect"

	"dirpx.dev/rfield/apis"
)

// None is the inert descriptor. It reports KindNone and every operation
// fails.
var None apis.Sequence = none{}

type none struct{}

func (none) Kind() apis.Kind             { return apis.KindNone }
func (none) Class() apis.Class           { return nil }
func (none) Elem() apis.Value            { return nil }
func (none) Type() reflect.Type          { return nil }
func (none) Get(any) (any, bool)         { return nil, false }
func (none) Set(any, any) bool           { return false }
func (none) Move(any, any) bool          { return false }
func (none) Len(any) (int, bool)         { return 0, false }
func (none) Index(any, int) (any, bool)  { return nil, false }
func (none) SetIndex(any, int, any) bool { return false }
func (none) Insert(any, int, any) bool   { return false }
func (none) Remove(any, int) bool        { return false }
func (none) Clear(any) bool              { return false }
func (none) Locate(any, int) (any, bool) { return nil, false }
