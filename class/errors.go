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
	"errors"
)

var (
	// ErrDuplicateField is raised when a field name is declared twice on
	// one class (including a name that shadows an inherited field).
	ErrDuplicateField = errors.New("rfield(class): duplicate field")
	// ErrUnresolvedType is raised when no descriptor exists for a field's
	// declared type.
	ErrUnresolvedType = errors.New("rfield(class): no descriptor for field type")
	// ErrDescriptorMismatch is raised when an explicit descriptor does not
	// describe the field's Go type.
	ErrDescriptorMismatch = errors.New("rfield(class): descriptor does not match field type")
	// ErrEmptyFieldName is raised for a field declared without a name.
	ErrEmptyFieldName = errors.New("rfield(class): empty field name")
)
