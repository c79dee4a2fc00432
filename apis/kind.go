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

// Kind is the closed set of value shapes a field location can hold.
//
// Adding a kind means extending every consumer that switches on it
// (the value package, resolver strategies and printers).
type Kind uint8

const (
	// KindNone marks an inert descriptor; every operation on it fails.
	KindNone Kind = iota
	KindBool
	KindInt8
	KindUint8
	KindInt16
	KindUint16
	KindInt32
	KindUint32
	KindInt64
	KindUint64
	// KindText is a string value.
	KindText
	// KindObject is a nested reflectable instance held by value.
	KindObject
	// KindObjectRef is a reference to a reflectable instance of the
	// declared class or any class derived from it.
	KindObjectRef
	// KindArray is a homogeneous, growable sequence.
	KindArray
	// KindBoolArray is a sequence of booleans whose elements are not
	// exposed as addressable locations.
	KindBoolArray
)

var kindNames = [...]string{
	KindNone:      "none",
	KindBool:      "boolean",
	KindInt8:      "int8",
	KindUint8:     "uint8",
	KindInt16:     "int16",
	KindUint16:    "uint16",
	KindInt32:     "int32",
	KindUint32:    "uint32",
	KindInt64:     "int64",
	KindUint64:    "uint64",
	KindText:      "text",
	KindObject:    "object",
	KindObjectRef: "object_ref",
	KindArray:     "array",
	KindBoolArray: "bool_array",
}

// String returns the stable lowercase name of k.
// Unknown values render as "none".
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[KindNone]
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), true
		}
	}
	return KindNone, false
}

// Kinds returns every kind except KindNone, in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindNames)-1)
	for k := KindBool; int(k) < len(kindNames); k++ {
		out = append(out, k)
	}
	return out
}

// IsPrimitive reports whether k is a boolean, integer or text kind.
func (k Kind) IsPrimitive() bool {
	return k >= KindBool && k <= KindText
}

// IsInteger reports whether k is one of the fixed-width integer kinds.
func (k Kind) IsInteger() bool {
	return k >= KindInt8 && k <= KindUint64
}

// IsObject reports whether k refers to a reflectable class.
func (k Kind) IsObject() bool {
	return k == KindObject || k == KindObjectRef
}

// IsSequence reports whether k is an array kind.
func (k Kind) IsSequence() bool {
	return k == KindArray || k == KindBoolArray
}
