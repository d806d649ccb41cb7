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

import (
	"reflect"
	"strconv"
)

// Type describes a parse target. It is an immutable value usable as a map key.
//
// Two flavors share one equality contract:
//
//   - simple: a named or basic type (int, string, uuid.UUID, a user struct);
//   - parameterized: an unnamed composite built from a base shape and ordered
//     type arguments ([]int, map[string]float64, [3]int, *T, chan T).
//
// Two Types are equal (==) iff they denote the same Go type. The runtime
// canonicalizes unnamed composites structurally, so independently captured
// []int descriptors compare and hash equal while []int and []int64 do not.
type Type struct {
	rt reflect.Type
}

// Of returns the descriptor for T. It always succeeds, including for
// interface types such as any.
func Of[T any]() Type {
	return Type{rt: reflect.TypeOf((*T)(nil)).Elem()}
}

// TypeOf wraps an existing reflect.Type. A nil rt yields the zero Type.
func TypeOf(rt reflect.Type) Type {
	return Type{rt: rt}
}

// Reflect returns the underlying reflect.Type (nil for the zero Type).
func (t Type) Reflect() reflect.Type { return t.rt }

// IsZero reports whether t describes nothing.
func (t Type) IsZero() bool { return t.rt == nil }

// Kind returns the reflect kind of t, or reflect.Invalid for the zero Type.
func (t Type) Kind() reflect.Kind {
	if t.rt == nil {
		return reflect.Invalid
	}
	return t.rt.Kind()
}

// IsParameterized reports whether t is an unnamed composite whose identity
// is its base shape plus type arguments.
func (t Type) IsParameterized() bool {
	return len(t.Args()) > 0
}

// Base returns the shape of a parameterized type ("[]", "[3]", "map", "*",
// "chan") or the full name of a simple one.
func (t Type) Base() string {
	if t.rt == nil {
		return "<nil>"
	}
	if t.rt.Name() != "" {
		return t.rt.String()
	}
	switch t.rt.Kind() {
	case reflect.Slice:
		return "[]"
	case reflect.Array:
		return "[" + strconv.Itoa(t.rt.Len()) + "]"
	case reflect.Map:
		return "map"
	case reflect.Pointer:
		return "*"
	case reflect.Chan:
		return "chan"
	default:
		return t.rt.String()
	}
}

// Args returns the ordered type arguments of a parameterized type: the
// element for slices, arrays, pointers and channels; key then element for
// maps. Simple types, named containers included, return nil.
func (t Type) Args() []Type {
	if t.rt == nil || t.rt.Name() != "" {
		return nil
	}
	switch t.rt.Kind() {
	case reflect.Slice, reflect.Array, reflect.Pointer, reflect.Chan:
		return []Type{{rt: t.rt.Elem()}}
	case reflect.Map:
		return []Type{{rt: t.rt.Key()}, {rt: t.rt.Elem()}}
	default:
		return nil
	}
}

// String returns the structural Go name of t, e.g. "map[string][]int".
func (t Type) String() string {
	if t.rt == nil {
		return "<nil>"
	}
	return t.rt.String()
}
