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

package reflect

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectNotAssignable indicates that a parsed value cannot be stored
	// into the destination type.
	ErrReflectNotAssignable = errors.New("reflect: value not assignable")
)

// basics maps each basic kind to its unnamed predeclared type.
var basics = map[reflect.Kind]reflect.Type{
	reflect.Bool:       reflect.TypeOf(false),
	reflect.Int:        reflect.TypeOf(int(0)),
	reflect.Int8:       reflect.TypeOf(int8(0)),
	reflect.Int16:      reflect.TypeOf(int16(0)),
	reflect.Int32:      reflect.TypeOf(int32(0)),
	reflect.Int64:      reflect.TypeOf(int64(0)),
	reflect.Uint:       reflect.TypeOf(uint(0)),
	reflect.Uint8:      reflect.TypeOf(uint8(0)),
	reflect.Uint16:     reflect.TypeOf(uint16(0)),
	reflect.Uint32:     reflect.TypeOf(uint32(0)),
	reflect.Uint64:     reflect.TypeOf(uint64(0)),
	reflect.Float32:    reflect.TypeOf(float32(0)),
	reflect.Float64:    reflect.TypeOf(float64(0)),
	reflect.Complex64:  reflect.TypeOf(complex64(0)),
	reflect.Complex128: reflect.TypeOf(complex128(0)),
	reflect.String:     reflect.TypeOf(""),
}

// Underlying returns the predeclared basic type behind a named basic type
// (type Port uint16 -> uint16). It returns false for predeclared types
// themselves and for non-basic kinds.
func Underlying(t reflect.Type) (reflect.Type, bool) {
	if t == nil {
		return nil, false
	}
	b, ok := basics[t.Kind()]
	if !ok || b == t {
		return nil, false
	}
	return b, true
}

// IsEmptyInterface reports whether t is interface{} / any.
func IsEmptyInterface(t reflect.Type) bool {
	return t != nil && t.Kind() == reflect.Interface && t.NumMethod() == 0
}

// Nillable reports whether the zero value of t is nil.
func Nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return true
	default:
		return false
	}
}

// CheckAssignable verifies that v can be stored in a location of type t.
// A nil v is accepted only for nillable t.
func CheckAssignable(v any, t reflect.Type) error {
	if t == nil {
		return ErrReflectNilType
	}
	if v == nil {
		if Nillable(t) {
			return nil
		}
		return fmt.Errorf("%w: nil to %s", ErrReflectNotAssignable, t)
	}
	if vt := reflect.TypeOf(v); !vt.AssignableTo(t) {
		return fmt.Errorf("%w: %s to %s", ErrReflectNotAssignable, vt, t)
	}
	return nil
}

// ValueFor returns v as a reflect.Value of type t, using the zero value for nil.
func ValueFor(v any, t reflect.Type) (reflect.Value, error) {
	if err := CheckAssignable(v, t); err != nil {
		return reflect.Value{}, err
	}
	if v == nil {
		return reflect.Zero(t), nil
	}
	rv := reflect.ValueOf(v)
	if rv.Type() != t {
		// Interface destinations: wrap so SetMapIndex and Set see type t.
		nv := reflect.New(t).Elem()
		nv.Set(rv)
		return nv, nil
	}
	return rv, nil
}

// Assign stores v into dst.
func Assign(dst reflect.Value, v any) error {
	rv, err := ValueFor(v, dst.Type())
	if err != nil {
		return err
	}
	dst.Set(rv)
	return nil
}

// EnumValues returns the constants of an enum-like type: a named,
// non-interface type t implementing fmt.Stringer with a value method
// Values() []t. The second result is false for any other type.
func EnumValues(t reflect.Type) ([]reflect.Value, bool) {
	if t == nil || t.Name() == "" || t.Kind() == reflect.Interface {
		return nil, false
	}
	if !t.Implements(stringer) {
		return nil, false
	}
	m, ok := t.MethodByName("Values")
	if !ok {
		return nil, false
	}
	// Method type includes the receiver as the first input.
	mt := m.Type
	if mt.NumIn() != 1 || mt.NumOut() != 1 || mt.Out(0) != reflect.SliceOf(t) {
		return nil, false
	}
	out := m.Func.Call([]reflect.Value{reflect.Zero(t)})[0]
	vals := make([]reflect.Value, out.Len())
	for i := range vals {
		vals[i] = out.Index(i)
	}
	return vals, true
}

var stringer = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
