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
	"strings"
)

// Token is a type token: a value whose only job is to carry T to Capture.
//
// Use it directly:
//
//	t, err := apis.Capture(apis.Token[map[string][]int]{})
//
// or declare a named token that embeds it exactly one level deep:
//
//	type Scores struct{ apis.Token[map[string]float64] }
//	t, err := apis.Capture(Scores{})
//
// Tokens embedded two or more levels deep and tokens over the empty
// interface are rejected by Capture.
type Token[T any] struct{}

// tokenType reads back the type argument fixed at the declaration site.
func (Token[T]) tokenType() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// tokener is implemented by every Token instantiation.
type tokener interface {
	tokenType() reflect.Type
}

// tokenPkg is the package path of Token; instantiations report it too.
var tokenPkg = reflect.TypeOf(Token[int]{}).PkgPath()

// maxTokenDepth bounds the search for indirectly embedded tokens.
const maxTokenDepth = 8

// Capture returns the descriptor carried by tok. See Token for accepted shapes.
func Capture(tok any) (Type, error) {
	if tok == nil {
		return Type{}, &ConfigurationError{Op: "capture", Err: ErrNotToken}
	}
	rt := reflect.TypeOf(tok)
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if isToken(rt) {
		return fromToken(rt)
	}
	if rt.Kind() != reflect.Struct {
		return Type{}, &ConfigurationError{Op: "capture", Type: TypeOf(rt), Err: ErrNotToken}
	}

	var direct []reflect.Type
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if f.Anonymous && isToken(deref(f.Type)) {
			direct = append(direct, deref(f.Type))
		}
	}
	switch len(direct) {
	case 1:
		return fromToken(direct[0])
	case 0:
		if embedsToken(rt, 0, map[reflect.Type]bool{}) {
			return Type{}, &ConfigurationError{Op: "capture", Type: TypeOf(rt), Err: ErrTokenIndirect}
		}
		return Type{}, &ConfigurationError{Op: "capture", Type: TypeOf(rt), Err: ErrNotToken}
	default:
		return Type{}, &ConfigurationError{Op: "capture", Type: TypeOf(rt), Err: ErrTokenAmbiguous}
	}
}

// MustCapture is like Capture but panics on error.
// Intended for package-level variables.
func MustCapture(tok any) Type {
	t, err := Capture(tok)
	if err != nil {
		panic(err)
	}
	return t
}

// isToken reports whether rt is an instantiation of Token.
func isToken(rt reflect.Type) bool {
	return rt.Kind() == reflect.Struct &&
		rt.PkgPath() == tokenPkg &&
		strings.HasPrefix(rt.Name(), "Token[")
}

// fromToken extracts T from Token[T] and rejects the raw Token[any].
func fromToken(rt reflect.Type) (Type, error) {
	tt := reflect.Zero(rt).Interface().(tokener).tokenType()
	if tt.Kind() == reflect.Interface && tt.NumMethod() == 0 {
		return Type{}, &ConfigurationError{Op: "capture", Type: TypeOf(rt), Err: ErrTokenUnfixed}
	}
	return Type{rt: tt}, nil
}

// embedsToken reports whether a Token is reachable through anonymous fields
// below the first level.
func embedsToken(rt reflect.Type, depth int, seen map[reflect.Type]bool) bool {
	if depth >= maxTokenDepth || seen[rt] {
		return false
	}
	seen[rt] = true
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.Anonymous {
			continue
		}
		ft := deref(f.Type)
		if ft.Kind() != reflect.Struct {
			continue
		}
		if isToken(ft) || embedsToken(ft, depth+1, seen) {
			return true
		}
	}
	return false
}

func deref(rt reflect.Type) reflect.Type {
	if rt.Kind() == reflect.Pointer {
		return rt.Elem()
	}
	return rt
}
