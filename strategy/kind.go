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

package strategy

import (
	"reflect"

	"dirpx.dev/tpx/apis"
	uref "dirpx.dev/tpx/utils/reflect"
)

// NewKindStrategy creates an apis.Strategy for named types over a basic kind
// (type Port uint16, type Name string). The input is parsed as the
// predeclared type through the Helper and converted.
//
// It is the universal fallback and runs last in the default chain.
func NewKindStrategy() apis.Strategy {
	return kindStrategy{}
}

type kindStrategy struct{}

// Ensure kindStrategy implements apis.Strategy.
var _ apis.Strategy = kindStrategy{}

// TryResolve handles named basic types; predeclared types are left to the
// static table so an unregistered int never resolves to itself.
func (kindStrategy) TryResolve(t apis.Type) (apis.ParseFunc, bool) {
	rt := t.Reflect()
	base, ok := uref.Underlying(rt)
	if !ok {
		return nil, false
	}
	return func(input string, h apis.Helper) (any, error) {
		v, err := h.Parse(input, apis.TypeOf(base))
		if err != nil {
			return nil, err
		}
		return reflect.ValueOf(v).Convert(rt).Interface(), nil
	}, true
}
