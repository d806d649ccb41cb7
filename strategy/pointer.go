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

// NewPointerStrategy creates an apis.Strategy for *T: the input is parsed as
// T through the Helper and a freshly allocated pointer is returned.
func NewPointerStrategy() apis.Strategy {
	return pointerStrategy{}
}

type pointerStrategy struct{}

// Ensure pointerStrategy implements apis.Strategy.
var _ apis.Strategy = pointerStrategy{}

// TryResolve handles every pointer type.
func (pointerStrategy) TryResolve(t apis.Type) (apis.ParseFunc, bool) {
	if t.Kind() != reflect.Pointer {
		return nil, false
	}
	elem := t.Reflect().Elem()
	return func(input string, h apis.Helper) (any, error) {
		v, err := h.Parse(input, apis.TypeOf(elem))
		if err != nil {
			return nil, err
		}
		p := reflect.New(elem)
		if err := uref.Assign(p.Elem(), v); err != nil {
			return nil, err
		}
		return p.Interface(), nil
	}, true
}
