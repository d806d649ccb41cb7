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
	"fmt"
	"reflect"

	"dirpx.dev/tpx/apis"
	uref "dirpx.dev/tpx/utils/reflect"
)

// NewSliceStrategy creates an apis.Strategy for slices and arrays.
// The input is split with Helper.Split and every element is parsed through
// Helper.Parse. Arrays require exactly Len elements.
func NewSliceStrategy() apis.Strategy {
	return sliceStrategy{}
}

type sliceStrategy struct{}

// Ensure sliceStrategy implements apis.Strategy.
var _ apis.Strategy = sliceStrategy{}

// TryResolve handles slice and array kinds, named or not.
func (sliceStrategy) TryResolve(t apis.Type) (apis.ParseFunc, bool) {
	rt := t.Reflect()
	switch t.Kind() {
	case reflect.Slice:
		return func(input string, h apis.Helper) (any, error) {
			parts := h.Split(input)
			out := reflect.MakeSlice(rt, len(parts), len(parts))
			if err := fill(out, parts, h); err != nil {
				return nil, err
			}
			return out.Interface(), nil
		}, true
	case reflect.Array:
		return func(input string, h apis.Helper) (any, error) {
			parts := h.Split(input)
			if len(parts) != rt.Len() {
				return nil, fmt.Errorf("%w: want %d, got %d", ErrLength, rt.Len(), len(parts))
			}
			out := reflect.New(rt).Elem()
			if err := fill(out, parts, h); err != nil {
				return nil, err
			}
			return out.Interface(), nil
		}, true
	}
	return nil, false
}

// fill parses parts into the elements of out, which has len(parts) elements.
func fill(out reflect.Value, parts []string, h apis.Helper) error {
	elem := apis.TypeOf(out.Type().Elem())
	for i, part := range parts {
		v, err := h.Parse(part, elem)
		if err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
		if err := uref.Assign(out.Index(i), v); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}
