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

var emptyStruct = reflect.TypeOf(struct{}{})

// NewMapStrategy creates an apis.Strategy for maps. Entries come from
// Helper.Split and are divided by Helper.SplitKeyValue; keys and values are
// parsed through Helper.Parse. map[K]struct{} is treated as a set: each
// entry is a key. Duplicate keys keep the last value.
func NewMapStrategy() apis.Strategy {
	return mapStrategy{}
}

type mapStrategy struct{}

// Ensure mapStrategy implements apis.Strategy.
var _ apis.Strategy = mapStrategy{}

// TryResolve handles every map kind.
func (mapStrategy) TryResolve(t apis.Type) (apis.ParseFunc, bool) {
	if t.Kind() != reflect.Map {
		return nil, false
	}
	rt := t.Reflect()
	key, elem := apis.TypeOf(rt.Key()), apis.TypeOf(rt.Elem())
	if rt.Elem() == emptyStruct {
		return func(input string, h apis.Helper) (any, error) {
			parts := h.Split(input)
			out := reflect.MakeMapWithSize(rt, len(parts))
			for i, part := range parts {
				k, err := parseInto(part, key, h)
				if err != nil {
					return nil, fmt.Errorf("element %d: %w", i, err)
				}
				out.SetMapIndex(k, reflect.Zero(rt.Elem()))
			}
			return out.Interface(), nil
		}, true
	}
	return func(input string, h apis.Helper) (any, error) {
		parts := h.Split(input)
		out := reflect.MakeMapWithSize(rt, len(parts))
		for i, part := range parts {
			ks, vs, ok := h.SplitKeyValue(part)
			if !ok {
				return nil, fmt.Errorf("entry %d: %w in \"%s\"", i, ErrMissingSeparator, part)
			}
			k, err := parseInto(ks, key, h)
			if err != nil {
				return nil, fmt.Errorf("key %d: %w", i, err)
			}
			v, err := parseInto(vs, elem, h)
			if err != nil {
				return nil, fmt.Errorf("value %d: %w", i, err)
			}
			out.SetMapIndex(k, v)
		}
		return out.Interface(), nil
	}, true
}

// parseInto parses input as t and returns it as a reflect.Value of type t.
func parseInto(input string, t apis.Type, h apis.Helper) (reflect.Value, error) {
	v, err := h.Parse(input, t)
	if err != nil {
		return reflect.Value{}, err
	}
	return uref.ValueFor(v, t.Reflect())
}
