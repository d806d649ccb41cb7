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
	"encoding"
	"reflect"
	"strings"

	"dirpx.dev/tpx/apis"
)

var textUnmarshaler = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

// NewTextStrategy creates an apis.Strategy for types that decode themselves:
// T where *T implements encoding.TextUnmarshaler (time.Time, netip.Addr, ...),
// and pointer types *T implementing it directly.
func NewTextStrategy() apis.Strategy {
	return textStrategy{}
}

// textStrategy is the fast path for self-describing types: the type knows
// its own text form, so no further resolution is needed.
type textStrategy struct{}

// Ensure textStrategy implements apis.Strategy.
var _ apis.Strategy = textStrategy{}

// TryResolve handles t if t or *t implements encoding.TextUnmarshaler.
func (textStrategy) TryResolve(t apis.Type) (apis.ParseFunc, bool) {
	rt := t.Reflect()
	if rt == nil || rt.Kind() == reflect.Interface {
		return nil, false
	}
	switch {
	case rt.Kind() != reflect.Pointer && reflect.PointerTo(rt).Implements(textUnmarshaler):
		return func(input string, _ apis.Helper) (any, error) {
			v := reflect.New(rt)
			if err := v.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(strings.TrimSpace(input))); err != nil {
				return nil, err
			}
			return v.Elem().Interface(), nil
		}, true
	case rt.Kind() == reflect.Pointer && rt.Elem().Kind() != reflect.Pointer && rt.Implements(textUnmarshaler):
		return func(input string, _ apis.Helper) (any, error) {
			v := reflect.New(rt.Elem())
			if err := v.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(strings.TrimSpace(input))); err != nil {
				return nil, err
			}
			return v.Interface(), nil
		}, true
	}
	return nil, false
}
