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
	"strings"

	"dirpx.dev/tpx/apis"
	uref "dirpx.dev/tpx/utils/reflect"
)

// NewEnumStrategy creates an apis.Strategy for enum-like types: named types
// implementing fmt.Stringer with a value method Values() []T.
//
//	type Color int
//	func (c Color) String() string { ... }
//	func (Color) Values() []Color  { return []Color{Red, Green} }
func NewEnumStrategy() apis.Strategy {
	return enumStrategy{}
}

// enumStrategy matches trimmed input against each constant's String().
type enumStrategy struct{}

// Ensure enumStrategy implements apis.Strategy.
var _ apis.Strategy = enumStrategy{}

// TryResolve handles t if it exposes its constants.
func (enumStrategy) TryResolve(t apis.Type) (apis.ParseFunc, bool) {
	values, ok := uref.EnumValues(t.Reflect())
	if !ok {
		return nil, false
	}
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.Interface().(fmt.Stringer).String()
	}
	return func(input string, _ apis.Helper) (any, error) {
		s := strings.TrimSpace(input)
		for i, name := range names {
			if name == s {
				return values[i].Interface(), nil
			}
		}
		return nil, fmt.Errorf("%w: \"%s\" is not one of [%s]", ErrUnknownConstant, input, strings.Join(names, ", "))
	}, true
}
