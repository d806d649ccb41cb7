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

// Package strategy holds the default dynamic parsers. Each strategy matches a
// type shape (any slice, any map, any enum-like type) instead of an exact type,
// and composite strategies parse their elements back through the Helper so
// static overrides apply at every depth.
package strategy

import (
	"errors"

	"dirpx.dev/tpx/apis"
)

var (
	// ErrUnknownConstant is returned when enum input matches no constant.
	ErrUnknownConstant = errors.New("tpx(strategy): unknown constant")
	// ErrLength is returned when an array literal has the wrong number of elements.
	ErrLength = errors.New("tpx(strategy): wrong number of elements")
	// ErrMissingSeparator is returned when a map entry has no key/value separator.
	ErrMissingSeparator = errors.New("tpx(strategy): missing key/value separator")
)

// Defaults returns the default dynamic chain in resolution order:
// enum, text, pointer, slice, map, kind.
func Defaults() []apis.Strategy {
	return []apis.Strategy{
		NewEnumStrategy(),
		NewTextStrategy(),
		NewPointerStrategy(),
		NewSliceStrategy(),
		NewMapStrategy(),
		NewKindStrategy(),
	}
}
