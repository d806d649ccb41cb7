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
	"errors"
	"fmt"
)

var (
	// ErrNullInput is the cause of every ConversionError raised for absent input.
	ErrNullInput = errors.New("tpx: null input")
	// ErrNoParser indicates that neither the static table nor any strategy handles a type.
	ErrNoParser = errors.New("tpx: no parser registered")
	// ErrNotRegistered is returned when unregistering a type that has no static parser.
	ErrNotRegistered = errors.New("tpx: type is not registered")
	// ErrZeroType is returned when the zero Type is used as a target or key.
	ErrZeroType = errors.New("tpx: zero type descriptor")
	// ErrNilParser is returned when registering a nil ParseFunc.
	ErrNilParser = errors.New("tpx: nil parser")
	// ErrNilStrategy is returned when registering a nil Strategy.
	ErrNilStrategy = errors.New("tpx: nil strategy")
	// ErrNotToken is returned by Capture for values that carry no Token.
	ErrNotToken = errors.New("tpx: value is not a type token")
	// ErrTokenIndirect is returned by Capture when Token is embedded more than one level deep.
	ErrTokenIndirect = errors.New("tpx: type token must embed Token directly")
	// ErrTokenUnfixed is returned by Capture for Token[any], which fixes no type.
	ErrTokenUnfixed = errors.New("tpx: type token must fix its type parameter")
	// ErrTokenAmbiguous is returned by Capture when a struct embeds several tokens.
	ErrTokenAmbiguous = errors.New("tpx: type token embeds more than one Token")
	// ErrMaxDepth indicates that nested parsing exceeded Config.MaxDepth.
	ErrMaxDepth = errors.New("tpx: maximum nesting depth exceeded")
	// ErrResultType indicates that a parser returned a value not assignable to its target.
	ErrResultType = errors.New("tpx: parser returned a value of the wrong type")
)

// ConversionError is the uniform data-level failure: the input could not be
// represented as Type. Err holds the underlying cause (ErrNullInput for
// absent input).
type ConversionError struct {
	// Type is the requested target.
	Type Type
	// Input is the offending text, verbatim.
	Input string
	// Err is the underlying cause, if any.
	Err error
}

func (e *ConversionError) Error() string {
	if errors.Is(e.Err, ErrNullInput) {
		return fmt.Sprintf("tpx: cannot parse null input as %s", e.Type)
	}
	msg := fmt.Sprintf("tpx: cannot parse %q as %s", e.Input, e.Type)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConversionError) Unwrap() error { return e.Err }

// ConfigurationError reports misuse of the registry or builder: no parser for
// a type, unregistering an absent type, or an invalid type token. It is never
// retried; the caller must fix its setup.
type ConfigurationError struct {
	// Op names the failed operation ("resolve", "unregister", "capture", ...).
	Op string
	// Type is the descriptor involved; may be zero.
	Type Type
	// Err is the sentinel cause.
	Err error
}

func (e *ConfigurationError) Error() string {
	if e.Type.IsZero() {
		return fmt.Sprintf("tpx: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("tpx: %s %s: %v", e.Op, e.Type, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }
