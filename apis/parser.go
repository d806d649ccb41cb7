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

// ParseFunc converts input into a value of h.Type().
// Returned errors are wrapped into a ConversionError by the caller;
// implementations should not wrap them themselves.
type ParseFunc func(input string, h Helper) (any, error)

// Helper is the read-only context handed to a ParseFunc for one parse call.
type Helper interface {
	// Type returns the requested target.
	Type() Type
	// Args returns the target's type arguments (see Type.Args).
	Args() []Type
	// Config returns the resolver configuration.
	Config() Config
	// Parse converts input to t through the same resolver, one level deeper.
	Parse(input string, t Type) (any, error)
	// Split splits a collection literal into element literals.
	Split(input string) []string
	// SplitKeyValue splits a map entry literal into key and value.
	SplitKeyValue(input string) (key, value string, ok bool)
}

// SplitFunc replaces the default collection splitter.
type SplitFunc func(input string, h Helper) []string

// KeyValueSplitFunc replaces the default map entry splitter.
type KeyValueSplitFunc func(input string, h Helper) (key, value string, ok bool)

// PreprocessFunc rewrites input before any ParseFunc sees it, at every depth.
type PreprocessFunc func(input string, h Helper) string
