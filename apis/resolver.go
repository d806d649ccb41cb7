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

// Resolver binds parsers to types and runs them.
// Precedence: static Registry, then Strategies in order, else ConfigurationError.
// A built Resolver is immutable and safe for concurrent use.
type Resolver interface {
	// Resolve returns the parser for t or a *ConfigurationError.
	Resolve(t Type) (ParseFunc, error)

	// Parse converts input to t. Data failures are *ConversionError,
	// setup failures *ConfigurationError.
	Parse(input string, t Type) (any, error)

	// ParseNullable is Parse for optional input. A nil input always fails
	// with a *ConversionError wrapping ErrNullInput, whatever t is.
	ParseNullable(input *string, t Type) (any, error)

	// Registry returns the static table.
	Registry() Registry

	// Strategies returns a copy of the dynamic chain, in order.
	Strategies() []Strategy

	// Config returns the configuration the resolver was built with.
	Config() Config
}
