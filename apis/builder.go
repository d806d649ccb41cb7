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

// Builder assembles a Resolver. Builders are mutable and not safe for
// concurrent use; every Build returns an independent immutable snapshot.
type Builder interface {
	// Register binds fn to exactly t, replacing any existing entry.
	Register(t Type, fn ParseFunc) error
	// RegisterToken is Register for the type carried by a Token.
	RegisterToken(tok any, fn ParseFunc) error
	// RegisterStrategy inserts s into the dynamic chain at pos.
	RegisterStrategy(s Strategy, pos Position) error
	// RegisterDynamic inserts a (predicate, parser) pair into the dynamic chain at pos.
	RegisterDynamic(pred func(Type) bool, fn ParseFunc, pos Position) error
	// Unregister removes the static entry for t. Removing an absent entry
	// fails with a *ConfigurationError wrapping ErrNotRegistered.
	Unregister(t Type) error
	// UnregisterToken is Unregister for the type carried by a Token.
	UnregisterToken(tok any) error
	// SetSplitter replaces the collection splitter; nil restores the default.
	SetSplitter(fn SplitFunc)
	// SetKeyValueSplitter replaces the map entry splitter; nil restores the default.
	SetKeyValueSplitter(fn KeyValueSplitFunc)
	// SetPreprocessor installs an input rewrite run before every parser; nil removes it.
	SetPreprocessor(fn PreprocessFunc)
	// Build returns an immutable Resolver. Later builder mutations do not affect it.
	Build() Resolver
}
