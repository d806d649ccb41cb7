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

// Registry is the static parser table: exact Type -> ParseFunc.
// Implementations are immutable once constructed and safe for concurrent reads.
type Registry interface {
	// Lookup returns the parser registered for exactly t.
	Lookup(t Type) (fn ParseFunc, ok bool)
	// Entries returns a snapshot sorted by type name.
	Entries() []Entry
	// Count returns the number of registered entries.
	Count() int
}

// Entry is a single (type, parser) association in a Registry snapshot.
type Entry struct {
	// Type is the registered descriptor.
	Type Type
	// Parser is the associated conversion routine.
	Parser ParseFunc
}
