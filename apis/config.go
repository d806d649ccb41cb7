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

// Config carries read-only parsing knobs.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// Locale is a BCP 47 tag used by locale-aware number parsing (e.g. "en-US", "de").
	Locale string `yaml:"locale"`

	// ListSeparator is the single character separating collection elements.
	ListSeparator string `yaml:"listSeparator"`

	// KeyValueSeparator separates a map key from its value.
	KeyValueSeparator string `yaml:"keyValueSeparator"`

	// MaxDepth limits nested parsing (collections of collections, pointers).
	// Acts as a safety guard against self-referential types.
	MaxDepth int `yaml:"maxDepth"`
}
