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

// Char is a single character. It is distinct from rune, which aliases int32
// and therefore parses as an integer.
type Char rune

// Path is a filesystem path. Parsing trims it and never touches the filesystem.
type Path string

// Number is an abstract numeric value produced by locale-aware parsing.
// json.Number implements it.
type Number interface {
	Int64() (int64, error)
	Float64() (float64, error)
	String() string
}
