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

// Package split implements the default collection and map-entry splitters.
// Separators inside (), [] or {} are ignored, which lets element literals
// nest: "[1,2],[3]" splits into "[1,2]" and "[3]".
package split

import (
	"strings"
	"unicode/utf8"
)

var closers = map[rune]rune{'[': ']', '(': ')', '{': '}'}

// List trims input, strips one pair of enclosing brackets and splits the rest
// on sep at bracket depth zero. Elements are trimmed. Blank input yields an
// empty, non-nil slice.
func List(input string, sep rune) []string {
	s := Unwrap(strings.TrimSpace(input))
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	var (
		out   []string
		depth int
		start int
	)
	for i, r := range s {
		switch {
		case isOpen(r):
			depth++
		case isClose(r):
			if depth > 0 {
				depth--
			}
		case r == sep && depth == 0:
			out = append(out, strings.TrimSpace(s[start:i]))
			start = i + utf8.RuneLen(r)
		}
	}
	return append(out, strings.TrimSpace(s[start:]))
}

// KeyValue splits input at the first occurrence of sep at bracket depth zero.
// Key and value are trimmed. ok is false when sep does not occur.
func KeyValue(input, sep string) (key, value string, ok bool) {
	if sep == "" {
		return "", "", false
	}
	depth := 0
	for i, r := range input {
		switch {
		case isOpen(r):
			depth++
		case isClose(r):
			if depth > 0 {
				depth--
			}
		case depth == 0 && strings.HasPrefix(input[i:], sep):
			return strings.TrimSpace(input[:i]), strings.TrimSpace(input[i+len(sep):]), true
		}
	}
	return "", "", false
}

// Unwrap removes one pair of brackets if the opening bracket at position 0
// is closed by the last character. "[1,2]" -> "1,2"; "[1],[2]" is unchanged.
func Unwrap(s string) string {
	if len(s) < 2 {
		return s
	}
	open, _ := utf8.DecodeRuneInString(s)
	want, ok := closers[open]
	if !ok {
		return s
	}
	last, _ := utf8.DecodeLastRuneInString(s)
	if last != want {
		return s
	}
	depth := 0
	for i, r := range s {
		switch {
		case isOpen(r):
			depth++
		case isClose(r):
			depth--
			if depth == 0 && i != len(s)-utf8.RuneLen(last) {
				return s
			}
		}
	}
	if depth != 0 {
		return s
	}
	return s[utf8.RuneLen(open) : len(s)-utf8.RuneLen(last)]
}

func isOpen(r rune) bool { return r == '[' || r == '(' || r == '{' }

func isClose(r rune) bool { return r == ']' || r == ')' || r == '}' }
