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

package registry

import (
	"reflect"
	"sort"
	"strconv"

	"dirpx.dev/tpx/apis"
)

// New constructs an immutable Registry holding a copy of entries.
// Zero types and nil parsers are skipped.
func New(entries map[apis.Type]apis.ParseFunc) apis.Registry {
	m := make(map[apis.Type]apis.ParseFunc, len(entries))
	for t, fn := range entries {
		if t.IsZero() || fn == nil {
			continue
		}
		m[t] = fn
	}
	return &registry{m: m}
}

// registry is a read-only table. It is never written after New, so plain map
// reads are safe from any number of goroutines without locking.
type registry struct {
	// m maps a type descriptor to its parser.
	m map[apis.Type]apis.ParseFunc
}

// Ensure registry implements apis.Registry.
var _ apis.Registry = (*registry)(nil)

// Lookup returns the parser registered for exactly t.
func (r *registry) Lookup(t apis.Type) (apis.ParseFunc, bool) {
	if t.IsZero() {
		return nil, false
	}
	fn, ok := r.m[t]
	return fn, ok
}

// Entries returns a snapshot sorted by type name. Types printing the same
// (same-named packages) are ordered by import path.
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, len(r.m))
	for t, fn := range r.m {
		entries = append(entries, apis.Entry{Type: t, Parser: fn})
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i].Type, entries[j].Type
		if as, bs := a.String(), b.String(); as != bs {
			return as < bs
		}
		return qualified(a.Reflect()) < qualified(b.Reflect())
	})
	return entries
}

// qualified spells rt with full import paths for named types.
func qualified(rt reflect.Type) string {
	if rt.Name() != "" {
		return rt.PkgPath() + "." + rt.Name()
	}
	switch rt.Kind() {
	case reflect.Slice:
		return "[]" + qualified(rt.Elem())
	case reflect.Array:
		return "[" + strconv.Itoa(rt.Len()) + "]" + qualified(rt.Elem())
	case reflect.Pointer:
		return "*" + qualified(rt.Elem())
	case reflect.Chan:
		return "chan " + qualified(rt.Elem())
	case reflect.Map:
		return "map[" + qualified(rt.Key()) + "]" + qualified(rt.Elem())
	default:
		return rt.String()
	}
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	return len(r.m)
}
