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

package registry_test

import (
	htemplate "html/template"
	"testing"
	ttemplate "text/template"

	"dirpx.dev/tpx/apis"
	"dirpx.dev/tpx/registry"
)

// A few named types to avoid unnamed pitfalls.
type T0 string
type T1 string
type T2 string

func constant(v any) apis.ParseFunc {
	return func(string, apis.Helper) (any, error) { return v, nil }
}

func TestNew_LookupExactOnly(t *testing.T) {
	reg := registry.New(map[apis.Type]apis.ParseFunc{
		apis.Of[T1]():   constant(T1("one")),
		apis.Of[[]T1](): constant([]T1{"x"}),
	})

	fn, ok := reg.Lookup(apis.Of[T1]())
	if !ok || fn == nil {
		t.Fatalf("Lookup(T1): ok=%v fn=nil=%v", ok, fn == nil)
	}
	if v, _ := fn("", nil); v != T1("one") {
		t.Fatalf("Lookup(T1) parser returned %v", v)
	}

	// []T1 and []T2 share a base but differ in arguments.
	if _, ok := reg.Lookup(apis.Of[[]T2]()); ok {
		t.Fatal("Lookup([]T2) unexpectedly matched []T1")
	}
	// *T1 is a different type from T1.
	if _, ok := reg.Lookup(apis.Of[*T1]()); ok {
		t.Fatal("Lookup(*T1) unexpectedly matched T1")
	}
	if reg.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", reg.Count())
	}
}

func TestNew_SkipsZeroAndNil(t *testing.T) {
	reg := registry.New(map[apis.Type]apis.ParseFunc{
		apis.Type{}:   constant(1),
		apis.Of[T0](): nil,
		apis.Of[T1](): constant(T1("")),
	})
	if reg.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", reg.Count())
	}
	if _, ok := reg.Lookup(apis.Of[T0]()); ok {
		t.Fatal("nil parser was kept")
	}
}

func TestNew_CopiesInput(t *testing.T) {
	src := map[apis.Type]apis.ParseFunc{apis.Of[T1](): constant(T1(""))}
	reg := registry.New(src)

	src[apis.Of[T2]()] = constant(T2(""))
	delete(src, apis.Of[T1]())

	if _, ok := reg.Lookup(apis.Of[T1]()); !ok {
		t.Fatal("registry lost T1 after source map was mutated")
	}
	if _, ok := reg.Lookup(apis.Of[T2]()); ok {
		t.Fatal("registry observed T2 added to source map")
	}
}

func TestEntries_SortedSnapshot(t *testing.T) {
	reg := registry.New(map[apis.Type]apis.ParseFunc{
		apis.Of[T2](): constant(T2("")),
		apis.Of[T0](): constant(T0("")),
		apis.Of[T1](): constant(T1("")),
	})

	entries := reg.Entries()
	if len(entries) != 3 {
		t.Fatalf("Entries len = %d, want 3", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Type.String() >= entries[i].Type.String() {
			t.Fatalf("Entries not sorted: %s before %s", entries[i-1].Type, entries[i].Type)
		}
	}

	entries[0] = apis.Entry{}
	if again := reg.Entries(); again[0].Type.IsZero() {
		t.Fatal("Entries returned shared storage")
	}
}

func TestEntries_SameNameOrderedByImportPath(t *testing.T) {
	entries := map[apis.Type]apis.ParseFunc{
		apis.Of[ttemplate.Template]():   constant(nil),
		apis.Of[htemplate.Template]():   constant(nil),
		apis.Of[[]*ttemplate.Template](): constant(nil),
		apis.Of[[]*htemplate.Template](): constant(nil),
	}
	want := []apis.Type{
		apis.Of[[]*htemplate.Template](),
		apis.Of[[]*ttemplate.Template](),
		apis.Of[htemplate.Template](),
		apis.Of[ttemplate.Template](),
	}
	for i := 0; i < 20; i++ {
		got := registry.New(entries).Entries()
		for j, e := range got {
			if e.Type != want[j] {
				t.Fatalf("run %d: Entries()[%d] = %s (%s), want %s",
					i, j, e.Type, e.Type.Reflect().PkgPath(), want[j])
			}
		}
	}
}

func TestLookupZeroAndUnknown(t *testing.T) {
	reg := registry.New(nil)

	if fn, ok := reg.Lookup(apis.Type{}); ok || fn != nil {
		t.Fatalf("Lookup(zero): got (%v,%v), want (nil,false)", fn != nil, ok)
	}
	if _, ok := reg.Lookup(apis.Of[T1]()); ok {
		t.Fatal("Lookup(unknown) matched on empty registry")
	}
	if reg.Count() != 0 {
		t.Fatalf("Count() = %d, want 0", reg.Count())
	}
}
