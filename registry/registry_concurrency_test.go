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
	"runtime"
	"testing"

	"golang.org/x/sync/errgroup"

	"dirpx.dev/tpx/apis"
	"dirpx.dev/tpx/registry"
)

// TestConcurrentLookup verifies that Lookup/Entries/Count are race-free on a
// shared registry.
func TestConcurrentLookup(t *testing.T) {
	types := []apis.Type{
		apis.Of[T0](), apis.Of[T1](), apis.Of[T2](),
		apis.Of[[]T0](), apis.Of[map[T1]T2](), apis.Of[*T2](),
	}
	entries := make(map[apis.Type]apis.ParseFunc, len(types))
	for _, tt := range types {
		entries[tt] = constant(tt.String())
	}
	reg := registry.New(entries)

	var g errgroup.Group
	workers := runtime.GOMAXPROCS(0) * 4
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := 0; i < 5000; i++ {
				tt := types[i%len(types)]
				fn, ok := reg.Lookup(tt)
				if !ok {
					t.Errorf("lookup failed for %s", tt)
					return nil
				}
				if v, _ := fn("", nil); v != tt.String() {
					t.Errorf("lookup for %s returned parser for %v", tt, v)
					return nil
				}
				_ = reg.Count()
				_ = reg.Entries()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	if reg.Count() != len(types) {
		t.Fatalf("count mismatch: got %d want %d", reg.Count(), len(types))
	}
}
