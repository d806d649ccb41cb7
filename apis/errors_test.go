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

package apis_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"dirpx.dev/tpx/apis"
)

func TestConversionError_Message(t *testing.T) {
	cause := errors.New("bad digit")
	cases := []struct {
		name string
		err  *apis.ConversionError
		want string
	}{
		{
			"with cause",
			&apis.ConversionError{Type: apis.Of[int](), Input: "x1", Err: cause},
			`tpx: cannot parse "x1" as int: bad digit`,
		},
		{
			"without cause",
			&apis.ConversionError{Type: apis.Of[decimal.Decimal](), Input: "abc"},
			`tpx: cannot parse "abc" as decimal.Decimal`,
		},
		{
			"null input",
			&apis.ConversionError{Type: apis.Of[[]int](), Err: apis.ErrNullInput},
			"tpx: cannot parse null input as []int",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.want {
				t.Fatalf("Error() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestConversionError_Unwrap(t *testing.T) {
	cause := errors.New("cause")
	err := fmt.Errorf("outer: %w", &apis.ConversionError{Type: apis.Of[int](), Input: "x", Err: cause})

	var ce *apis.ConversionError
	if !errors.As(err, &ce) {
		t.Fatal("errors.As failed")
	}
	if ce.Input != "x" || ce.Type != apis.Of[int]() {
		t.Fatalf("unexpected fields: %+v", ce)
	}
	if !errors.Is(err, cause) {
		t.Fatal("errors.Is(cause) failed")
	}
}

func TestConfigurationError(t *testing.T) {
	err := &apis.ConfigurationError{Op: "resolve", Type: apis.Of[chan int](), Err: apis.ErrNoParser}
	if got, want := err.Error(), "tpx: resolve chan int: tpx: no parser registered"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, apis.ErrNoParser) {
		t.Fatal("errors.Is(ErrNoParser) failed")
	}

	noType := &apis.ConfigurationError{Op: "register", Err: apis.ErrZeroType}
	if got, want := noType.Error(), "tpx: register: tpx: zero type descriptor"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestMatch(t *testing.T) {
	fn := func(string, apis.Helper) (any, error) { return 1, nil }
	s := apis.Match(func(t apis.Type) bool { return t == apis.Of[int]() }, fn)

	if got, ok := s.TryResolve(apis.Of[int]()); !ok || got == nil {
		t.Fatal("Match declined a matching type")
	}
	if _, ok := s.TryResolve(apis.Of[string]()); ok {
		t.Fatal("Match accepted a non-matching type")
	}
	if _, ok := apis.Match(nil, fn).TryResolve(apis.Of[int]()); ok {
		t.Fatal("Match with nil predicate accepted a type")
	}
}
