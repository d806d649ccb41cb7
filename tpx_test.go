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

package tpx_test

import (
	"errors"
	"reflect"
	"runtime"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"dirpx.dev/tpx"
	"dirpx.dev/tpx/apis"
	"dirpx.dev/tpx/builder"
	"dirpx.dev/tpx/config"
)

type Weights struct {
	tpx.Token[map[string]float64]
}

type Level int

type IntList []int

// reset restores the global snapshot after a test that mutates it.
func reset(tb testing.TB) {
	tb.Helper()
	tb.Cleanup(tpx.Reset)
}

func TestParse(t *testing.T) {
	v, err := tpx.Parse[[]time.Duration]("1s, 2m")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if want := []time.Duration{time.Second, 2 * time.Minute}; !reflect.DeepEqual(v, want) {
		t.Fatalf("Parse = %v, want %v", v, want)
	}

	lvl, err := tpx.Parse[Level]("3")
	if err != nil || lvl != 3 {
		t.Fatalf("Parse[Level] = (%v, %v)", lvl, err)
	}

	list, err := tpx.Parse[IntList]("[4,5]")
	if err != nil || !reflect.DeepEqual(list, IntList{4, 5}) {
		t.Fatalf("Parse[IntList] = (%v, %v)", list, err)
	}

	id, err := tpx.Parse[uuid.UUID]("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	if err != nil || id != uuid.NameSpaceDNS {
		t.Fatalf("Parse[uuid.UUID] = (%v, %v)", id, err)
	}

	n, err := tpx.Parse[apis.Number]("1,000")
	if err != nil || n.String() != "1000" {
		t.Fatalf("Parse[Number] = (%v, %v)", n, err)
	}

	x, err := tpx.Parse[any]("raw")
	if err != nil || x != "raw" {
		t.Fatalf("Parse[any] = (%v, %v)", x, err)
	}
}

func TestParse_Errors(t *testing.T) {
	v, err := tpx.Parse[int]("seven")
	var ce *apis.ConversionError
	if !errors.As(err, &ce) || ce.Input != "seven" || v != 0 {
		t.Fatalf("Parse[int](seven) = (%v, %v)", v, err)
	}

	type opaque struct{}
	_, err = tpx.Parse[opaque]("x")
	var cfgErr *apis.ConfigurationError
	if !errors.As(err, &cfgErr) || !errors.Is(err, apis.ErrNoParser) {
		t.Fatalf("want ConfigurationError(ErrNoParser), got %v", err)
	}
}

func TestParseNullable(t *testing.T) {
	if _, err := tpx.ParseNullable[int](nil); !errors.Is(err, apis.ErrNullInput) {
		t.Fatalf("nil: want ErrNullInput, got %v", err)
	}
	s := "12"
	if v, err := tpx.ParseNullable[int](&s); err != nil || v != 12 {
		t.Fatalf("ParseNullable(&12) = (%v, %v)", v, err)
	}
}

func TestParseTypeAndToken(t *testing.T) {
	v, err := tpx.ParseType("42", tpx.Of[uint16]())
	if err != nil || v != uint16(42) {
		t.Fatalf("ParseType = (%v, %v)", v, err)
	}

	w, err := tpx.ParseToken("a=0.5,b=1.5", Weights{})
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if want := map[string]float64{"a": 0.5, "b": 1.5}; !reflect.DeepEqual(w, want) {
		t.Fatalf("ParseToken = %v, want %v", w, want)
	}

	y, err := tpx.ParseToken("1,2", tpx.Token[[]int]{})
	if err != nil || !reflect.DeepEqual(y, []int{1, 2}) {
		t.Fatalf("ParseToken(Token[[]int]) = (%v, %v)", y, err)
	}

	if _, err := tpx.ParseToken("1", tpx.Token[any]{}); !errors.Is(err, apis.ErrTokenUnfixed) {
		t.Fatalf("Token[any]: want ErrTokenUnfixed, got %v", err)
	}
}

func TestSetConfig_Rebuilds(t *testing.T) {
	reset(t)

	cfg := config.NewConfig(config.WithLocale("de-DE"), config.WithListSeparator(";"))
	if err := tpx.SetConfig(cfg); err != nil {
		t.Fatalf("SetConfig: %v", err)
	}
	if tpx.Config() != cfg || tpx.Resolver().Config() != cfg {
		t.Fatal("configuration not published")
	}

	v, err := tpx.Parse[[]apis.Number]("1.234,5; 2")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if v[0].String() != "1234.5" || v[1].String() != "2" {
		t.Fatalf("Parse = %v", v)
	}
}

func TestSetConfig_Invalid(t *testing.T) {
	reset(t)
	before := tpx.Resolver()

	err := tpx.SetConfig(apis.Config{ListSeparator: ";;"})
	if !errors.Is(err, config.ErrInvalidListSeparator) {
		t.Fatalf("want ErrInvalidListSeparator, got %v", err)
	}
	if tpx.Resolver() != before {
		t.Fatal("invalid configuration replaced the resolver")
	}
}

func TestSetConfig_FillsDefaults(t *testing.T) {
	reset(t)

	if err := tpx.SetConfig(apis.Config{Locale: "fr-FR"}); err != nil {
		t.Fatalf("SetConfig: %v", err)
	}
	cfg := tpx.Config()
	if cfg.ListSeparator != config.DefaultListSeparator || cfg.MaxDepth != config.DefaultMaxDepth {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestSetResolver_Pins(t *testing.T) {
	reset(t)

	b := tpx.NewBuilder()
	if err := b.Register(tpx.Of[int](), func(string, apis.Helper) (any, error) { return 99, nil }); err != nil {
		t.Fatalf("Register: %v", err)
	}
	custom := b.Build()
	if err := tpx.SetResolver(custom); err != nil {
		t.Fatalf("SetResolver: %v", err)
	}
	if !tpx.IsResolverPinned() {
		t.Fatal("SetResolver did not pin")
	}
	if v, _ := tpx.Parse[int]("1"); v != 99 {
		t.Fatalf("custom resolver not used: %v", v)
	}

	// Pinned: SetConfig keeps the resolver.
	if err := tpx.SetConfig(config.NewConfig(config.WithMaxDepth(4))); err != nil {
		t.Fatalf("SetConfig: %v", err)
	}
	if tpx.Resolver() != custom {
		t.Fatal("SetConfig replaced a pinned resolver")
	}
	if tpx.Config().MaxDepth != 4 {
		t.Fatal("SetConfig did not publish the configuration")
	}

	// Unpinned: the next SetConfig rebuilds.
	tpx.UnpinResolver()
	if tpx.IsResolverPinned() {
		t.Fatal("UnpinResolver did not unpin")
	}
	if tpx.Resolver() != custom {
		t.Fatal("UnpinResolver replaced the resolver")
	}
	if err := tpx.SetConfig(config.DefaultConfig()); err != nil {
		t.Fatalf("SetConfig: %v", err)
	}
	if v, _ := tpx.Parse[int]("1"); v != 1 {
		t.Fatalf("default resolver not rebuilt: %v", v)
	}

	tpx.PinResolver()
	if !tpx.IsResolverPinned() {
		t.Fatal("PinResolver did not pin")
	}

	if err := tpx.SetResolver(nil); !errors.Is(err, tpx.ErrNilResolver) {
		t.Fatalf("SetResolver(nil): want ErrNilResolver, got %v", err)
	}
}

func TestReset(t *testing.T) {
	reset(t)

	_ = tpx.SetResolver(builder.Empty(config.DefaultConfig()).Build())
	tpx.Reset()
	if tpx.IsResolverPinned() || tpx.Config() != config.DefaultConfig() {
		t.Fatal("Reset did not restore defaults")
	}
	if v, err := tpx.Parse[int]("5"); err != nil || v != 5 {
		t.Fatalf("Parse after Reset = (%v, %v)", v, err)
	}
}

func TestParseWith(t *testing.T) {
	res := builder.New(config.NewConfig(config.WithListSeparator("|"))).Build()
	v, err := tpx.ParseWith[[]string](res, "a|b")
	if err != nil || !reflect.DeepEqual(v, []string{"a", "b"}) {
		t.Fatalf("ParseWith = (%v, %v)", v, err)
	}
}

func TestConcurrentReadersAndWriters(t *testing.T) {
	reset(t)

	var g errgroup.Group
	workers := runtime.GOMAXPROCS(0) * 2
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := 0; i < 200; i++ {
				v, err := tpx.Parse[[]int]("1,2")
				if err != nil {
					return err
				}
				if len(v) != 2 {
					return errors.New("short result")
				}
			}
			return nil
		})
	}
	g.Go(func() error {
		for i := 0; i < 50; i++ {
			if err := tpx.SetConfig(config.NewConfig(config.WithMaxDepth(8 + i%4))); err != nil {
				return err
			}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}
