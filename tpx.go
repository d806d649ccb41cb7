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

package tpx

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"dirpx.dev/tpx/apis"
	"dirpx.dev/tpx/builder"
	"dirpx.dev/tpx/config"
	uref "dirpx.dev/tpx/utils/reflect"
)

// init publishes the default snapshot.
func init() {
	cfg := config.DefaultConfig()
	st.Store(&state{cfg: cfg, res: builder.New(cfg).Build()})
}

// ErrNilResolver is returned by SetResolver when res is nil.
var ErrNilResolver = errors.New("tpx: nil resolver")

// Token is the type-token marker. See apis.Token.
type Token[T any] = apis.Token[T]

// Of returns the descriptor for T.
func Of[T any]() apis.Type { return apis.Of[T]() }

// Parse converts s to T using the global resolver.
func Parse[T any](s string) (T, error) {
	return ParseWith[T](Resolver(), s)
}

// ParseNullable is Parse for an optional input. A nil s fails with a
// ConversionError wrapping apis.ErrNullInput.
func ParseNullable[T any](s *string) (T, error) {
	v, err := Resolver().ParseNullable(s, apis.Of[T]())
	return cast[T](v, err)
}

// ParseWith converts s to T using res.
func ParseWith[T any](res apis.Resolver, s string) (T, error) {
	v, err := res.Parse(s, apis.Of[T]())
	return cast[T](v, err)
}

// ParseType converts s to the type described by t using the global resolver.
func ParseType(s string, t apis.Type) (any, error) {
	return Resolver().Parse(s, t)
}

// ParseToken converts s to the type carried by tok using the global resolver.
func ParseToken(s string, tok any) (any, error) {
	t, err := apis.Capture(tok)
	if err != nil {
		return nil, err
	}
	return Resolver().Parse(s, t)
}

// NewBuilder returns a builder seeded with the defaults and the global
// configuration.
func NewBuilder() apis.Builder {
	return builder.New(Config())
}

// Resolver returns the global resolver.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver replaces the global resolver and pins it, so SetConfig no
// longer rebuilds it.
func SetResolver(res apis.Resolver) error {
	if res == nil {
		return ErrNilResolver
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(&state{cfg: old.cfg, res: res, pinned: true})
	return nil
}

// IsResolverPinned reports whether the global resolver is pinned.
func IsResolverPinned() bool {
	return st.Load().pinned
}

// PinResolver stops SetConfig from rebuilding the global resolver.
func PinResolver() {
	setPinned(true)
}

// UnpinResolver lets SetConfig rebuild the global resolver again. The
// current resolver stays in place until the next SetConfig.
func UnpinResolver() {
	setPinned(false)
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig validates and publishes cfg. Unless the resolver is pinned, a
// default resolver is rebuilt for the new configuration.
func SetConfig(cfg apis.Config) error {
	cfg = config.Normalize(cfg)
	if err := config.Validate(cfg); err != nil {
		return err
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	res := old.res
	if !old.pinned {
		res = builder.New(cfg).Build()
	}
	st.Store(&state{cfg: cfg, res: res, pinned: old.pinned})
	return nil
}

// Reset restores the default configuration and resolver and clears the pin.
func Reset() {
	buildMu.Lock()
	defer buildMu.Unlock()

	cfg := config.DefaultConfig()
	st.Store(&state{cfg: cfg, res: builder.New(cfg).Build()})
}

func setPinned(pinned bool) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(&state{cfg: old.cfg, res: old.res, pinned: pinned})
}

// cast narrows a resolver result to T.
func cast[T any](v any, err error) (T, error) {
	var zero T
	if err != nil || v == nil {
		return zero, err
	}
	if out, ok := v.(T); ok {
		return out, nil
	}
	rv, err := uref.ValueFor(v, apis.Of[T]().Reflect())
	if err != nil {
		return zero, fmt.Errorf("%w: %v", apis.ErrResultType, err)
	}
	return rv.Interface().(T), nil
}

// buildMu serializes writers so a partially built snapshot is never published.
var buildMu sync.Mutex

// st is the global tpx state.
var st atomic.Pointer[state]

// state is an immutable snapshot published atomically via st.Store. Writers
// create a new state and swap it in.
type state struct {
	// cfg is the global configuration.
	cfg apis.Config
	// res is the global resolver.
	res apis.Resolver
	// pinned indicates that res was installed by hand and SetConfig must
	// not rebuild it.
	pinned bool
}
