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

package resolver

import (
	"sync"

	"dirpx.dev/tpx/apis"
	"dirpx.dev/tpx/registry"
)

// Option customizes a resolver at construction.
type Option func(*chain)

// WithSplitter replaces the default collection splitter.
func WithSplitter(fn apis.SplitFunc) Option {
	return func(c *chain) { c.split = fn }
}

// WithKeyValueSplitter replaces the default map entry splitter.
func WithKeyValueSplitter(fn apis.KeyValueSplitFunc) Option {
	return func(c *chain) { c.kv = fn }
}

// WithPreprocessor installs an input rewrite run before every parser.
func WithPreprocessor(fn apis.PreprocessFunc) Option {
	return func(c *chain) { c.pre = fn }
}

// New constructs an apis.Resolver over a static registry and a dynamic chain.
// Nil strategies are ignored and a nil registry is treated as empty. The
// strategies slice is copied. The returned resolver is safe for concurrent use
// provided the strategies and parsers themselves are.
func New(cfg apis.Config, reg apis.Registry, strategies []apis.Strategy, opts ...Option) apis.Resolver {
	if reg == nil {
		reg = registry.New(nil)
	}
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	c := &chain{cfg: cfg, reg: reg, strats: out}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// chain is an immutable, order-preserving resolver: static registry first,
// then strategies in order.
type chain struct {
	cfg    apis.Config
	reg    apis.Registry
	strats []apis.Strategy

	split apis.SplitFunc
	kv    apis.KeyValueSplitFunc
	pre   apis.PreprocessFunc

	// memo caches dynamic resolutions. Strategies are pure functions of the
	// type, so a cached entry is what the chain would return again.
	memo sync.Map // key: apis.Type, val: apis.ParseFunc
}

// Ensure chain implements apis.Resolver.
var _ apis.Resolver = (*chain)(nil)

// Resolve returns the parser for t: exact static match, else the first
// strategy that handles t.
func (c *chain) Resolve(t apis.Type) (apis.ParseFunc, error) {
	if t.IsZero() {
		return nil, &apis.ConfigurationError{Op: "resolve", Err: apis.ErrZeroType}
	}
	if fn, ok := c.reg.Lookup(t); ok {
		return fn, nil
	}
	if v, ok := c.memo.Load(t); ok {
		return v.(apis.ParseFunc), nil
	}
	for _, s := range c.strats {
		if fn, ok := s.TryResolve(t); ok && fn != nil {
			c.memo.Store(t, fn)
			return fn, nil
		}
	}
	return nil, &apis.ConfigurationError{Op: "resolve", Type: t, Err: apis.ErrNoParser}
}

// Parse converts input to t.
func (c *chain) Parse(input string, t apis.Type) (any, error) {
	return c.parse(input, t, 0)
}

// ParseNullable rejects nil input before resolution; otherwise it is Parse.
func (c *chain) ParseNullable(input *string, t apis.Type) (any, error) {
	if input == nil {
		return nil, &apis.ConversionError{Type: t, Err: apis.ErrNullInput}
	}
	return c.parse(*input, t, 0)
}

// Registry returns the static table.
func (c *chain) Registry() apis.Registry { return c.reg }

// Strategies returns a copy of the dynamic chain.
func (c *chain) Strategies() []apis.Strategy {
	out := make([]apis.Strategy, len(c.strats))
	copy(out, c.strats)
	return out
}

// Config returns the configuration the resolver was built with.
func (c *chain) Config() apis.Config { return c.cfg }
