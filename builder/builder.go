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

package builder

import (
	"dirpx.dev/tpx/apis"
	"dirpx.dev/tpx/builtin"
	"dirpx.dev/tpx/registry"
	"dirpx.dev/tpx/resolver"
	"dirpx.dev/tpx/strategy"
)

// New creates an apis.Builder seeded with the default static parsers and the
// default dynamic chain.
func New(cfg apis.Config) apis.Builder {
	return &builder{
		cfg:    cfg,
		static: builtin.Copy(),
		strats: strategy.Defaults(),
	}
}

// Empty creates an apis.Builder with no parsers at all.
func Empty(cfg apis.Config) apis.Builder {
	return &builder{
		cfg:    cfg,
		static: map[apis.Type]apis.ParseFunc{},
	}
}

// builder accumulates registrations. It is not safe for concurrent use.
type builder struct {
	cfg    apis.Config
	static map[apis.Type]apis.ParseFunc
	strats []apis.Strategy
	split  apis.SplitFunc
	kv     apis.KeyValueSplitFunc
	pre    apis.PreprocessFunc
}

// Register binds fn to exactly t, replacing any existing entry.
func (b *builder) Register(t apis.Type, fn apis.ParseFunc) error {
	if t.IsZero() {
		return &apis.ConfigurationError{Op: "register", Err: apis.ErrZeroType}
	}
	if fn == nil {
		return &apis.ConfigurationError{Op: "register", Type: t, Err: apis.ErrNilParser}
	}
	b.static[t] = fn
	return nil
}

// RegisterToken is Register for the type carried by a Token.
func (b *builder) RegisterToken(tok any, fn apis.ParseFunc) error {
	t, err := apis.Capture(tok)
	if err != nil {
		return err
	}
	return b.Register(t, fn)
}

// RegisterStrategy inserts s into the dynamic chain.
func (b *builder) RegisterStrategy(s apis.Strategy, pos apis.Position) error {
	if s == nil {
		return &apis.ConfigurationError{Op: "register strategy", Err: apis.ErrNilStrategy}
	}
	if pos == apis.Prepend {
		b.strats = append([]apis.Strategy{s}, b.strats...)
		return nil
	}
	b.strats = append(b.strats, s)
	return nil
}

// RegisterDynamic inserts a (predicate, parser) pair into the dynamic chain.
func (b *builder) RegisterDynamic(pred func(apis.Type) bool, fn apis.ParseFunc, pos apis.Position) error {
	if pred == nil {
		return &apis.ConfigurationError{Op: "register strategy", Err: apis.ErrNilStrategy}
	}
	if fn == nil {
		return &apis.ConfigurationError{Op: "register strategy", Err: apis.ErrNilParser}
	}
	return b.RegisterStrategy(apis.Match(pred, fn), pos)
}

// Unregister removes the static entry for t. The table is left untouched on failure.
func (b *builder) Unregister(t apis.Type) error {
	if t.IsZero() {
		return &apis.ConfigurationError{Op: "unregister", Err: apis.ErrZeroType}
	}
	if _, ok := b.static[t]; !ok {
		return &apis.ConfigurationError{Op: "unregister", Type: t, Err: apis.ErrNotRegistered}
	}
	delete(b.static, t)
	return nil
}

// UnregisterToken is Unregister for the type carried by a Token.
func (b *builder) UnregisterToken(tok any) error {
	t, err := apis.Capture(tok)
	if err != nil {
		return err
	}
	return b.Unregister(t)
}

func (b *builder) SetSplitter(fn apis.SplitFunc) { b.split = fn }

func (b *builder) SetKeyValueSplitter(fn apis.KeyValueSplitFunc) { b.kv = fn }

func (b *builder) SetPreprocessor(fn apis.PreprocessFunc) { b.pre = fn }

// Build returns an immutable resolver over copies of the current table and chain.
func (b *builder) Build() apis.Resolver {
	return resolver.New(
		b.cfg,
		registry.New(b.static),
		b.strats,
		resolver.WithSplitter(b.split),
		resolver.WithKeyValueSplitter(b.kv),
		resolver.WithPreprocessor(b.pre),
	)
}
