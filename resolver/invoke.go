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
	"errors"
	"fmt"

	"dirpx.dev/tpx/apis"
	"dirpx.dev/tpx/config"
	uref "dirpx.dev/tpx/utils/reflect"
)

// parse resolves t and runs its parser at the given nesting depth.
func (c *chain) parse(input string, t apis.Type, depth int) (any, error) {
	if t.IsZero() {
		return nil, &apis.ConfigurationError{Op: "parse", Err: apis.ErrZeroType}
	}
	if depth > c.maxDepth() {
		return nil, &apis.ConversionError{Type: t, Input: input, Err: apis.ErrMaxDepth}
	}
	fn, err := c.Resolve(t)
	if err != nil {
		return nil, err
	}
	h := &helper{c: c, t: t, depth: depth}
	text := input
	if c.pre != nil {
		text = c.pre(input, h)
	}
	return invoke(fn, input, text, h)
}

// invoke is the single boundary where parser failures become ConversionErrors.
// fn sees text; errors report the caller's raw input. Panics are recovered
// and reported the same way, keeping a panicked error in the chain.
func invoke(fn apis.ParseFunc, input, text string, h *helper) (out any, err error) {
	defer func() {
		if r := recover(); r != nil {
			cause := fmt.Errorf("panic: %v", r)
			if e, ok := r.(error); ok {
				cause = fmt.Errorf("panic: %w", e)
			}
			out, err = nil, wrap(h.t, input, cause)
		}
	}()

	v, err := fn(text, h)
	if err != nil {
		return nil, wrap(h.t, input, err)
	}
	if err := uref.CheckAssignable(v, h.t.Reflect()); err != nil {
		return nil, wrap(h.t, input, fmt.Errorf("%w: %v", apis.ErrResultType, err))
	}
	return v, nil
}

// wrap converts err into a ConversionError for (t, input). Configuration
// errors pass through untouched, and a ConversionError already describing
// (t, input) is not wrapped a second time.
func wrap(t apis.Type, input string, err error) error {
	var cfgErr *apis.ConfigurationError
	if errors.As(err, &cfgErr) {
		return err
	}
	if ce, ok := err.(*apis.ConversionError); ok && ce.Type == t && ce.Input == input {
		return ce
	}
	return &apis.ConversionError{Type: t, Input: input, Err: err}
}

func (c *chain) maxDepth() int {
	if c.cfg.MaxDepth <= 0 {
		return config.DefaultMaxDepth
	}
	return c.cfg.MaxDepth
}
