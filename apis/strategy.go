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

package apis

// Strategy is a dynamic resolution step: it matches a type by shape or
// capability rather than identity. A Resolver tries strategies in order
// after the static Registry misses; the first one that handles t wins.
type Strategy interface {
	// TryResolve returns (parser, true) if this strategy handles t;
	// otherwise (nil, false) to fall through.
	TryResolve(t Type) (ParseFunc, bool)
}

// StrategyFunc adapts a function to Strategy.
type StrategyFunc func(t Type) (ParseFunc, bool)

// TryResolve calls f(t).
func (f StrategyFunc) TryResolve(t Type) (ParseFunc, bool) { return f(t) }

// Match returns a Strategy that hands fn to every type accepted by pred.
func Match(pred func(Type) bool, fn ParseFunc) Strategy {
	return StrategyFunc(func(t Type) (ParseFunc, bool) {
		if pred == nil || fn == nil || !pred(t) {
			return nil, false
		}
		return fn, true
	})
}

// Position selects where a Builder inserts a Strategy into the chain.
type Position int

const (
	// Append adds the strategy after all existing ones.
	Append Position = iota
	// Prepend adds the strategy before all existing ones, defaults included.
	Prepend
)
