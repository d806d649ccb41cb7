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

// Package tpx converts strings into typed Go values, driven by a type
// descriptor.
//
// Given "1,2,3" and []int, tpx returns []int{1, 2, 3}. Given "[1,2],[3]" and
// [][]int it returns [][]int{{1, 2}, {3}}. Given "a=1,b=2" and
// map[string]int it returns the obvious map. Configuration loaders, CLI flag
// binders and test harnesses use it to turn textual values into whatever
// type a field declares.
//
// # Design
//
// A resolver answers "which routine parses this type?" in two tiers:
//
//   - Static table: an exact-match map from apis.Type to apis.ParseFunc,
//     seeded with the predeclared numeric and boolean types, strings,
//     big numbers, decimals, URLs, UUIDs, semantic versions, durations,
//     language tags and locale-aware numbers.
//
//   - Dynamic chain: an ordered list of apis.Strategy values. Each one
//     inspects a type and either produces a parser or declines. The
//     default chain handles enum-like types, encoding.TextUnmarshaler,
//     pointers, slices and arrays, maps and sets, and named basic types,
//     in that order.
//
// The static table always wins. Among strategies the first match wins.
// Dynamic results are memoized per resolver.
//
// Composite parsers re-enter the resolver through apis.Helper, so a
// registration for an element type applies at every nesting depth.
//
// # Global API
//
//	v, err := tpx.Parse[[]time.Duration]("1s, 2m")
//	n, err := tpx.ParseNullable[int](envValue)
//	x, err := tpx.ParseType("42", tpx.Of[uint16]())
//	y, err := tpx.ParseToken("1,2", tpx.Token[[]int]{})
//
// The global state is a read-mostly snapshot behind an atomic pointer. Reads
// are lock-free. Writers (SetConfig, SetResolver, PinResolver, UnpinResolver,
// Reset) serialize on a mutex and publish a new snapshot.
//
// # Custom parsers
//
// Resolvers are immutable. To customize, use a builder and install the
// result:
//
//	b := tpx.NewBuilder()
//	_ = b.Register(tpx.Of[Celsius](), parseCelsius)
//	_ = b.RegisterDynamic(isProtoEnum, parseProtoEnum, apis.Prepend)
//	_ = tpx.SetResolver(b.Build())
//
// SetResolver pins the resolver: SetConfig keeps it until UnpinResolver.
//
// # Errors
//
// Two error families surface from every entry point:
//
//   - *apis.ConversionError: the input is malformed for the target type.
//     It carries the type, the raw input and the parser's cause.
//
//   - *apis.ConfigurationError: the library is set up wrong, for example
//     no parser resolves for the type. Parsers that raise it are not
//     re-wrapped.
//
// Use errors.As to tell them apart and errors.Is against the apis sentinels.
package tpx
