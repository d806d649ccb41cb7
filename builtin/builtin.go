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

// Package builtin holds the default static parsers.
//
// The table is built once at package init and never exposed directly: Copy
// hands out a fresh map that callers may modify freely.
package builtin

import (
	"errors"
	"fmt"
	"math/big"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Masterminds/semver/v3"
	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"dirpx.dev/tpx/apis"
)

var (
	// ErrNotBoolean is returned for input other than "true" or "false".
	ErrNotBoolean = errors.New("tpx(builtin): not a boolean")
	// ErrNotChar is returned when character input is not exactly one character.
	ErrNotChar = errors.New("tpx(builtin): must contain exactly one character")
	// ErrNumberFormat is returned for malformed arbitrary-precision numbers.
	ErrNumberFormat = errors.New("tpx(builtin): number format")
)

// defaults is the process-wide table. Read-only after init.
var defaults map[apis.Type]apis.ParseFunc

func init() {
	m := make(map[apis.Type]apis.ParseFunc, 40)

	add[int](m, signed(strconv.IntSize, func(n int64) any { return int(n) }))
	add[int8](m, signed(8, func(n int64) any { return int8(n) }))
	add[int16](m, signed(16, func(n int64) any { return int16(n) }))
	add[int32](m, signed(32, func(n int64) any { return int32(n) }))
	add[int64](m, signed(64, func(n int64) any { return n }))
	add[uint](m, unsigned(strconv.IntSize, func(n uint64) any { return uint(n) }))
	add[uint8](m, unsigned(8, func(n uint64) any { return uint8(n) }))
	add[uint16](m, unsigned(16, func(n uint64) any { return uint16(n) }))
	add[uint32](m, unsigned(32, func(n uint64) any { return uint32(n) }))
	add[uint64](m, unsigned(64, func(n uint64) any { return n }))
	add[float32](m, func(input string, _ apis.Helper) (any, error) {
		f, err := strconv.ParseFloat(strings.TrimSpace(input), 32)
		return float32(f), err
	})
	add[float64](m, func(input string, _ apis.Helper) (any, error) {
		return strconv.ParseFloat(strings.TrimSpace(input), 64)
	})
	add[complex64](m, func(input string, _ apis.Helper) (any, error) {
		c, err := strconv.ParseComplex(strings.TrimSpace(input), 64)
		return complex64(c), err
	})
	add[complex128](m, func(input string, _ apis.Helper) (any, error) {
		return strconv.ParseComplex(strings.TrimSpace(input), 128)
	})
	add[bool](m, parseBool)
	add[apis.Char](m, parseChar)
	add[*big.Int](m, parseBigInt)
	add[*big.Float](m, parseBigFloat)
	add[decimal.Decimal](m, parseDecimal)
	add[*apd.Decimal](m, parseAPD)
	add[*url.URL](m, func(input string, _ apis.Helper) (any, error) {
		return url.Parse(strings.TrimSpace(input))
	})
	add[url.URL](m, func(input string, _ apis.Helper) (any, error) {
		u, err := url.Parse(strings.TrimSpace(input))
		if err != nil {
			return nil, err
		}
		return *u, nil
	})
	add[apis.Path](m, func(input string, _ apis.Helper) (any, error) {
		return apis.Path(strings.TrimSpace(input)), nil
	})
	add[string](m, func(input string, _ apis.Helper) (any, error) {
		return input, nil
	})
	add[any](m, func(input string, _ apis.Helper) (any, error) {
		return input, nil
	})
	add[[]byte](m, func(input string, _ apis.Helper) (any, error) {
		return []byte(input), nil
	})
	add[apis.Number](m, parseNumber)
	add[time.Duration](m, func(input string, _ apis.Helper) (any, error) {
		return time.ParseDuration(strings.TrimSpace(input))
	})
	add[uuid.UUID](m, func(input string, _ apis.Helper) (any, error) {
		return uuid.Parse(strings.TrimSpace(input))
	})
	add[*semver.Version](m, func(input string, _ apis.Helper) (any, error) {
		return semver.NewVersion(strings.TrimSpace(input))
	})
	add[*semver.Constraints](m, func(input string, _ apis.Helper) (any, error) {
		return semver.NewConstraint(strings.TrimSpace(input))
	})
	add[language.Tag](m, func(input string, _ apis.Helper) (any, error) {
		return language.Parse(strings.TrimSpace(input))
	})

	defaults = m
}

// Copy returns a fresh copy of the default static parsers.
func Copy() map[apis.Type]apis.ParseFunc {
	out := make(map[apis.Type]apis.ParseFunc, len(defaults))
	for t, fn := range defaults {
		out[t] = fn
	}
	return out
}

// Types returns the descriptors of all default static parsers.
func Types() []apis.Type {
	out := make([]apis.Type, 0, len(defaults))
	for t := range defaults {
		out = append(out, t)
	}
	return out
}

func add[T any](m map[apis.Type]apis.ParseFunc, fn apis.ParseFunc) {
	m[apis.Of[T]()] = fn
}

// signed returns a base-10 parser for an integer of the given width.
// conv narrows the result to the exact Go type, so int and int64 stay
// distinct even when they share a width.
func signed(bits int, conv func(int64) any) apis.ParseFunc {
	return func(input string, _ apis.Helper) (any, error) {
		n, err := strconv.ParseInt(strings.TrimSpace(input), 10, bits)
		if err != nil {
			return nil, err
		}
		return conv(n), nil
	}
}

// unsigned is signed for unsigned integers.
func unsigned(bits int, conv func(uint64) any) apis.ParseFunc {
	return func(input string, _ apis.Helper) (any, error) {
		n, err := strconv.ParseUint(strings.TrimSpace(input), 10, bits)
		if err != nil {
			return nil, err
		}
		return conv(n), nil
	}
}

func parseBool(input string, _ apis.Helper) (any, error) {
	switch v := strings.TrimSpace(input); {
	case strings.EqualFold(v, "true"):
		return true, nil
	case strings.EqualFold(v, "false"):
		return false, nil
	}
	return nil, fmt.Errorf("%w: \"%s\"", ErrNotBoolean, input)
}

// parseChar works on the raw input: whitespace is a character too.
func parseChar(input string, _ apis.Helper) (any, error) {
	if utf8.RuneCountInString(input) != 1 {
		return nil, fmt.Errorf("%w: \"%s\"", ErrNotChar, input)
	}
	r, _ := utf8.DecodeRuneInString(input)
	return apis.Char(r), nil
}

func parseBigInt(input string, _ apis.Helper) (any, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(input), 10)
	if !ok {
		return nil, fmt.Errorf("%w: for input string: \"%s\"", ErrNumberFormat, input)
	}
	return n, nil
}

func parseBigFloat(input string, _ apis.Helper) (any, error) {
	f, _, err := big.ParseFloat(strings.TrimSpace(input), 10, 0, big.ToNearestEven)
	if err != nil {
		return nil, fmt.Errorf("%w: for input string: \"%s\": %w", ErrNumberFormat, input, err)
	}
	return f, nil
}

// parseDecimal reports the raw input verbatim so the message is useful even
// when the decoder's own text is not.
func parseDecimal(input string, _ apis.Helper) (any, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(input))
	if err != nil {
		return nil, fmt.Errorf("%w: for input string: \"%s\": %w", ErrNumberFormat, input, err)
	}
	return d, nil
}

func parseAPD(input string, _ apis.Helper) (any, error) {
	d, _, err := apd.NewFromString(strings.TrimSpace(input))
	if err != nil {
		return nil, fmt.Errorf("%w: for input string: \"%s\": %w", ErrNumberFormat, input, err)
	}
	return d, nil
}
