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

package builtin

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"dirpx.dev/tpx/apis"
)

// ErrUnparseableNumber is returned when locale-aware number parsing fails.
var ErrUnparseableNumber = errors.New("tpx(builtin): unparseable number")

// defaultLocale is used when the configuration carries no locale.
const defaultLocale = "en-US"

// formatter holds the separators of one locale plus a scratch buffer.
// A formatter is mutable and must be owned by one goroutine at a time;
// formatters are handed out through a per-locale sync.Pool.
type formatter struct {
	decimal rune
	groups  []rune
	buf     []byte
}

// pools maps a canonical locale string to its *sync.Pool of formatters.
var pools sync.Map

// newFormatter discovers the separators of tag by formatting probe numbers.
func newFormatter(tag language.Tag) *formatter {
	p := message.NewPrinter(tag)
	f := &formatter{decimal: '.'}
	if seps := nonDigits(p.Sprintf("%.1f", 0.5)); len(seps) > 0 {
		f.decimal = seps[len(seps)-1]
	}
	for _, r := range nonDigits(p.Sprintf("%d", 1234567)) {
		if r != f.decimal && !containsRune(f.groups, r) {
			f.groups = append(f.groups, r)
		}
	}
	// Locales grouping with a (narrow) no-break space also accept a plain space.
	for _, r := range f.groups {
		if unicode.IsSpace(r) {
			for _, alt := range []rune{' ', '\u00a0', '\u202f'} {
				if !containsRune(f.groups, alt) {
					f.groups = append(f.groups, alt)
				}
			}
			break
		}
	}
	return f
}

// formatterFor borrows a formatter for locale. Callers must release it.
func formatterFor(locale string) (*formatter, *sync.Pool, error) {
	if locale == "" {
		locale = defaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, nil, &apis.ConfigurationError{Op: "locale", Type: apis.Of[apis.Number](), Err: err}
	}
	key := tag.String()
	v, ok := pools.Load(key)
	if !ok {
		v, _ = pools.LoadOrStore(key, &sync.Pool{New: func() any { return newFormatter(tag) }})
	}
	pool := v.(*sync.Pool)
	return pool.Get().(*formatter), pool, nil
}

// parse converts localized text into a json.Number. Integral values that fit
// int64 keep their integer form; everything else is a float.
// The whole input must be consumed.
func (f *formatter) parse(s string) (json.Number, error) {
	f.buf = f.buf[:0]
	seenDigit, seenDecimal, seenExp := false, false, false
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			f.buf = append(f.buf, byte(r))
			seenDigit = true
		case (r == '-' || r == '+') && (i == 0 || seenExp && isExpMarker(f.buf)):
			f.buf = append(f.buf, byte(r))
		case r == f.decimal && !seenDecimal && !seenExp:
			f.buf = append(f.buf, '.')
			seenDecimal = true
		case containsRune(f.groups, r) && seenDigit && !seenDecimal && !seenExp:
			// grouping separators carry no value
		case (r == 'e' || r == 'E') && seenDigit && !seenExp:
			f.buf = append(f.buf, 'e')
			seenExp = true
		default:
			return "", ErrUnparseableNumber
		}
	}
	if !seenDigit {
		return "", ErrUnparseableNumber
	}
	text := string(f.buf)
	if !seenDecimal && !seenExp {
		if n, err := strconv.ParseInt(text, 10, 64); err == nil {
			return json.Number(strconv.FormatInt(n, 10)), nil
		}
	}
	x, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(x, 0) {
		return "", ErrUnparseableNumber
	}
	if x == math.Trunc(x) && math.Abs(x) < 1<<63 && !seenExp {
		return json.Number(strconv.FormatInt(int64(x), 10)), nil
	}
	return json.Number(strconv.FormatFloat(x, 'g', -1, 64)), nil
}

func parseNumber(input string, h apis.Helper) (any, error) {
	f, pool, err := formatterFor(h.Config().Locale)
	if err != nil {
		return nil, err
	}
	defer pool.Put(f)

	n, err := f.parse(strings.TrimSpace(input))
	if err != nil {
		return nil, fmt.Errorf("%w: \"%s\"", err, input)
	}
	return apis.Number(n), nil
}

func isExpMarker(buf []byte) bool {
	return len(buf) > 0 && buf[len(buf)-1] == 'e'
}

func nonDigits(s string) []rune {
	var out []rune
	for _, r := range s {
		if !unicode.IsDigit(r) {
			out = append(out, r)
		}
	}
	return out
}

func containsRune(rs []rune, r rune) bool {
	for _, x := range rs {
		if x == r {
			return true
		}
	}
	return false
}
