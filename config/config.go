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

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"dirpx.dev/tpx/apis"
)

const (
	// DefaultLocale represents the default for Locale.
	DefaultLocale = "en-US"
	// DefaultListSeparator represents the default for ListSeparator.
	DefaultListSeparator = ","
	// DefaultKeyValueSeparator represents the default for KeyValueSeparator.
	DefaultKeyValueSeparator = "="
	// DefaultMaxDepth represents the default for MaxDepth.
	// A value of 32 is far beyond any literal a human writes.
	DefaultMaxDepth = 32
)

var (
	// ErrInvalidLocale is returned when Locale is not a well-formed BCP 47 tag.
	ErrInvalidLocale = errors.New("tpx(config): invalid locale")
	// ErrInvalidListSeparator is returned when ListSeparator is not exactly one
	// non-bracket character.
	ErrInvalidListSeparator = errors.New("tpx(config): list separator must be a single character")
	// ErrInvalidKeyValueSeparator is returned when KeyValueSeparator is empty,
	// equal to ListSeparator or contains a bracket.
	ErrInvalidKeyValueSeparator = errors.New("tpx(config): invalid key/value separator")
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return Normalize(cfg)
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Locale:            DefaultLocale,
		ListSeparator:     DefaultListSeparator,
		KeyValueSeparator: DefaultKeyValueSeparator,
		MaxDepth:          DefaultMaxDepth,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithLocale sets the Locale option.
func WithLocale(tag string) Option {
	return func(c *apis.Config) {
		c.Locale = tag
	}
}

// WithListSeparator sets the ListSeparator option.
func WithListSeparator(sep string) Option {
	return func(c *apis.Config) {
		c.ListSeparator = sep
	}
}

// WithKeyValueSeparator sets the KeyValueSeparator option.
func WithKeyValueSeparator(sep string) Option {
	return func(c *apis.Config) {
		c.KeyValueSeparator = sep
	}
}

// WithMaxDepth sets the MaxDepth option.
// A non-positive value resets to the default.
func WithMaxDepth(max int) Option {
	return func(c *apis.Config) {
		if max <= 0 {
			c.MaxDepth = DefaultMaxDepth
			return
		}
		c.MaxDepth = max
	}
}

// brackets nest collection literals and can never act as separators.
const brackets = "[](){}"

// Validate reports the first invalid field of cfg.
func Validate(cfg apis.Config) error {
	if _, err := language.Parse(cfg.Locale); err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidLocale, cfg.Locale, err)
	}
	if utf8.RuneCountInString(cfg.ListSeparator) != 1 || strings.ContainsAny(cfg.ListSeparator, brackets) {
		return fmt.Errorf("%w: %q", ErrInvalidListSeparator, cfg.ListSeparator)
	}
	if cfg.KeyValueSeparator == "" || cfg.KeyValueSeparator == cfg.ListSeparator ||
		strings.ContainsAny(cfg.KeyValueSeparator, brackets) {
		return fmt.Errorf("%w: %q", ErrInvalidKeyValueSeparator, cfg.KeyValueSeparator)
	}
	return nil
}

// Load reads a YAML configuration file and merges it over the defaults.
func Load(path string) (apis.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return apis.Config{}, fmt.Errorf("tpx(config): reading config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML data and merges it over the defaults. Absent fields keep
// their default value. The result is validated.
func Parse(data []byte) (apis.Config, error) {
	var loaded apis.Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return apis.Config{}, fmt.Errorf("tpx(config): parsing YAML config: %w", err)
	}
	cfg := merge(DefaultConfig(), loaded)
	if err := Validate(cfg); err != nil {
		return apis.Config{}, err
	}
	return cfg, nil
}

// merge overlays the non-zero fields of loaded onto base.
func merge(base, loaded apis.Config) apis.Config {
	if loaded.Locale != "" {
		base.Locale = loaded.Locale
	}
	if loaded.ListSeparator != "" {
		base.ListSeparator = loaded.ListSeparator
	}
	if loaded.KeyValueSeparator != "" {
		base.KeyValueSeparator = loaded.KeyValueSeparator
	}
	if loaded.MaxDepth > 0 {
		base.MaxDepth = loaded.MaxDepth
	}
	return base
}

// Normalize fills empty fields of cfg with defaults.
func Normalize(cfg apis.Config) apis.Config {
	return merge(DefaultConfig(), cfg)
}
