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
	"io"

	"github.com/BurntSushi/toml"

	"dirpx.dev/rfield/apis"
)

const (
	// DefaultStrict represents the default for Strict.
	// When false, registration errors are logged and degraded instead of panicking.
	DefaultStrict = false
	// DefaultMaxUnwrap represents the default for MaxUnwrap.
	// A value of 8 should be sufficient for all practical purposes.
	DefaultMaxUnwrap = 8
)

// ErrInvalidConfig is returned when a config file holds invalid values.
var ErrInvalidConfig = errors.New("rfield(config): invalid configuration")

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MaxUnwrap is valid.
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Strict:    DefaultStrict,
		MaxUnwrap: DefaultMaxUnwrap,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithStrict sets the Strict option.
func WithStrict(strict bool) Option {
	return func(c *apis.Config) {
		c.Strict = strict
	}
}

// WithMaxUnwrap sets the MaxUnwrap option.
// A non-positive value resets to the default.
func WithMaxUnwrap(max int) Option {
	return func(c *apis.Config) {
		if max <= 0 {
			c.MaxUnwrap = DefaultMaxUnwrap
			return
		}
		c.MaxUnwrap = max
	}
}

// file mirrors the on-disk TOML layout. Pointers distinguish unset keys
// from zero values so unset keys keep their defaults.
type file struct {
	Strict    *bool `toml:"strict"`
	MaxUnwrap *int  `toml:"max_unwrap"`
}

// Load reads a TOML configuration file:
//
//	strict = true
//	max_unwrap = 4
//
// Keys that are absent keep their defaults; opts are applied last.
func Load(path string, opts ...Option) (apis.Config, error) {
	var f file
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return apis.Config{}, fmt.Errorf("rfield(config): load %s: %w", path, err)
	}
	return fromFile(f, opts)
}

// Decode is Load for an arbitrary reader.
func Decode(r io.Reader, opts ...Option) (apis.Config, error) {
	var f file
	if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
		return apis.Config{}, fmt.Errorf("rfield(config): decode: %w", err)
	}
	return fromFile(f, opts)
}

func fromFile(f file, opts []Option) (apis.Config, error) {
	var fopts []Option
	if f.Strict != nil {
		fopts = append(fopts, WithStrict(*f.Strict))
	}
	if f.MaxUnwrap != nil {
		if *f.MaxUnwrap < 0 {
			return apis.Config{}, fmt.Errorf("%w: max_unwrap = %d", ErrInvalidConfig, *f.MaxUnwrap)
		}
		fopts = append(fopts, WithMaxUnwrap(*f.MaxUnwrap))
	}
	return NewConfig(append(fopts, opts...)...), nil
}
