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

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dirpx.dev/rfield/apis"
	"dirpx.dev/rfield/config"
)

func TestDefaultConfigValues(t *testing.T) {
	got := config.DefaultConfig()

	if got.Strict != config.DefaultStrict {
		t.Fatalf("Strict = %v, want %v", got.Strict, config.DefaultStrict)
	}
	if got.MaxUnwrap != config.DefaultMaxUnwrap {
		t.Fatalf("MaxUnwrap = %d, want %d", got.MaxUnwrap, config.DefaultMaxUnwrap)
	}
}

func TestNewConfig_NoOptions_EqualsDefault(t *testing.T) {
	def := config.DefaultConfig()
	got := config.NewConfig()
	if got != def {
		t.Fatalf("NewConfig() = %+v, want default %+v", got, def)
	}
}

func TestWithStrict(t *testing.T) {
	c := config.NewConfig(config.WithStrict(true))
	if !c.Strict {
		t.Fatalf("Strict = %v, want true", c.Strict)
	}

	c2 := config.NewConfig(config.WithStrict(false))
	if c2.Strict {
		t.Fatalf("Strict = %v, want false", c2.Strict)
	}
}

func TestWithMaxUnwrap_Positive(t *testing.T) {
	c := config.NewConfig(config.WithMaxUnwrap(3))
	if c.MaxUnwrap != 3 {
		t.Fatalf("MaxUnwrap = %d, want 3", c.MaxUnwrap)
	}
}

func TestWithMaxUnwrap_NonPositive_ResetsToDefault(t *testing.T) {
	for _, v := range []int{0, -1} {
		c := config.NewConfig(config.WithMaxUnwrap(v))
		if c.MaxUnwrap != config.DefaultMaxUnwrap {
			t.Fatalf("WithMaxUnwrap(%d): MaxUnwrap = %d, want default %d", v, c.MaxUnwrap, config.DefaultMaxUnwrap)
		}
	}
}

func TestOptionsOrder_LastWins(t *testing.T) {
	c := config.NewConfig(
		config.WithStrict(false),
		config.WithStrict(true),
		config.WithMaxUnwrap(2),
		config.WithMaxUnwrap(5),
	)

	if !c.Strict {
		t.Errorf("Strict = %v, want true (last option wins)", c.Strict)
	}
	if c.MaxUnwrap != 5 {
		t.Errorf("MaxUnwrap = %d, want 5 (last option wins)", c.MaxUnwrap)
	}
}

func TestDecode(t *testing.T) {
	cases := []struct {
		name string
		in   string
		opts []config.Option
		want apis.Config
	}{
		{"empty", "", nil, config.DefaultConfig()},
		{"full", "strict = true\nmax_unwrap = 4\n", nil, apis.Config{Strict: true, MaxUnwrap: 4}},
		{"partial", "max_unwrap = 2\n", nil, apis.Config{Strict: config.DefaultStrict, MaxUnwrap: 2}},
		{"zero resets", "max_unwrap = 0\n", nil, config.DefaultConfig()},
		{"options win", "strict = true\n", []config.Option{config.WithStrict(false)}, apis.Config{MaxUnwrap: config.DefaultMaxUnwrap}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := config.Decode(strings.NewReader(tc.in), tc.opts...)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Decode = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	if _, err := config.Decode(strings.NewReader("max_unwrap = -3\n")); !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("negative max_unwrap: want ErrInvalidConfig, got %v", err)
	}
	if _, err := config.Decode(strings.NewReader("strict = \"yes\"\n")); err == nil {
		t.Fatalf("mistyped strict: expected error")
	}
	if _, err := config.Decode(strings.NewReader("strict = \n")); err == nil {
		t.Fatalf("malformed TOML: expected error")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rfield.toml")
	if err := os.WriteFile(path, []byte("strict = true\nmax_unwrap = 6\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if want := (apis.Config{Strict: true, MaxUnwrap: 6}); got != want {
		t.Fatalf("Load = %+v, want %+v", got, want)
	}

	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file: want os.ErrNotExist, got %v", err)
	}
}
