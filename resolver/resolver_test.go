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

package resolver_test

import (
	"reflect"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"dirpx.dev/rfield/apis"
	"dirpx.dev/rfield/config"
	"dirpx.dev/rfield/resolver"
	"dirpx.dev/rfield/value"
)

// stub handles exactly one type and counts its calls.
type stub struct {
	t     reflect.Type
	v     apis.Value
	calls atomic.Int64
}

func (s *stub) TryResolveType(t reflect.Type, _ apis.Resolver, _ apis.Config) (apis.Value, bool) {
	s.calls.Add(1)
	if t != s.t {
		return nil, false
	}
	return s.v, true
}

func TestResolver_OrderAndNil(t *testing.T) {
	cfg := config.DefaultConfig()
	first := &stub{t: reflect.TypeFor[uint32](), v: value.Uint32}
	second := &stub{t: reflect.TypeFor[uint32](), v: value.Int32}
	res := resolver.New(nil, first, nil, second)

	if got := res.ResolveType(reflect.TypeFor[uint32](), cfg); got != value.Uint32 {
		t.Fatalf("first strategy should win, got %v", got)
	}
	if second.calls.Load() != 0 {
		t.Fatalf("second strategy consulted after a hit")
	}
	if got := res.Resolve(uint32(7), cfg); got != value.Uint32 {
		t.Fatalf("Resolve(uint32) = %v", got)
	}
	if got := res.Resolve(nil, cfg); got != nil {
		t.Fatalf("Resolve(nil) = %v, want nil", got)
	}
	if got := res.ResolveType(reflect.TypeFor[string](), cfg); got != nil {
		t.Fatalf("unhandled type resolved to %v", got)
	}
	if got := resolver.New().ResolveType(reflect.TypeFor[uint32](), cfg); got != nil {
		t.Fatalf("empty chain resolved to %v", got)
	}
}

func TestResolver_Memo(t *testing.T) {
	cfg := config.DefaultConfig()
	s := &stub{t: reflect.TypeFor[int64](), v: value.Int64}
	res := resolver.New(s)

	for i := 0; i < 3; i++ {
		_ = res.ResolveType(reflect.TypeFor[int64](), cfg)
	}
	if n := s.calls.Load(); n != 1 {
		t.Fatalf("hits should be memoized: %d calls", n)
	}

	// A different MaxUnwrap is a different key.
	_ = res.ResolveType(reflect.TypeFor[int64](), config.NewConfig(config.WithMaxUnwrap(2)))
	if n := s.calls.Load(); n != 2 {
		t.Fatalf("MaxUnwrap should be part of the key: %d calls", n)
	}

	// Misses are retried.
	for i := 0; i < 3; i++ {
		_ = res.ResolveType(reflect.TypeFor[int8](), cfg)
	}
	if n := s.calls.Load(); n != 5 {
		t.Fatalf("misses should not be memoized: %d calls", n)
	}
}

// TestResolver_Concurrency_Smoke hammers one resolver from many goroutines.
func TestResolver_Concurrency_Smoke(t *testing.T) {
	cfg := config.DefaultConfig()
	res := resolver.New(&stub{t: reflect.TypeFor[string](), v: value.Text})

	workers := runtime.GOMAXPROCS(0) * 4
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				if got := res.Resolve("x", cfg); got != value.Text {
					t.Errorf("Resolve(string) = %v", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}
