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
	"github.com/tliron/commonlog"

	"dirpx.dev/rfield/apis"
	"dirpx.dev/rfield/registry"
	"dirpx.dev/rfield/resolver"
	"dirpx.dev/rfield/strategy"
)

var log = commonlog.GetLogger("rfield.builder")

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// Extension is the ext value understood by this builder.
// Strategies run before the built-in chain; Primitives extend (or override)
// the exact-type primitive table.
type Extension struct {
	Strategies []apis.Strategy
	Primitives []apis.Value
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds and returns a new apis.Registry based on the provided configuration
// and pre-existing registry. If a pre-existing registry is provided, its classes and
// type bindings are copied into the new registry.
func (b *builder) BuildRegistry(cfg apis.Config, preg apis.Registry, _ any) apis.Registry {
	nreg := registry.New(cfg)
	if preg == nil {
		return nreg
	}
	for _, c := range preg.Classes() {
		if err := nreg.Register(c); err != nil {
			log.Warningf("migrating class %s: %v", c.Name(), err)
		}
	}
	for _, e := range preg.Entries() {
		if e.Type == e.Class.Type() {
			continue
		}
		if err := nreg.Bind(e.Type, e.Class); err != nil {
			log.Warningf("migrating binding %s: %v", e.Type, err)
		}
	}
	return nreg
}

// BuildResolver builds and returns a new apis.Resolver based on the provided configuration
// and registry. ext may be an Extension or *Extension; anything else is ignored.
// The previous resolver is not reused: its memo may hold descriptors for classes the
// new registry no longer knows.
func (b *builder) BuildResolver(_ apis.Config, reg apis.Registry, _ apis.Resolver, ext any) apis.Resolver {
	var x Extension
	switch e := ext.(type) {
	case Extension:
		x = e
	case *Extension:
		if e != nil {
			x = *e
		}
	}

	strats := make([]apis.Strategy, 0, len(x.Strategies)+5)
	strats = append(strats, x.Strategies...)
	strats = append(strats,
		strategy.NewDescriberStrategy(),
		strategy.NewPrimitiveStrategy(x.Primitives...),
		strategy.NewSequenceStrategy(),
		strategy.NewObjectStrategy(reg),
		strategy.NewReferenceStrategy(reg),
	)
	return resolver.New(strats...)
}
