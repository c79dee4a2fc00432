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

// Builder assembles the class directory and the descriptor resolver that
// make up one global snapshot. It runs every time the configuration or an
// extension changes.
type Builder interface {
	// BuildRegistry returns the class directory for cfg. reg is the
	// directory being replaced; its classes and interface bindings should
	// carry over so declared classes stay resolvable. ext is the value
	// given to SetExt, or nil.
	BuildRegistry(cfg Config, reg Registry, ext any) Registry

	// BuildResolver returns the resolver that maps field types to value
	// descriptors against reg. res is the resolver being replaced. Its
	// memo was filled against the previous directory, so it should not be
	// reused as is. ext may add strategies or primitive descriptors.
	BuildResolver(cfg Config, reg Registry, res Resolver, ext any) Resolver
}
