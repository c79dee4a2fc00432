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

package class

import (
	"sync/atomic"

	"github.com/tliron/commonlog"

	"dirpx.dev/rfield/apis"
	"dirpx.dev/rfield/config"
)

var log = commonlog.GetLogger("rfield.class")

// environment is what a class needs to turn declarations into fields.
type environment struct {
	res apis.Resolver
	cfg apis.Config
}

// defaults is used by classes that were not given WithResolver.
var defaults atomic.Pointer[environment]

// SetDefaults publishes the resolver and config used to initialize classes
// declared without WithResolver. The root rfield package calls it every
// time it publishes a new snapshot. Classes already initialized are not
// affected.
func SetDefaults(res apis.Resolver, cfg apis.Config) {
	defaults.Store(&environment{res: res, cfg: cfg})
}

// Defaults returns the values last passed to SetDefaults.
func Defaults() (apis.Resolver, apis.Config) {
	if env := defaults.Load(); env != nil {
		return env.res, env.cfg
	}
	return nil, config.DefaultConfig()
}
