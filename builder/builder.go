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
	"dirpx.dev/dfx/apis"
	"dirpx.dev/dfx/guard"
	"dirpx.dev/dfx/resolver"
	"dirpx.dev/dfx/table"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildGuard builds and returns a new apis.Guard from the configured
// reserved set. Guards carry no migratable state, so prev is ignored.
func (b *builder) BuildGuard(cfg apis.Config, _ apis.Guard, _ any) apis.Guard {
	return guard.New(cfg)
}

// BuildTable builds and returns a new apis.Table based on the provided
// configuration and pre-existing table. If a pre-existing table is
// provided, its installed bindings are carried over into the new table.
func (b *builder) BuildTable(cfg apis.Config, prev apis.Table, _ any) apis.Table {
	ntbl := table.New(cfg)
	if prev != nil {
		for _, e := range prev.Entries() {
			_, _ = ntbl.InstallIfAbsent(e.Name, e.Binding)
		}
	}
	return ntbl
}

// BuildResolver builds and returns a new apis.Resolver over the given
// collaborators. The previous resolver carries no reusable state.
func (b *builder) BuildResolver(cfg apis.Config, grd apis.Guard, tbl apis.Table, h apis.Handler, _ apis.Resolver, _ any) apis.Resolver {
	return resolver.New(cfg, grd, tbl, h)
}
