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

// Builder composes Guard, Table and Resolver from a Config.
// Implementations may migrate state from previous instances (prev*), or ignore them.
type Builder interface {
	// BuildGuard constructs a Guard for Config.
	// ext is an optional extension context. Its meaning is implementation-defined.
	BuildGuard(cfg Config, prev Guard, ext any) Guard
	// BuildTable constructs a Table for Config. May migrate installed
	// bindings from the previous table.
	BuildTable(cfg Config, prev Table, ext any) Table
	// BuildResolver constructs a Resolver over the given collaborators.
	// May reuse state from a previous resolver.
	BuildResolver(cfg Config, grd Guard, tbl Table, h Handler, prev Resolver, ext any) Resolver
}
