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

import "dirpx.dev/dfx/dxapi/install"

// Config carries read-only dispatch knobs that influence guard, table
// and resolver construction. It is passed by value and should be treated
// as immutable by implementations.
type Config struct {
	// Reserved is the closed set of names that must never route through
	// fallback (lifecycle hooks and framework-special names). Read-only
	// after construction.
	Reserved []string

	// Install selects what happens to bindings produced by the handler:
	// install.Once caches them in the table (install-on-first-use),
	// install.None discards them after dispatch (pass-through).
	Install install.Policy

	// StrictNames controls name validation on install and guard
	// construction. If true, names containing whitespace or control
	// characters are rejected; empty names are always rejected.
	StrictNames bool
}
