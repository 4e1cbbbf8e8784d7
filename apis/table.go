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

// Table is a per-namespace mapping from name to installed Binding.
// Keep it minimal so implementations can be lock-free or sync.Map-backed.
//
// Reads never block on writes; a name maps either to nothing or to a
// fully constructed Binding; no partial states are ever visible.
type Table interface {
	// Lookup returns the installed binding for name, if present.
	Lookup(name string) (Binding, bool)
	// Exists reports whether a binding is installed for name.
	Exists(name string) bool
	// InstallIfAbsent atomically installs b under name unless a binding
	// is already present, and returns the winning binding: either b or
	// the one installed concurrently by another caller. Exactly one
	// binding becomes permanently associated with each name; every racer
	// receives that same winner.
	InstallIfAbsent(name string, b Binding) (Binding, error)
	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	Entries() []Entry
	// Count returns the number of installed bindings.
	Count() int
	// Reset clears all installed bindings. Intended for external
	// collaborators (tests, hot reload); ordinary callers never reset.
	Reset()
}

// Entry is a single (name, binding) association in a Table snapshot.
type Entry struct {
	// Name is the installed member name.
	Name string
	// Binding is the installed binding.
	Binding Binding
}
