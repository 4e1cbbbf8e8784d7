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

package guard

import (
	"dirpx.dev/dfx/apis"
	unames "dirpx.dev/dfx/utils/names"
)

// New constructs a Guard from cfg.Reserved. Names that fail
// normalization under cfg are silently skipped: a malformed reserved
// entry can never be requested as a member name, so it cannot be
// accidentally intercepted either.
func New(cfg apis.Config) apis.Guard {
	set := make(map[string]struct{}, len(cfg.Reserved))
	for _, n := range cfg.Reserved {
		nn, err := unames.Normalize(n, cfg)
		if err != nil {
			continue
		}
		set[nn] = struct{}{}
	}
	return &guard{set: set}
}

// guard is a read-only reserved-name classifier. The set is fixed at
// construction, so lookups need no locking.
type guard struct {
	set map[string]struct{}
}

// Ensure guard implements apis.Guard.
var _ apis.Guard = (*guard)(nil)

// Interceptable reports whether name may route through fallback.
func (g *guard) Interceptable(name string) bool {
	return !g.Reserved(name)
}

// Reserved reports whether name is in the reserved set.
func (g *guard) Reserved(name string) bool {
	_, ok := g.set[name]
	return ok
}

// Names returns a snapshot of the reserved set (order is unspecified).
func (g *guard) Names() []string {
	out := make([]string, 0, len(g.set))
	for n := range g.set {
		out = append(out, n)
	}
	return out
}
