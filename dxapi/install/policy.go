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

package install

import (
	"fmt"
	"strings"
)

// Policy controls what a fallback resolver does with bindings produced
// by the handler.
//
// # Overview
//
// Policy is a small enumerated type that describes whether synthesized
// bindings are installed into the method table for reuse, or discarded
// after the call that produced them. It governs only the installation
// step; it never changes which calls reach the handler in the first
// place, and it never changes the result of the call being served.
//
// Policy is intentionally minimal and implementation-agnostic: it does
// not define table capacity, eviction, or reset behavior, but instead
// selects a broad class of behavior (cache-on-first-use vs pass-through).
//
// # Values
//
// The following policies are defined:
//
//   - Once: install the first winning binding; later calls bypass the
//     handler (install-on-first-use caching).
//   - None: never install; every call re-enters the handler
//     (pass-through behavior).
//
// # Contract
//
//   - Resolver implementations MUST treat Policy as a stable, public
//     API; adding new values is allowed, but existing values MUST NOT
//     change their semantics in breaking ways.
//   - Policy values MUST be safe to use concurrently across goroutines
//     (they are plain integers).
//   - Policy SHOULD be used as an input to configuration or factory
//     code, not mutated at runtime in performance-critical paths.
type Policy int

const (
	// Once selects install-on-first-use caching.
	//
	// # Semantics
	//
	// Under Once, when the handler produces a binding candidate, the
	// resolver attempts an atomic insert-if-absent into the method
	// table. Exactly one candidate wins per name; all concurrent racers
	// converge on the winner and dispatch through it. Every later call
	// to the same name takes the installed fast path and the handler is
	// never re-invoked for that name.
	//
	// Recommended usage:
	//
	//   - Production configurations, where repeated interception cost
	//     matters.
	//   - Any workload where the handler's per-name behavior is stable
	//     for the lifetime of the namespace.
	Once Policy = iota

	// None disables installation for the associated resolver.
	//
	// # Semantics
	//
	// When None is selected, bindings produced by the handler are still
	// dispatched for the call that produced them, but they MUST NOT be
	// retained: the table stays empty (from this resolver's writes) and
	// every subsequent call re-enters the handler.
	//
	// None is primarily useful for:
	//
	//   - Testing or debugging, to compare behavior with and without
	//     install-on-first-use caching.
	//   - Handlers whose answers legitimately vary call to call, where
	//     caching the dispatch decision would be wrong.
	//
	// Implementations MAY still maintain internal statistics (e.g. count
	// "would-be" installs) as long as this does not introduce observable
	// caching semantics for callers.
	None
)

// String returns a human-readable representation of the Policy value.
//
// For all defined enum values, the returned strings are:
//
//   - Once -> "Once"
//   - None -> "None"
//
// For unknown or out-of-range values, String returns a diagnostic form
// "Unknown(<n>)", where <n> is the underlying integer value. This
// behavior is intentional and MUST NOT panic, so that corrupted or
// unexpected values can still be surfaced safely in logs and diagnostics.
func (p Policy) String() string {
	switch p {
	case Once:
		return "Once"
	case None:
		return "None"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// Parse parses a textual representation of a Policy.
//
// It accepts the same canonical tokens that are produced by
// Policy.String() for known values, with case-insensitive matching and
// surrounding whitespace trimmed:
//
//   - "Once" -> Once
//   - "None" -> None
//
// Any other input results in a non-nil error. On failure, Parse returns
// Once and a non-nil error; callers MUST NOT rely on the returned Policy
// value in the error case. Parse MUST NOT panic for any input.
func Parse(s string) (Policy, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Once, fmt.Errorf("install: empty policy")
	}

	switch strings.ToUpper(trimmed) {
	case "ONCE":
		return Once, nil
	case "NONE":
		return None, nil
	default:
		return Once, fmt.Errorf("install: unknown policy %q", s)
	}
}

// MustParse is like Parse but panics on invalid input.
//
// It is intended for hard-coded configuration in Go code, tests and
// examples, and initialization code where failing fast with a panic is
// acceptable. Callers MUST NOT use MustParse on untrusted or
// user-supplied data; they SHOULD use Parse instead and handle errors.
func MustParse(s string) Policy {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// MarshalText encodes Policy as text.
//
// MarshalText implements encoding.TextMarshaler. For all defined Policy
// values it returns the same tokens as Policy.String(). For unknown or
// out-of-range values it returns a non-nil error and MUST NOT silently
// serialize an "Unknown(...)" form; this avoids persisting potentially
// invalid states. MarshalText MUST NOT panic for any Policy value.
func (p Policy) MarshalText() ([]byte, error) {
	switch p {
	case Once, None:
		return []byte(p.String()), nil
	default:
		return nil, fmt.Errorf("install: cannot marshal unknown policy %d", p)
	}
}

// UnmarshalText decodes a Policy from its textual representation.
//
// UnmarshalText implements encoding.TextUnmarshaler. It accepts the same
// textual tokens as Parse, with case-insensitive matching and whitespace
// trimmed. On failure, *p MUST NOT be modified and a non-nil error is
// returned. UnmarshalText MUST NOT panic for any input.
func (p *Policy) UnmarshalText(text []byte) error {
	trimmed := strings.TrimSpace(string(text))
	if trimmed == "" {
		return fmt.Errorf("install: empty policy")
	}

	value, err := Parse(trimmed)
	if err != nil {
		return err
	}

	*p = value
	return nil
}
