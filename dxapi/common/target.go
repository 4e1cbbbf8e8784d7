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

package common

import "context"

// Callable is the dynamic invocation entry point of a namespace-like
// object: "call member name with these arguments".
//
// # Overview
//
// Callable abstracts the full, two-stage resolution pipeline of a target
// (ordinary resolution first, then its fallback path, recursively
// including any fallback of its own). It is the surface a delegating
// proxy forwards to, and the surface embedding object models expose for
// their namespaces.
//
// # Contract
//
//   - Call MUST perform the target's ordinary resolution before its
//     fallback path, exactly as a direct caller of the target would
//     observe.
//   - Call MUST return the target's result or failure verbatim; it MUST
//     NOT wrap, retry, or translate errors.
//   - Implementations MUST be safe for concurrent use by multiple
//     goroutines.
//   - Cancellation and timeout policy belong to ctx; implementations
//     MUST propagate ctx to any blocking work they perform.
type Callable interface {
	// Call invokes member name on the target with args.
	Call(ctx context.Context, name string, args ...any) (any, error)
}

// Target is the delegation-target contract consumed by proxy
// namespaces.
//
// # Overview
//
// Target combines invocation (Callable) with the introspection query a
// proxy needs to answer "would I handle this name?" without invoking it.
// A proxy holds a Target by reference only: it never owns the target's
// lifetime and never mutates the target's own method table directly;
// all interaction goes through the target's resolution entry points.
//
// # Contract
//
//   - CanResolve MUST agree with Call for every name: it returns true if
//     and only if a Call for that name would not fail with an
//     unresolved-name error. Violating this consistency breaks proxy
//     introspection transparency.
//   - CanResolve MUST be cheap, side-effect free, and safe for
//     concurrent use.
//   - The target MUST remain valid for the duration of each forwarded
//     call; no longer-lived guarantee is required of it.
type Target interface {
	Callable

	// CanResolve reports whether a Call for name would succeed in
	// resolving (it says nothing about whether the bound implementation
	// would then return an error of its own).
	CanResolve(name string) bool
}

// Identified optionally augments a Target with a stable instance
// identifier for logging, tracing, and diagnostics.
//
// Implementations MAY return an empty string to indicate that the
// instance has no meaningful identifier. The identifier MUST be stable
// for the lifetime of the instance and safe for concurrent reads.
type Identified interface {
	// TargetID returns a stable identifier for this target instance.
	TargetID() string
}

// CallableFunc adapts a plain function to the Callable interface.
//
// Using CallableFunc does not change the semantics of Callable: the
// function is still expected to perform (or stand in for) the target's
// full resolution pipeline and to return results and failures verbatim.
type CallableFunc func(ctx context.Context, name string, args ...any) (any, error)

// Call implements Callable for CallableFunc.
func (f CallableFunc) Call(ctx context.Context, name string, args ...any) (any, error) {
	return f(ctx, name, args...)
}
