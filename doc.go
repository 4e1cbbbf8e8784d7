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

// Package dfx provides missing-member dispatch with install-on-first-use
// caching.
//
// dfx is the fallback half of a dynamic object model: when a caller
// invokes a member name that has no statically registered
// implementation, control transfers to a single fallback handler instead
// of failing immediately. The handler may compute a result directly,
// forward the call to another target (delegation/proxying), or
// synthesize a reusable binding that is installed so future calls to the
// same name bypass the fallback path entirely.
//
// # Design
//
// A Namespace owns exactly one method table and composes a two-stage
// pipeline:
//
//   - Ordinary resolution: a direct-lookup hook supplied by the
//     embedding object model (or the namespace's built-in direct table).
//     dfx never defines method resolution for existing bindings; it only
//     consumes "does a direct binding exist for this name".
//
//   - Fallback resolution (package resolver): guard check -> installed
//     table lookup -> handler predicate -> handler invocation ->
//     optional installation -> dispatch.
//
// The moving parts, leaves first:
//
//   - Guard (package guard): classifies names as interceptable or
//     reserved. Reserved names (lifecycle hooks like "destroy") never
//     reach the handler, so structurally significant calls are never
//     silently swallowed; they fail exactly as if no fallback existed.
//
//   - Table (package table): the per-namespace name -> Binding mapping.
//     Reads are lock-free; the only mutation is an atomic
//     insert-if-absent, so concurrent first calls to the same name
//     converge on exactly one winning binding and losing candidates are
//     discarded. Bindings are immutable once installed.
//
//   - Synthesizer (package synth): pure constructors for bindings and
//     for the common handler shapes (per-name synthesis, pure
//     interception). Construction has no side effects; only invocation
//     does. That is what makes losing race candidates safe to discard.
//
//   - Resolver (package resolver): the state machine above, plus the
//     introspection query CanResolve, which answers "would a call
//     resolve?" consistently with what a real call would do, including
//     names the handler would synthesize.
//
//   - Proxy (package proxy): a handler that redirects misses to another
//     target's resolution pipeline. Installation caches only the
//     dispatch decision; the target's answer is recomputed every call.
//
//   - Builder (package builder): a pluggable factory that constructs
//     Guard/Table/Resolver for a Config and can migrate installed
//     bindings across rebuilds.
//
// # Global API
//
// Like the rest of the dirpx family, dfx keeps process-wide defaults in
// a single immutable snapshot behind an atomic pointer. Readers load the
// pointer and never lock; writers take a short build mutex, assemble a
// brand-new snapshot, and publish it atomically.
//
//  1. Read helpers:
//
//     Config() apis.Config
//     Guard() apis.Guard
//     Builder() apis.Builder
//     IsReserved(name string) bool
//     ExtAs[T]() (T, bool)
//
//  2. Mutation helpers:
//
//     SetConfig(cfg), RegisterReserved(names...), SetGuard(grd),
//     SetBuilder(b), SetExt(ext), PinGuard()/UnpinGuard(), SetAll(...)
//
//     SetGuard pins the guard: new namespaces use it as-is and
//     SetConfig/RegisterReserved stop rebuilding it until UnpinGuard.
//     SetAll is the hard-reset API, mainly for tests.
//
//  3. Namespace construction:
//
//     ns := dfx.New("renderer", handler)
//     out, err := ns.Call(ctx, "render", doc)
//     ok := ns.CanResolve("render")
//
// # Concurrency model
//
// Many callers may issue calls against the same namespace concurrently.
// The method table is the only shared mutable structure; all writes go
// through its atomic insert-if-absent, and reads never block on writes.
// For a single name the first successful installation wins; every racer
// receives that same fully constructed binding. The resolver imposes no
// timeout of its own; cancellation belongs to the caller's ctx and
// propagates through handler invocation and dispatch unchanged.
//
// # Errors
//
// Unresolved names (guard-rejected or handler-declined) fail with an
// error matching apis.ErrUnresolved, indistinguishable from an ordinary
// missing-name failure. Handler errors and delegation failures propagate
// to the original caller verbatim, never wrapped. Nothing in dfx is
// fatal to the process; every failure is scoped to the single call.
//
// # Scope
//
// dfx is intentionally small. It does not define inheritance, method
// resolution order for existing bindings, or visibility rules, only the
// fallback path taken when ordinary resolution fails.
package dfx
