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

import "context"

// Handler is the user-supplied fallback logic invoked when a name misses
// both direct resolution and the installed table.
//
// The contract is deliberately split into a cheap predicate and an
// expensive producer so introspection (CanResolve) and real invocation
// can never disagree: the resolver calls Handle only for names Accepts
// admits, and CanResolve consults the same Accepts.
type Handler interface {
	// Accepts reports whether this handler would handle name. It must be
	// cheap, side-effect free, and safe for concurrent use. Its answer
	// for a given name must be stable while the handler is in use.
	Accepts(name string) bool

	// Handle processes one missed call. It may return a direct value
	// (Outcome.Bind == nil) or produce a binding candidate for
	// installation. Errors are propagated to the original caller
	// verbatim. Handle may block; cancellation arrives through ctx.
	Handle(ctx context.Context, req CallRequest) (Outcome, error)
}
