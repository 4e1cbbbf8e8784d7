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

// Binding is an executable unit installed under a name in a Table.
// A Binding is immutable once installed and shared by all callers that
// dispatch to that name; construction must be free of side effects
// (only Invoke has effects).
type Binding interface {
	// Invoke runs the binding with the original call arguments.
	// Cancellation/timeout policy belongs to ctx and is never imposed
	// by the dispatch core itself.
	Invoke(ctx context.Context, args []any) (any, error)
}

// BindingFunc adapts a plain function to the Binding interface.
type BindingFunc func(ctx context.Context, args []any) (any, error)

// Invoke implements Binding for BindingFunc.
func (f BindingFunc) Invoke(ctx context.Context, args []any) (any, error) {
	return f(ctx, args)
}

// DirectLookup is the ordinary, non-fallback resolution primitive
// supplied by the surrounding object model. It reports whether a direct
// binding exists for name on the originating target.
type DirectLookup func(name string) (Binding, bool)

// CallRequest is the ephemeral value describing one missed call.
// It is constructed per call, consumed by the resolver, and not retained.
type CallRequest struct {
	// Name is the requested member name.
	Name string
	// Args is the original argument sequence, passed through to the
	// winning binding unchanged.
	Args []any
	// Target is an opaque reference to the originating target. The core
	// never interprets it; handlers may.
	Target any
}

// Outcome is what a Handler returns for an accepted call.
//
// Exactly one of the two forms applies:
//
//   - Bind == nil: Value is the direct result of the call and nothing is
//     installed (pure interception).
//   - Bind != nil: Bind is a candidate for installation; Value is
//     ignored. The resolver installs the winning binding and dispatches
//     the original arguments to it.
type Outcome struct {
	// Value is the direct result when no binding is produced.
	Value any
	// Bind is the synthesized binding candidate, if any.
	Bind Binding
}
