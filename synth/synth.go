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

// Package synth builds reusable bindings for missed names.
//
// All constructors here are pure: they close over their inputs and
// allocate a closure, nothing more. Effects happen only when the
// produced binding is invoked. That makes synthesized candidates safe to
// discard when they lose an install race.
package synth

import (
	"context"

	"dirpx.dev/dfx/apis"
	"dirpx.dev/dfx/dxapi/common"
)

// Func wraps fn as an apis.Binding.
func Func(fn func(ctx context.Context, args []any) (any, error)) apis.Binding {
	return apis.BindingFunc(fn)
}

// Const returns a binding that always yields v.
func Const(v any) apis.Binding {
	return apis.BindingFunc(func(context.Context, []any) (any, error) {
		return v, nil
	})
}

// Forward returns a binding that forwards every invocation of name to
// target's own resolution entry point and returns its result verbatim.
// The dispatch decision is fixed at synthesis time; the target's answer
// is recomputed on every call.
func Forward(target common.Target, name string) apis.Binding {
	return apis.BindingFunc(func(ctx context.Context, args []any) (any, error) {
		return target.Call(ctx, name, args...)
	})
}

// BuildFunc produces a binding for a missed name, bound to the
// originating target. It must be pure: close over name and target, defer
// all effects to invocation. A non-nil error is propagated to the
// original caller verbatim.
type BuildFunc func(name string, target any) (apis.Binding, error)

// New returns a Handler that synthesizes one binding per accepted name.
//
// accepts is the cheap "would I handle this" predicate consulted both by
// the resolver and by introspection; nil accepts admits every name.
// build produces the binding candidate for an accepted miss.
func New(accepts func(name string) bool, build BuildFunc) apis.Handler {
	return &synthesizer{accepts: accepts, build: build}
}

// Intercept returns a Handler that computes results directly and never
// installs anything (pure interception). Every call for an accepted name
// re-enters fn.
func Intercept(accepts func(name string) bool, fn func(ctx context.Context, req apis.CallRequest) (any, error)) apis.Handler {
	return &interceptor{accepts: accepts, fn: fn}
}

// synthesizer is the install-on-first-use handler: a miss produces a
// binding candidate and the resolver does the rest.
type synthesizer struct {
	accepts func(string) bool
	build   BuildFunc
}

// Ensure synthesizer implements apis.Handler.
var _ apis.Handler = (*synthesizer)(nil)

// Accepts reports whether the synthesizer would handle name.
func (s *synthesizer) Accepts(name string) bool {
	if s.accepts == nil {
		return true
	}
	return s.accepts(name)
}

// Handle produces a binding candidate for the missed name.
func (s *synthesizer) Handle(_ context.Context, req apis.CallRequest) (apis.Outcome, error) {
	b, err := s.build(req.Name, req.Target)
	if err != nil {
		return apis.Outcome{}, err
	}
	return apis.Outcome{Bind: b}, nil
}

// interceptor serves accepted misses directly, with no installation.
type interceptor struct {
	accepts func(string) bool
	fn      func(ctx context.Context, req apis.CallRequest) (any, error)
}

// Ensure interceptor implements apis.Handler.
var _ apis.Handler = (*interceptor)(nil)

// Accepts reports whether the interceptor would handle name.
func (i *interceptor) Accepts(name string) bool {
	if i.accepts == nil {
		return true
	}
	return i.accepts(name)
}

// Handle computes the call result directly.
func (i *interceptor) Handle(ctx context.Context, req apis.CallRequest) (apis.Outcome, error) {
	v, err := i.fn(ctx, req)
	if err != nil {
		return apis.Outcome{}, err
	}
	return apis.Outcome{Value: v}, nil
}
