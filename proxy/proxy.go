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

// Package proxy delegates missed calls to another target's resolution
// pipeline.
//
// A proxy handler never computes results itself: it synthesizes forward
// bindings that redirect each invocation to the delegation target, going
// through the target's own ordinary resolution and, recursively, its own
// fallback if it has one. Only the dispatch decision is cached by
// installation; the target's answer is recomputed on every call.
package proxy

import (
	"context"

	"go.uber.org/zap"

	"dirpx.dev/dfx/apis"
	"dirpx.dev/dfx/dxapi/common"
	"dirpx.dev/dfx/synth"
)

// New returns a Handler that forwards missed calls to target.
//
// The proxy holds target by reference only: it never owns the target's
// lifetime and never touches the target's method table directly. target
// must remain valid for the duration of each forwarded call.
func New(target common.Target) apis.Handler {
	return &delegate{target: target}
}

// delegate is the forwarding handler.
type delegate struct {
	// target is the opaque delegation target. Accessed only through its
	// Call/CanResolve entry points.
	target common.Target
}

// Ensure delegate implements apis.Handler.
var _ apis.Handler = (*delegate)(nil)

// Accepts defers to the target's own introspection, so proxy
// introspection and proxy invocation agree exactly when the target's do.
func (d *delegate) Accepts(name string) bool {
	return d.target.CanResolve(name)
}

// Handle synthesizes a forward binding for the missed name. No
// forwarding happens here; the first forward is the dispatch that
// follows installation.
func (d *delegate) Handle(_ context.Context, req apis.CallRequest) (apis.Outcome, error) {
	Logger().Debug("synthesizing forward",
		zap.String("name", req.Name),
		zap.String("target", targetLabel(d.target)))
	return apis.Outcome{Bind: synth.Forward(d.target, req.Name)}, nil
}

// targetLabel derives a diagnostic label for the delegation target.
func targetLabel(t common.Target) string {
	if id, ok := t.(common.Identified); ok {
		return id.TargetID()
	}
	return ""
}
