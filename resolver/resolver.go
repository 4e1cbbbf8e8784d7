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

// Package resolver orchestrates the fallback path for missed calls:
// guard check, installed-table lookup, handler invocation, optional
// installation, and final dispatch.
//
// Dispatch is return-forwarding: the winning binding's result and error
// are returned unmodified, with no wrapping state. Go does not elide
// stack frames, so the resolver frame remains on the stack during the
// dispatched call; no observable state beyond that frame survives it.
package resolver

import (
	"context"

	"go.uber.org/zap"

	"dirpx.dev/dfx/apis"
	"dirpx.dev/dfx/dxapi/common"
	"dirpx.dev/dfx/dxapi/install"
	unames "dirpx.dev/dfx/utils/names"
)

// New constructs an apis.Resolver over the given collaborators.
// grd and h may be nil: a nil guard intercepts everything, a nil handler
// declines everything (only installed bindings resolve). tbl must not be
// nil. The returned resolver is safe for concurrent use provided the
// collaborators are.
func New(cfg apis.Config, grd apis.Guard, tbl apis.Table, h apis.Handler) apis.Resolver {
	return &fallback{cfg: cfg, grd: grd, tbl: tbl, h: h}
}

// fallback is the resolver state machine:
//
//	GuardCheck -> TableLookup -> {hit: dispatch | miss: Accepts -> Handle}
//	-> InstallAttempt (policy Once) -> dispatch
//
// with terminal failure edges to UnresolvedNameError at GuardCheck and
// at the Accepts predicate.
type fallback struct {
	cfg apis.Config
	grd apis.Guard
	tbl apis.Table
	h   apis.Handler
}

// Ensure fallback implements apis.Resolver.
var _ apis.Resolver = (*fallback)(nil)

// Resolve handles one missed call.
func (r *fallback) Resolve(ctx context.Context, req apis.CallRequest) (any, error) {
	// Normalize once so guard, table and handler agree on the name.
	nn, err := unames.Normalize(req.Name, r.cfg)
	if err != nil {
		return nil, &UnresolvedNameError{Name: req.Name, Target: targetLabel(req.Target)}
	}
	req.Name = nn

	// GuardCheck: reserved names never reach the handler, regardless of
	// table state.
	if r.grd != nil && !r.grd.Interceptable(req.Name) {
		Logger().Debug("reserved name rejected",
			zap.String("name", req.Name),
			zap.String("target", targetLabel(req.Target)))
		return nil, &UnresolvedNameError{Name: req.Name, Target: targetLabel(req.Target), Reserved: true}
	}

	// TableLookup: fast path for every call after the first.
	if b, ok := r.tbl.Lookup(req.Name); ok {
		return b.Invoke(ctx, req.Args)
	}

	// The handler's predicate is the introspection contract; a decline
	// here is indistinguishable from an ordinary missing name.
	if r.h == nil || !r.h.Accepts(req.Name) {
		return nil, &UnresolvedNameError{Name: req.Name, Target: targetLabel(req.Target)}
	}

	Logger().Debug("fallback miss",
		zap.String("name", req.Name),
		zap.String("target", targetLabel(req.Target)))

	out, err := r.h.Handle(ctx, req)
	if err != nil {
		// Handler failure propagates verbatim, never wrapped.
		return nil, err
	}

	if out.Bind == nil {
		// Pure interception: direct result, nothing installed.
		return out.Value, nil
	}

	win := out.Bind
	if r.cfg.Install == install.Once {
		win, err = r.tbl.InstallIfAbsent(req.Name, out.Bind)
		if err != nil {
			return nil, err
		}
		Logger().Debug("binding installed",
			zap.String("name", req.Name),
			zap.String("target", targetLabel(req.Target)))
	}

	// Dispatch the winning binding with the original arguments and
	// forward its result (or failure) unchanged.
	return win.Invoke(ctx, req.Args)
}

// CanResolve mirrors Resolve's decision path without invoking anything:
// guard veto first, then installed bindings, then the handler predicate.
func (r *fallback) CanResolve(name string) bool {
	nn, err := unames.Normalize(name, r.cfg)
	if err != nil {
		return false
	}
	if r.grd != nil && !r.grd.Interceptable(nn) {
		return false
	}
	if r.tbl.Exists(nn) {
		return true
	}
	return r.h != nil && r.h.Accepts(nn)
}

// targetLabel derives a diagnostic label for an opaque target reference.
func targetLabel(target any) string {
	switch t := target.(type) {
	case nil:
		return ""
	case common.Identified:
		return t.TargetID()
	case string:
		return t
	default:
		return ""
	}
}
