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

package dfx

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"dirpx.dev/dfx/apis"
	"dirpx.dev/dfx/dxapi/common"
	"dirpx.dev/dfx/table"
)

// ErrAlreadyBound is returned when a direct binding is re-bound.
var ErrAlreadyBound = errors.New("dfx: name already bound")

// Namespace is an addressable scope owning one method table. It composes
// the two-stage pipeline: ordinary (direct) resolution first, then the
// fallback resolver. A Namespace satisfies common.Target, so it can be
// the delegation target of a proxy namespace.
type Namespace struct {
	id   uuid.UUID
	name string
	cfg  apis.Config
	grd  apis.Guard
	// tbl holds fallback-installed bindings; owned by this namespace.
	tbl apis.Table
	// direct holds statically bound members. Stands in for the external
	// object model's ordinary resolution when no lookup hook is given.
	direct apis.Table
	// lookup is the external object model's ordinary resolution hook.
	// Consulted before the built-in direct table.
	lookup apis.DirectLookup
	res    apis.Resolver
}

// Ensure Namespace satisfies the delegation-target contracts.
var (
	_ common.Target     = (*Namespace)(nil)
	_ common.Identified = (*Namespace)(nil)
)

// Option customizes namespace construction.
type Option func(*nsOptions)

type nsOptions struct {
	cfg     *apis.Config
	cfgOpts []func(*apis.Config)
	lookup  apis.DirectLookup
}

// WithConfig uses cfg instead of the global snapshot's configuration.
func WithConfig(cfg apis.Config) Option {
	return func(o *nsOptions) {
		c := cfg
		o.cfg = &c
	}
}

// WithOptions applies config functional options (package config) on top
// of the base configuration.
func WithOptions(opts ...func(*apis.Config)) Option {
	return func(o *nsOptions) {
		o.cfgOpts = append(o.cfgOpts, opts...)
	}
}

// WithDirectLookup installs the external object model's ordinary
// resolution hook. It is consulted before the built-in direct table.
func WithDirectLookup(fn apis.DirectLookup) Option {
	return func(o *nsOptions) {
		o.lookup = fn
	}
}

// New creates a Namespace named name with fallback handler h.
//
// Configuration defaults come from the current global snapshot; a pinned
// global guard takes precedence over the namespace's own reserved
// configuration. h may be nil, in which case only direct and
// already-installed bindings resolve.
func New(name string, h apis.Handler, opts ...Option) *Namespace {
	var o nsOptions
	for _, opt := range opts {
		opt(&o)
	}

	s := st.Load()
	cfg := s.cfg
	if o.cfg != nil {
		cfg = *o.cfg
	}
	for _, opt := range o.cfgOpts {
		opt(&cfg)
	}

	grd := s.grd
	if !s.pgrd {
		grd = s.bld.BuildGuard(cfg, nil, s.ext)
	}

	tbl := s.bld.BuildTable(cfg, nil, s.ext)

	return &Namespace{
		id:     uuid.New(),
		name:   name,
		cfg:    cfg,
		grd:    grd,
		tbl:    tbl,
		direct: table.New(cfg),
		lookup: o.lookup,
		res:    s.bld.BuildResolver(cfg, grd, tbl, h, nil, s.ext),
	}
}

// ID returns the namespace's stable instance identifier.
func (ns *Namespace) ID() string { return ns.id.String() }

// Name returns the namespace's human-chosen name.
func (ns *Namespace) Name() string { return ns.name }

// String implements fmt.Stringer.
func (ns *Namespace) String() string { return ns.name + "(" + ns.id.String() + ")" }

// TargetID implements common.Identified.
func (ns *Namespace) TargetID() string {
	if ns.name != "" {
		return ns.name
	}
	return ns.id.String()
}

// Bind statically binds name to b in the namespace's direct table.
// Bind is a construction-time API: re-binding an existing name fails
// with ErrAlreadyBound.
func (ns *Namespace) Bind(name string, b apis.Binding) error {
	if ns.direct.Exists(name) {
		return ErrAlreadyBound
	}
	_, err := ns.direct.InstallIfAbsent(name, b)
	return err
}

// Call invokes member name with args: ordinary resolution first, then
// the fallback path. Direct bindings resolve even for reserved names;
// the guard only restricts what may reach the fallback handler.
func (ns *Namespace) Call(ctx context.Context, name string, args ...any) (any, error) {
	if b, ok := ns.directLookup(name); ok {
		return b.Invoke(ctx, args)
	}
	return ns.res.Resolve(ctx, apis.CallRequest{Name: name, Args: args, Target: ns})
}

// ResolveFallback is the single entry point invoked when ordinary
// resolution has already failed. Embedding object models that do their
// own direct lookup call this instead of Call.
func (ns *Namespace) ResolveFallback(ctx context.Context, req apis.CallRequest) (any, error) {
	if req.Target == nil {
		req.Target = ns
	}
	return ns.res.Resolve(ctx, req)
}

// CanResolve reports whether a Call for name would resolve: a direct
// binding exists, a binding is installed, or the handler would accept
// the name. Agrees with Call for every name.
func (ns *Namespace) CanResolve(name string) bool {
	if _, ok := ns.directLookup(name); ok {
		return true
	}
	return ns.res.CanResolve(name)
}

// IsReserved reports whether name is reserved in this namespace.
func (ns *Namespace) IsReserved(name string) bool {
	return ns.grd.Reserved(name)
}

// Table returns the namespace's installed-binding table.
func (ns *Namespace) Table() apis.Table { return ns.tbl }

// Resolver returns the namespace's fallback resolver.
func (ns *Namespace) Resolver() apis.Resolver { return ns.res }

// Guard returns the namespace's guard.
func (ns *Namespace) Guard() apis.Guard { return ns.grd }

// directLookup runs ordinary resolution: the external hook first, then
// the built-in direct table.
func (ns *Namespace) directLookup(name string) (apis.Binding, bool) {
	if ns.lookup != nil {
		if b, ok := ns.lookup(name); ok {
			return b, true
		}
	}
	return ns.direct.Lookup(name)
}
