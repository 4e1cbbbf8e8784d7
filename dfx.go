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
	"errors"
	"sync"
	"sync/atomic"

	"dirpx.dev/dfx/apis"
	"dirpx.dev/dfx/builder"
	"dirpx.dev/dfx/config"
)

// init initializes the global dfx state.
func init() {
	// Initialize state with default cfg, bld, and grd.
	s := &state{cfg: config.DefaultConfig()}
	b := builder.New()
	s.grd = b.BuildGuard(s.cfg, nil, nil)
	s.bld = b
	// Store the initial state atomically.
	st.Store(s)
}

// ErrNilGuard is returned when a builder returns a nil guard.
var ErrNilGuard = errors.New("dfx: builder returned nil guard")

// Config returns the global dfx configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global dfx configuration to cfg.
// It rebuilds the global grd using the new configuration unless the
// guard is pinned. Namespaces created before the call keep their state.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new grd based on the new cfg and old state.
	ngrd := old.grd
	if !old.pgrd {
		ngrd = b.BuildGuard(cfg, old.grd, old.ext)
	}

	// Ensure non-nil grd.
	if ngrd == nil {
		panic(ErrNilGuard)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  cfg,
			ext:  old.ext,
			grd:  ngrd,
			bld:  b,
			pgrd: old.pgrd,
		},
	)
}

// RegisterReserved appends names to the global reserved set and rebuilds
// the global guard (unless it is pinned). Reserved configuration is
// meant to be settled at startup, before namespaces are created.
func RegisterReserved(names ...string) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	ncfg := old.cfg
	ncfg.Reserved = append(append([]string(nil), old.cfg.Reserved...), names...)

	ngrd := old.grd
	if !old.pgrd {
		ngrd = b.BuildGuard(ncfg, old.grd, old.ext)
	}

	// Ensure non-nil grd.
	if ngrd == nil {
		panic(ErrNilGuard)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  ncfg,
			ext:  old.ext,
			grd:  ngrd,
			bld:  b,
			pgrd: old.pgrd,
		},
	)
}

// IsReserved reports whether name is in the global reserved set.
func IsReserved(name string) bool {
	return st.Load().grd.Reserved(name)
}

// Guard returns the global dfx grd.
func Guard() apis.Guard {
	return st.Load().grd
}

// SetGuard sets the global dfx grd to grd and pins it.
// A pinned guard is used as-is by new namespaces and is not rebuilt by
// SetConfig/RegisterReserved until UnpinGuard is called.
func SetGuard(grd apis.Guard) {
	if grd == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			grd:  grd,
			bld:  old.bld,
			pgrd: true,
		},
	)
}

// Builder returns the global dfx bld.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global dfx bld to b.
// It rebuilds the global grd using the new builder unless pinned.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Build new grd based on the new bld and old state.
	ngrd := old.grd
	if !old.pgrd {
		ngrd = b.BuildGuard(old.cfg, old.grd, old.ext)
	}

	// Ensure non-nil grd.
	if ngrd == nil {
		panic(ErrNilGuard)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			grd:  ngrd,
			bld:  b,
			pgrd: old.pgrd,
		},
	)
}

// SetExt replaces extension config and rebuilds the non-pinned guard via the builder.
func SetExt[T any](ext T) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new grd based on the new ext and old state.
	ngrd := old.grd
	if !old.pgrd {
		ngrd = b.BuildGuard(old.cfg, old.grd, ext)
	}

	// Ensure non-nil grd.
	if ngrd == nil {
		panic(ErrNilGuard)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  ext,
			grd:  ngrd,
			bld:  b,
			pgrd: old.pgrd,
		},
	)
}

// ExtAs returns the global dfx extension config as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// IsGuardPinned returns whether the global dfx grd is pinned (immutable).
func IsGuardPinned() bool {
	return st.Load().pgrd
}

// PinGuard makes the global dfx grd immutable.
func PinGuard() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			grd:  old.grd,
			bld:  old.bld,
			pgrd: true,
		},
	)
}

// UnpinGuard makes the global dfx grd mutable again.
func UnpinGuard() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			grd:  old.grd,
			bld:  old.bld,
			pgrd: false,
		},
	)
}

// SetAll explicitly sets all global dfx state components.
//
// Nil arguments leave the corresponding component unchanged,
// except for ext which is always replaced.
//
// This is mainly used by tests to get a clean deterministic state
// between test cases.
func SetAll(cfg *apis.Config, ext any, grd apis.Guard, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Configuration
	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}

	// Extension
	next := ext

	// Builder
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	// Guard
	ngrd := grd
	npgrd := false
	if ngrd == nil {
		ngrd = nbld.BuildGuard(ncfg, old.grd, next)
	} else {
		npgrd = true
	}

	// Ensure non-nil grd.
	if ngrd == nil {
		panic(ErrNilGuard)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  ncfg,
			ext:  next,
			grd:  ngrd,
			bld:  nbld,
			pgrd: npgrd,
		},
	)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global dfx state.
var st atomic.Pointer[state]

// state is the global dfx state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global dfx configuration.
	cfg apis.Config
	// ext is the global dfx extension configuration.
	ext any
	// grd is the global dfx grd.
	grd apis.Guard
	// bld is the global dfx bld.
	bld apis.Builder
	// pgrd indicates whether the grd is pinned (immutable).
	pgrd bool
}
