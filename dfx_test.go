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

package dfx_test

import (
	"slices"
	"testing"

	"dirpx.dev/dfx"
	"dirpx.dev/dfx/apis"
	"dirpx.dev/dfx/builder"
	"dirpx.dev/dfx/config"
	"dirpx.dev/dfx/dxapi/install"
)

// resetGlobal restores a clean deterministic global state and registers
// the restore again for cleanup, so global tests do not leak into each
// other.
func resetGlobal(t *testing.T) {
	t.Helper()
	reset := func() {
		cfg := config.DefaultConfig()
		dfx.SetAll(&cfg, nil, nil, builder.New())
	}
	reset()
	t.Cleanup(reset)
}

func TestConfigRoundTrip(t *testing.T) {
	resetGlobal(t)

	cfg := config.NewConfig(
		config.WithReserved("halt"),
		config.WithInstall(install.None),
	)
	dfx.SetConfig(cfg)

	got := dfx.Config()
	if !slices.Equal(got.Reserved, []string{"halt"}) {
		t.Fatalf("Reserved = %v, want [halt]", got.Reserved)
	}
	if got.Install != install.None {
		t.Fatalf("Install = %v, want None", got.Install)
	}

	// SetConfig rebuilt the unpinned guard from the new reserved set.
	if !dfx.IsReserved("halt") {
		t.Fatalf("IsReserved(halt) = false after SetConfig")
	}
	if dfx.IsReserved("init") {
		t.Fatalf("IsReserved(init) = true after replacing the reserved set")
	}
}

func TestRegisterReserved(t *testing.T) {
	resetGlobal(t)

	if dfx.IsReserved("halt") {
		t.Fatalf("IsReserved(halt) = true before registration")
	}
	dfx.RegisterReserved("halt", "teardown")

	for _, n := range []string{"halt", "teardown", "init", "destroy", "finalize"} {
		if !dfx.IsReserved(n) {
			t.Fatalf("IsReserved(%s) = false, want true (defaults plus registered)", n)
		}
	}
	if !slices.Contains(dfx.Config().Reserved, "halt") {
		t.Fatalf("Config().Reserved missing registered name: %v", dfx.Config().Reserved)
	}
}

// fixedGuard reserves exactly one name regardless of configuration.
type fixedGuard struct{ name string }

func (g fixedGuard) Interceptable(name string) bool { return name != g.name }
func (g fixedGuard) Reserved(name string) bool      { return name == g.name }
func (g fixedGuard) Names() []string                { return []string{g.name} }

func TestSetGuardPins(t *testing.T) {
	resetGlobal(t)

	dfx.SetGuard(fixedGuard{name: "frozen"})
	if !dfx.IsGuardPinned() {
		t.Fatalf("IsGuardPinned() = false after SetGuard")
	}
	if !dfx.IsReserved("frozen") || dfx.IsReserved("init") {
		t.Fatalf("pinned guard not in effect: frozen=%v init=%v",
			dfx.IsReserved("frozen"), dfx.IsReserved("init"))
	}

	// Reconfiguration must not rebuild a pinned guard.
	dfx.SetConfig(config.NewConfig(config.WithReserved("other")))
	if !dfx.IsReserved("frozen") || dfx.IsReserved("other") {
		t.Fatalf("SetConfig rebuilt a pinned guard")
	}
	dfx.RegisterReserved("another")
	if dfx.IsReserved("another") {
		t.Fatalf("RegisterReserved rebuilt a pinned guard")
	}

	// After unpinning, the next reconfiguration rebuilds from config.
	dfx.UnpinGuard()
	dfx.SetConfig(config.NewConfig(config.WithReserved("other")))
	if dfx.IsReserved("frozen") || !dfx.IsReserved("other") {
		t.Fatalf("guard not rebuilt after UnpinGuard")
	}
}

func TestSetGuardNilIgnored(t *testing.T) {
	resetGlobal(t)

	before := dfx.Guard()
	dfx.SetGuard(nil)
	if dfx.Guard() != before || dfx.IsGuardPinned() {
		t.Fatalf("SetGuard(nil) changed state")
	}
}

type extCfg struct{ Flag string }

func TestExt(t *testing.T) {
	resetGlobal(t)

	if _, ok := dfx.ExtAs[extCfg](); ok {
		t.Fatalf("ExtAs = ok before SetExt")
	}
	dfx.SetExt(extCfg{Flag: "on"})
	got, ok := dfx.ExtAs[extCfg]()
	if !ok || got.Flag != "on" {
		t.Fatalf("ExtAs = (%v,%v), want ({on},true)", got, ok)
	}
	if _, ok := dfx.ExtAs[string](); ok {
		t.Fatalf("ExtAs[string] = ok for mismatched type")
	}
}

// countingBuilder wraps the default builder and records BuildResolver
// calls so tests can prove namespaces go through the installed builder.
type countingBuilder struct {
	apis.Builder
	resolvers int
}

func (b *countingBuilder) BuildResolver(cfg apis.Config, grd apis.Guard, tbl apis.Table, h apis.Handler, prev apis.Resolver, ext any) apis.Resolver {
	b.resolvers++
	return b.Builder.BuildResolver(cfg, grd, tbl, h, prev, ext)
}

func TestSetBuilder(t *testing.T) {
	resetGlobal(t)

	cb := &countingBuilder{Builder: builder.New()}
	dfx.SetBuilder(cb)
	if dfx.Builder() != apis.Builder(cb) {
		t.Fatalf("Builder() did not return the installed builder")
	}

	_ = dfx.New("ns", nil)
	if cb.resolvers != 1 {
		t.Fatalf("BuildResolver called %d times, want 1", cb.resolvers)
	}
}

func TestSetAll(t *testing.T) {
	resetGlobal(t)

	dfx.SetExt(extCfg{Flag: "on"})
	dfx.RegisterReserved("halt")

	cfg := config.DefaultConfig()
	dfx.SetAll(&cfg, nil, nil, builder.New())

	if dfx.IsReserved("halt") {
		t.Fatalf("SetAll kept stale reserved name")
	}
	if _, ok := dfx.ExtAs[extCfg](); ok {
		t.Fatalf("SetAll kept stale ext")
	}
	if dfx.IsGuardPinned() {
		t.Fatalf("SetAll with nil guard left guard pinned")
	}

	// An explicit guard pins.
	dfx.SetAll(nil, nil, fixedGuard{name: "frozen"}, nil)
	if !dfx.IsGuardPinned() || !dfx.IsReserved("frozen") {
		t.Fatalf("SetAll with explicit guard did not pin it")
	}
}
