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

package builder_test

import (
	"context"
	"testing"

	"dirpx.dev/dfx/apis"
	"dirpx.dev/dfx/builder"
	"dirpx.dev/dfx/config"
)

func TestBuildGuard(t *testing.T) {
	b := builder.New()
	cfg := config.NewConfig(config.WithReserved("halt"))

	grd := b.BuildGuard(cfg, nil, nil)
	if grd == nil {
		t.Fatalf("BuildGuard returned nil")
	}
	if !grd.Reserved("halt") {
		t.Fatalf("Reserved(halt) = false, want true")
	}
	if grd.Reserved("render") {
		t.Fatalf("Reserved(render) = true, want false")
	}
}

func TestBuildTable_MigratesPrev(t *testing.T) {
	b := builder.New()
	cfg := config.DefaultConfig()

	prev := b.BuildTable(cfg, nil, nil)
	for _, n := range []string{"a", "b"} {
		name := n
		if _, err := prev.InstallIfAbsent(name, apis.BindingFunc(func(context.Context, []any) (any, error) {
			return name, nil
		})); err != nil {
			t.Fatalf("seed %s: %v", name, err)
		}
	}

	next := b.BuildTable(cfg, prev, nil)
	if next.Count() != 2 {
		t.Fatalf("migrated Count() = %d, want 2", next.Count())
	}
	for _, n := range []string{"a", "b"} {
		bnd, ok := next.Lookup(n)
		if !ok {
			t.Fatalf("Lookup(%s) = false after migration", n)
		}
		v, err := bnd.Invoke(context.Background(), nil)
		if err != nil || v != n {
			t.Fatalf("migrated binding for %s = (%v,%v), want (%s,nil)", n, v, err, n)
		}
	}

	// Migration copies bindings; the new table is independent.
	next.Reset()
	if prev.Count() != 2 {
		t.Fatalf("Reset on migrated table drained prev: Count() = %d", prev.Count())
	}
}

func TestBuildResolver(t *testing.T) {
	b := builder.New()
	cfg := config.DefaultConfig()
	grd := b.BuildGuard(cfg, nil, nil)
	tbl := b.BuildTable(cfg, nil, nil)

	r := b.BuildResolver(cfg, grd, tbl, nil, nil, nil)
	if r == nil {
		t.Fatalf("BuildResolver returned nil")
	}
	if r.CanResolve("anything") {
		t.Fatalf("CanResolve = true with nil handler and empty table")
	}
}
