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

package table_test

import (
	"context"
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/dfx/apis"
	"dirpx.dev/dfx/config"
	"dirpx.dev/dfx/table"
)

// TestConcurrentInstall verifies that concurrent installers for the same
// name converge on exactly one winner and every racer observes it.
func TestConcurrentInstall(t *testing.T) {
	tbl := table.New(config.DefaultConfig())

	workers := runtime.GOMAXPROCS(0) * 4
	results := make([]any, workers)

	var start, done sync.WaitGroup
	start.Add(1)
	done.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer done.Done()
			candidate := apis.BindingFunc(func(context.Context, []any) (any, error) {
				return id, nil
			})
			start.Wait()
			win, err := tbl.InstallIfAbsent("render", candidate)
			if err != nil {
				t.Errorf("worker %d: InstallIfAbsent: %v", id, err)
				return
			}
			v, err := win.Invoke(context.Background(), nil)
			if err != nil {
				t.Errorf("worker %d: Invoke: %v", id, err)
				return
			}
			results[id] = v
		}(w)
	}
	start.Done()
	done.Wait()

	if tbl.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", tbl.Count())
	}

	// All racers must have dispatched through the same winner.
	winner := results[0]
	for id, v := range results {
		if v != winner {
			t.Fatalf("worker %d observed %v, worker 0 observed %v", id, v, winner)
		}
	}

	// And the table must keep answering with that winner.
	b, ok := tbl.Lookup("render")
	if !ok {
		t.Fatalf("Lookup(render) = false after install")
	}
	v, err := b.Invoke(context.Background(), nil)
	if err != nil || v != winner {
		t.Fatalf("installed binding yields (%v,%v), want (%v,nil)", v, err, winner)
	}
}

// TestConcurrentInstallAndLookup hammers mixed readers and idempotent
// writers across many names.
func TestConcurrentInstallAndLookup(t *testing.T) {
	tbl := table.New(config.DefaultConfig())

	names := []string{"n0", "n1", "n2", "n3", "n4", "n5", "n6", "n7", "n8", "n9"}
	for _, n := range names {
		if _, err := tbl.InstallIfAbsent(n, constBinding(n)); err != nil {
			t.Fatalf("seed %s: %v", n, err)
		}
	}

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4

	// Readers
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 5000; i++ {
				n := names[i%len(names)]
				if b, ok := tbl.Lookup(n); !ok || b == nil {
					t.Errorf("lookup failed for %s", n)
					return
				}
				_ = tbl.Count()
				_ = tbl.Entries()
			}
		}()
	}

	// Writers (losing re-installs; must be safe and preserve the winner)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				n := names[(i+id)%len(names)]
				if _, err := tbl.InstallIfAbsent(n, constBinding("loser")); err != nil {
					t.Errorf("re-install %s: %v", n, err)
					return
				}
			}
		}(w)
	}

	wg.Wait()

	// Final consistency checks.
	if tbl.Count() != len(names) {
		t.Fatalf("count mismatch: got %d want %d", tbl.Count(), len(names))
	}
	for _, n := range names {
		b, ok := tbl.Lookup(n)
		if !ok {
			t.Fatalf("Lookup(%s) = false after hammer", n)
		}
		if v := invoke(t, b); v != n {
			t.Fatalf("winner for %s replaced: got %v", n, v)
		}
	}
}
