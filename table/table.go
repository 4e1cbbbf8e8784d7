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

package table

import (
	"errors"
	"sync"

	"dirpx.dev/dfx/apis"
	unames "dirpx.dev/dfx/utils/names"
)

// ErrNilBinding is returned when a nil Binding is provided.
var ErrNilBinding = errors.New("dfx(table): nil binding provided")

// New constructs a Table that normalizes names according to cfg.
// Only StrictNames is used here.
func New(cfg apis.Config) apis.Table {
	return &table{cfg: cfg}
}

// table is a simple Table implementation backed by sync.Map.
// Reads are lock-free; the write path holds a mutex only to keep the
// counter consistent with the map.
type table struct {
	// cfg is the configuration used for name normalization.
	cfg apis.Config
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps name to installed apis.Binding.
	m sync.Map // map[string]apis.Binding
	// count tracks the number of installed bindings.
	count int
}

// Ensure table implements apis.Table.
var _ apis.Table = (*table)(nil)

// InstallIfAbsent installs b under the normalized name unless a binding
// is already present, and returns the winner. It is idempotent: racers
// for the same name all receive the binding that won, and losing
// candidates are simply discarded.
func (t *table) InstallIfAbsent(name string, b apis.Binding) (apis.Binding, error) {
	if b == nil {
		return nil, ErrNilBinding
	}

	nn, err := unames.Normalize(name, t.cfg)
	if err != nil {
		return nil, err
	}

	// Fast read path: a winner may already be installed.
	if v, ok := t.m.Load(nn); ok {
		return v.(apis.Binding), nil
	}

	// Write path: guard with a mutex to keep counter consistent and avoid ABA.
	t.mu.Lock()
	defer t.mu.Unlock()

	// Re-check under lock in case another goroutine installed meanwhile.
	if v, ok := t.m.Load(nn); ok {
		return v.(apis.Binding), nil
	}

	t.m.Store(nn, b)
	t.count++
	return b, nil
}

// Lookup returns the installed binding for name, if present.
func (t *table) Lookup(name string) (apis.Binding, bool) {
	nn, err := unames.Normalize(name, t.cfg)
	if err != nil {
		return nil, false
	}
	if v, ok := t.m.Load(nn); ok {
		return v.(apis.Binding), true
	}
	return nil, false
}

// Exists reports whether a binding is installed for name.
func (t *table) Exists(name string) bool {
	_, ok := t.Lookup(name)
	return ok
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (t *table) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, t.Count())
	t.m.Range(func(key, value any) bool {
		entries = append(entries, apis.Entry{
			Name:    key.(string),
			Binding: value.(apis.Binding),
		})
		return true
	})
	return entries
}

// Count returns the number of installed bindings.
func (t *table) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count
}

// Reset clears all installed bindings.
func (t *table) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.m = sync.Map{}
	t.count = 0
}
