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

package names_test

import (
	"testing"

	"dirpx.dev/dfx/apis"
	unames "dirpx.dev/dfx/utils/names"
)

func TestNormalize_TrimAndAccept(t *testing.T) {
	cfg := apis.Config{StrictNames: true}

	cases := []struct {
		in   string
		want string
	}{
		{"render", "render"},
		{"  render  ", "render"},
		{"\trender\n", "render"},
		{"to_json", "to_json"},
		{"größe", "größe"},
	}
	for _, c := range cases {
		got, err := unames.Normalize(c.in, cfg)
		if err != nil {
			t.Fatalf("Normalize(%q): unexpected error: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalize_Empty(t *testing.T) {
	for _, strict := range []bool{true, false} {
		cfg := apis.Config{StrictNames: strict}
		for _, in := range []string{"", "   ", "\t\n"} {
			if _, err := unames.Normalize(in, cfg); err != unames.ErrEmptyName {
				t.Fatalf("Normalize(%q) strict=%v: want ErrEmptyName, got %v", in, strict, err)
			}
		}
	}
}

func TestNormalize_StrictRejectsInterior(t *testing.T) {
	cfg := apis.Config{StrictNames: true}
	for _, in := range []string{"two words", "a\tb", "a\x00b"} {
		if _, err := unames.Normalize(in, cfg); err != unames.ErrInvalidName {
			t.Fatalf("Normalize(%q): want ErrInvalidName, got %v", in, err)
		}
	}
}

func TestNormalize_LenientAcceptsInterior(t *testing.T) {
	cfg := apis.Config{StrictNames: false}
	got, err := unames.Normalize(" two words ", cfg)
	if err != nil {
		t.Fatalf("Normalize lenient: unexpected error: %v", err)
	}
	if got != "two words" {
		t.Fatalf("Normalize lenient = %q, want %q", got, "two words")
	}
}
