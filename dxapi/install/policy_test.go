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

package install_test

import (
	"testing"

	"dirpx.dev/dfx/dxapi/install"
)

func TestString(t *testing.T) {
	cases := []struct {
		p    install.Policy
		want string
	}{
		{install.Once, "Once"},
		{install.None, "None"},
		{install.Policy(42), "Unknown(42)"},
	}
	for _, c := range cases {
		if got := c.p.String(); got != c.want {
			t.Fatalf("String(%d) = %q, want %q", int(c.p), got, c.want)
		}
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want install.Policy
	}{
		{"Once", install.Once},
		{"once", install.Once},
		{" ONCE ", install.Once},
		{"None", install.None},
		{"none", install.None},
	}
	for _, c := range cases {
		got, err := install.Parse(c.in)
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("Parse(%q) = %v, want %v", c.in, got, c.want)
		}
	}

	for _, in := range []string{"", "   ", "always", "Unknown(1)"} {
		if _, err := install.Parse(in); err == nil {
			t.Fatalf("Parse(%q): expected error, got nil", in)
		}
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("MustParse(\"bogus\"): expected panic")
		}
	}()
	install.MustParse("bogus")
}

func TestMarshalText(t *testing.T) {
	b, err := install.Once.MarshalText()
	if err != nil || string(b) != "Once" {
		t.Fatalf("MarshalText(Once) = (%q, %v), want (Once, nil)", b, err)
	}
	if _, err := install.Policy(7).MarshalText(); err == nil {
		t.Fatalf("MarshalText(unknown): expected error, got nil")
	}
}

func TestUnmarshalText(t *testing.T) {
	var p install.Policy
	if err := p.UnmarshalText([]byte("none")); err != nil {
		t.Fatalf("UnmarshalText(none): unexpected error: %v", err)
	}
	if p != install.None {
		t.Fatalf("UnmarshalText(none) = %v, want None", p)
	}

	p = install.None
	if err := p.UnmarshalText([]byte("bogus")); err == nil {
		t.Fatalf("UnmarshalText(bogus): expected error, got nil")
	}
	if p != install.None {
		t.Fatalf("failed UnmarshalText modified target: %v", p)
	}
}
