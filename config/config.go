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

package config

import (
	"dirpx.dev/dfx/apis"
	"dirpx.dev/dfx/dxapi/install"
)

const (
	// DefaultInstall represents the default install policy.
	// Install-on-first-use caching is the whole point of the mechanism.
	DefaultInstall = install.Once
	// DefaultStrictNames represents the default for StrictNames.
	// When true, names with interior whitespace or control characters
	// are rejected at install and guard-construction time.
	DefaultStrictNames = true
)

// DefaultReserved returns the conventional reserved lifecycle hooks.
// Returned as a fresh slice so callers can append without aliasing.
func DefaultReserved() []string {
	return []string{"init", "destroy", "finalize"}
}

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Reserved:    DefaultReserved(),
		Install:     DefaultInstall,
		StrictNames: DefaultStrictNames,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithReserved replaces the reserved-name set.
func WithReserved(names ...string) Option {
	return func(c *apis.Config) {
		c.Reserved = append([]string(nil), names...)
	}
}

// WithReservedAlso appends names to the reserved-name set.
func WithReservedAlso(names ...string) Option {
	return func(c *apis.Config) {
		c.Reserved = append(c.Reserved, names...)
	}
}

// WithInstall sets the install policy.
func WithInstall(p install.Policy) Option {
	return func(c *apis.Config) {
		c.Install = p
	}
}

// WithStrictNames sets the StrictNames option.
func WithStrictNames(strict bool) Option {
	return func(c *apis.Config) {
		c.StrictNames = strict
	}
}
