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
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"dirpx.dev/dfx/apis"
	"dirpx.dev/dfx/dxapi/install"
)

// file is the YAML shape of a dispatch configuration:
//
//	reserved: [init, destroy, finalize]
//	install: Once
//	strict_names: true
//
// Absent keys keep their defaults. The install token is matched
// case-insensitively (install.Policy's UnmarshalText).
type file struct {
	Reserved    *[]string       `yaml:"reserved"`
	Install     *install.Policy `yaml:"install"`
	StrictNames *bool           `yaml:"strict_names"`
}

// Parse decodes a YAML configuration document into an apis.Config.
// Keys not present in the document keep their default values.
func Parse(data []byte) (apis.Config, error) {
	cfg := DefaultConfig()

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return cfg, fmt.Errorf("config: parse: %w", err)
	}

	if f.Reserved != nil {
		cfg.Reserved = append([]string(nil), (*f.Reserved)...)
	}
	if f.Install != nil {
		cfg.Install = *f.Install
	}
	if f.StrictNames != nil {
		cfg.StrictNames = *f.StrictNames
	}
	return cfg, nil
}

// LoadFile reads and parses a YAML configuration file.
func LoadFile(path string) (apis.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}
