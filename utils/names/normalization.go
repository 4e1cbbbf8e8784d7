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

package names

import (
	"errors"
	"strings"
	"unicode"

	"dirpx.dev/dfx/apis"
)

var (
	// ErrEmptyName is returned when a name is empty after trimming.
	ErrEmptyName = errors.New("names: empty name provided")
	// ErrInvalidName indicates that the provided name contains interior
	// whitespace or control characters (StrictNames mode only).
	ErrInvalidName = errors.New("names: name contains whitespace or control characters")
)

// Normalize trims surrounding whitespace and validates name according
// to cfg.
//
// Validation policy:
//   - empty (after trimming) -> ErrEmptyName, always.
//   - StrictNames: any interior whitespace or control character ->
//     ErrInvalidName. Everything else, including unicode letters and
//     punctuation, is accepted; what counts as a well-formed member name
//     belongs to the embedding object model, not to this core.
func Normalize(name string, cfg apis.Config) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", ErrEmptyName
	}

	if cfg.StrictNames {
		for _, r := range trimmed {
			if unicode.IsSpace(r) || unicode.IsControl(r) {
				return "", ErrInvalidName
			}
		}
	}

	return trimmed, nil
}
