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

package resolver

import (
	"fmt"

	"dirpx.dev/dfx/apis"
)

// UnresolvedNameError reports that a name could not be resolved on a
// target. It matches apis.ErrUnresolved via errors.Is.
//
// The message is identical whether the guard rejected the name or the
// handler declined it: callers see exactly the ordinary missing-name
// failure they would see if no fallback existed.
type UnresolvedNameError struct {
	// Name is the requested member name.
	Name string
	// Target is the diagnostic identity of the originating target
	// (may be empty).
	Target string
	// Reserved records whether the guard rejected the name. Diagnostic
	// only; it never changes the message.
	Reserved bool
}

// Error implements the error interface.
func (e *UnresolvedNameError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("dfx: unresolved name %q on %s", e.Name, e.Target)
	}
	return fmt.Sprintf("dfx: unresolved name %q", e.Name)
}

// Is reports whether target matches this error.
func (e *UnresolvedNameError) Is(target error) bool {
	return target == apis.ErrUnresolved
}
