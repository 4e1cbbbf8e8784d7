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

package apis

import "context"

// Resolver is the fallback entry point invoked when ordinary resolution
// fails. Resolution order: guard check -> installed table -> handler.
// Resolver is expected to be safe for many concurrent callers.
type Resolver interface {
	// Resolve handles one missed call and returns the result (or
	// failure) of the winning binding as the result of the original
	// call. Unresolved names fail with an error matching ErrUnresolved.
	Resolve(ctx context.Context, req CallRequest) (any, error)

	// CanResolve reports whether a subsequent Resolve for name would not
	// fail with an unresolved-name error. It must agree with Resolve for
	// every name, including names the handler would synthesize.
	CanResolve(name string) bool
}
